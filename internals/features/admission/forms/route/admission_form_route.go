package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/forms/controller"
)

// AdmissionFormParentRoutes mounts the submit/cancel surface for parents.
func AdmissionFormParentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAdmissionFormController(db, v)

	forms := r.Group("/forms")
	forms.Post("/", ctl.Submit)
	forms.Get("/", ctl.ListMine)
	forms.Get("/:id", ctl.Detail)
	forms.Post("/:id/cancel", ctl.Cancel)
}

// AdmissionFormAdmissionRoutes mounts the review surface for admission staff.
func AdmissionFormAdmissionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAdmissionFormController(db, v)

	forms := r.Group("/forms")
	forms.Get("/", ctl.List)
	forms.Get("/:id", ctl.Detail)
	forms.Post("/:id/process", ctl.Process)
}
