package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/terms/controller"
)

// AdmissionTermAdmissionRoutes mounts term management under the admission
// staff group.
func AdmissionTermAdmissionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAdmissionTermController(db, v)

	terms := r.Group("/terms")
	terms.Post("/", ctl.Create)
	terms.Get("/", ctl.List)
	terms.Get("/:id", ctl.Detail)
	terms.Patch("/:id", ctl.Update)
	terms.Delete("/:id", ctl.Delete)
}

// AdmissionTermParentRoutes mounts the read surface parents use when picking
// a term to register into.
func AdmissionTermParentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAdmissionTermController(db, v)

	terms := r.Group("/terms")
	terms.Get("/open", ctl.ListOpen)
}

// AdmissionTermSharedRoutes mounts term listing for every authenticated
// role.
func AdmissionTermSharedRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAdmissionTermController(db, v)

	r.Get("/terms", ctl.List)
	r.Get("/terms/:id", ctl.Detail)
}
