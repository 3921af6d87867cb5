package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/parents/controller"
)

// ParentProfileRoutes mounts the profile and child management surface for
// parent accounts.
func ParentProfileRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	parentCtl := controller.NewParentController(db, v)
	studentCtl := controller.NewStudentController(db, v)

	r.Get("/me", parentCtl.Me)
	r.Patch("/me", parentCtl.UpdateMe)

	children := r.Group("/children")
	children.Post("/", studentCtl.Create)
	children.Get("/", studentCtl.ListMine)
	children.Patch("/:id", studentCtl.Update)
}
