package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/users/account/controller"
)

// AccountHRRoutes mounts staff account administration under the hr group.
func AccountHRRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAccountController(db, v)

	accounts := r.Group("/accounts")
	accounts.Post("/", ctl.Create)
	accounts.Get("/", ctl.List)
	accounts.Patch("/:id", ctl.Update)
}

// AccountSharedRoutes exposes the teacher directory to authenticated staff.
func AccountSharedRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAccountController(db, v)

	r.Get("/teachers", ctl.TeacherDirectory)
}
