package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/classes/controller"
)

// ClassEducationRoutes mounts class management under the education staff
// group.
func ClassEducationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewClassController(db, v)

	classes := r.Group("/classes")
	classes.Post("/", ctl.Create)
	classes.Patch("/:id", ctl.Update)
	classes.Delete("/:id", ctl.Delete)
	classes.Get("/:id/students", ctl.ListStudents)
	classes.Post("/:id/students", ctl.EnrollStudent)
	classes.Delete("/:id/students/:studentId", ctl.RemoveStudent)
}

// ClassTeacherRoutes mounts the teacher's own-class view.
func ClassTeacherRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewClassController(db, v)

	r.Get("/classes", ctl.ListMine)
}

// ClassSharedRoutes mounts the authenticated read surface available to all
// roles.
func ClassSharedRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewClassController(db, v)

	r.Get("/classes", ctl.List)
	r.Get("/classes/:id", ctl.Detail)
	r.Get("/rooms", ctl.Rooms)
}
