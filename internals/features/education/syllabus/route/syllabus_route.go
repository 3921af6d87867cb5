package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/syllabus/controller"
)

// SyllabusEducationRoutes mounts syllabus and lesson management under the
// education staff group.
func SyllabusEducationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	syllabusCtl := controller.NewSyllabusController(db, v)
	lessonCtl := controller.NewLessonController(db, v)

	syllabus := r.Group("/syllabus")
	syllabus.Post("/", syllabusCtl.Create)
	syllabus.Patch("/:id", syllabusCtl.Update)
	syllabus.Delete("/:id", syllabusCtl.Delete)

	lessons := r.Group("/lessons")
	lessons.Post("/", lessonCtl.Create)
	lessons.Patch("/:id", lessonCtl.Update)
	lessons.Delete("/:id", lessonCtl.Delete)
}

// SyllabusSharedRoutes mounts the authenticated read surface.
func SyllabusSharedRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	syllabusCtl := controller.NewSyllabusController(db, v)
	lessonCtl := controller.NewLessonController(db, v)

	r.Get("/syllabus", syllabusCtl.List)
	r.Get("/syllabus/:id", syllabusCtl.Detail)
	r.Get("/lessons", lessonCtl.List)
	r.Get("/lessons/:id", lessonCtl.Detail)
}
