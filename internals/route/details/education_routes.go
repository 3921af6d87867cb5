package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "preschoolku_backend/internals/features/education/classes/route"
	scheduleRoute "preschoolku_backend/internals/features/education/schedules/route"
	syllabusRoute "preschoolku_backend/internals/features/education/syllabus/route"
)

// EducationRoutes wires the education staff surface: classes, syllabi,
// lessons, schedules and activities.
func EducationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	classRoute.ClassEducationRoutes(r, db, v)
	syllabusRoute.SyllabusEducationRoutes(r, db, v)
	scheduleRoute.ScheduleEducationRoutes(r, db, v)
}
