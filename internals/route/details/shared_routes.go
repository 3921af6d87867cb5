package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termRoute "preschoolku_backend/internals/features/admission/terms/route"
	classRoute "preschoolku_backend/internals/features/education/classes/route"
	scheduleRoute "preschoolku_backend/internals/features/education/schedules/route"
	syllabusRoute "preschoolku_backend/internals/features/education/syllabus/route"
	accountRoute "preschoolku_backend/internals/features/users/account/route"
)

// SharedRoutes wires the read endpoints every authenticated role can reach:
// terms, classes, rooms, syllabi, lessons, schedules and the teacher
// directory.
func SharedRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	termRoute.AdmissionTermSharedRoutes(r, db, v)
	classRoute.ClassSharedRoutes(r, db, v)
	syllabusRoute.SyllabusSharedRoutes(r, db, v)
	scheduleRoute.ScheduleSharedRoutes(r, db, v)
	accountRoute.AccountSharedRoutes(r, db, v)
}
