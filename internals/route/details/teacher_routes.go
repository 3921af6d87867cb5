package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "preschoolku_backend/internals/features/education/classes/route"
)

// TeacherRoutes wires the teacher's personal surface; everything else
// teachers need comes from the shared reads.
func TeacherRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	classRoute.ClassTeacherRoutes(r, db, v)
}
