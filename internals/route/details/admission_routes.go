package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formRoute "preschoolku_backend/internals/features/admission/forms/route"
	termRoute "preschoolku_backend/internals/features/admission/terms/route"
)

// AdmissionRoutes wires the admission staff surface: term management and form
// review.
func AdmissionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	termRoute.AdmissionTermAdmissionRoutes(r, db, v)
	formRoute.AdmissionFormAdmissionRoutes(r, db, v)
}
