package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formRoute "preschoolku_backend/internals/features/admission/forms/route"
	parentRoute "preschoolku_backend/internals/features/admission/parents/route"
	termRoute "preschoolku_backend/internals/features/admission/terms/route"
)

// ParentRoutes wires everything a parent account can do: profile, children,
// open terms, and form submission.
func ParentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	parentRoute.ParentProfileRoutes(r, db, v)
	termRoute.AdmissionTermParentRoutes(r, db, v)
	formRoute.AdmissionFormParentRoutes(r, db, v)
}
