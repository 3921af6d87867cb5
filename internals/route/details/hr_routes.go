package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountRoute "preschoolku_backend/internals/features/users/account/route"
)

// HRRoutes wires staff account administration.
func HRRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	accountRoute.AccountHRRoutes(r, db, v)
}
