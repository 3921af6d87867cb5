package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/users/auth/controller"
	"preschoolku_backend/internals/middlewares"
	authMiddleware "preschoolku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the authenticated account
// session endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh", ctl.RefreshToken)

	authed := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	authed.Get("/me", ctl.Me)
	authed.Post("/logout", ctl.Logout)
	authed.Post("/change-password", ctl.ChangePassword)
}
