package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountModel "preschoolku_backend/internals/features/users/account/model"
	"preschoolku_backend/internals/features/users/auth/service"
	helper "preschoolku_backend/internals/helpers"
	helperAuth "preschoolku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	accountID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var account accountModel.AccountModel
	if err := ac.DB.First(&account, "account_id = ?", accountID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	payload := fiber.Map{
		"account_id": account.AccountID,
		"user_name":  account.AccountUserName,
		"email":      account.AccountEmail,
		"role":       account.AccountRole,
	}
	if pid, ok := c.Locals("parent_id").(string); ok && pid != "" {
		payload["parent_id"] = pid
	}
	return helper.JsonOK(c, "ok", payload)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}
