package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"preschoolku_backend/internals/configs"
	"preschoolku_backend/internals/constants"
	accountModel "preschoolku_backend/internals/features/users/account/model"
	parentModel "preschoolku_backend/internals/features/admission/parents/model"
	authModel "preschoolku_backend/internals/features/users/auth/model"
	helper "preschoolku_backend/internals/helpers"
)

var validate = validator.New()

/* ========================== REGISTER (parent self-service) ========================== */
// POST /api/auth/register

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Address  string `json:"address"   validate:"omitempty,max=150"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var cnt int64
	if err := db.Model(&accountModel.AccountModel{}).
		Where("account_email = ?", email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	account := accountModel.AccountModel{
		AccountUserName: req.UserName,
		AccountEmail:    email,
		AccountPassword: string(hashed),
		AccountRole:     constants.RoleParent,
		AccountIsActive: true,
	}

	// account + parent profile in one transaction
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		parent := parentModel.ParentModel{
			ParentAccountID: account.AccountID,
			ParentFullName:  strings.TrimSpace(req.FullName),
			ParentPhone:     strptr(strings.TrimSpace(req.Phone)),
			ParentAddress:   strptr(strings.TrimSpace(req.Address)),
		}
		return tx.Create(&parent).Error
	}); err != nil {
		if isDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account registered successfully", fiber.Map{
		"account_id": account.AccountID,
		"email":      account.AccountEmail,
		"role":       account.AccountRole,
	})
}

/* ========================== LOGIN ========================== */
// POST /api/auth/login

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var account accountModel.AccountModel
	if err := db.Where("account_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up account")
	}
	if !account.AccountIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.AccountPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	parentID := lookupParentID(db, account)
	access, _, err := issueTokenPair(db, c, account, parentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	payload := fiber.Map{
		"account_id":   account.AccountID,
		"user_name":    account.AccountUserName,
		"email":        account.AccountEmail,
		"role":         account.AccountRole,
		"access_token": access,
	}
	if parentID != nil {
		payload["parent_id"] = parentID
	}
	return helper.JsonOK(c, "Login successful", payload)
}

/* ========================== LOGOUT ========================== */
// POST /api/auth/logout

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist the presented access token until its natural expiry window passes
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		entry := authModel.TokenBlacklist{
			Token:     tok,
			ExpiredAt: time.Now().Add(accessTTL),
		}
		if err := db.Create(&entry).Error; err != nil && !isDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
		}
	}

	// drop the refresh token hash so it cannot be rotated again
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		hash := computeRefreshHash(refresh, configs.JWTRefreshSecret)
		db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{})
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logged out", nil)
}

/* ========================== helpers ========================== */

func lookupParentID(db *gorm.DB, account accountModel.AccountModel) *uuid.UUID {
	if account.AccountRole != constants.RoleParent {
		return nil
	}
	var parent parentModel.ParentModel
	if err := db.Where("parent_account_id = ?", account.AccountID).First(&parent).Error; err != nil {
		return nil
	}
	id := parent.ParentID
	return &id
}

// portable duplicate-key detection, no driver-specific error types
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
