package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/constants"
	"preschoolku_backend/internals/features/users/account/dto"
	"preschoolku_backend/internals/features/users/account/model"
	"preschoolku_backend/internals/features/users/auth/service"
	helper "preschoolku_backend/internals/helpers"
)

type AccountController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAccountController(db *gorm.DB, v *validator.Validate) *AccountController {
	if v == nil {
		v = validator.New()
	}
	return &AccountController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate) (*T, error) {
	var payload T
	if err := c.BodyParser(&payload); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.Struct(&payload); err != nil {
		return nil, helper.JsonValidation(c, err)
	}
	return &payload, nil
}

/* ============================================
   CREATE staff account (HR)
   POST /api/v1/hr/accounts
============================================ */

func (ctl *AccountController) Create(c *fiber.Ctx) error {
	p, err := bindAndValidate[dto.AccountCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.AccountModel{}).
		Where("account_email = ?", p.AccountEmail).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := service.HashPassword(p.AccountPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	ent := p.ToModel(hashed)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
	return helper.JsonCreated(c, "Account created successfully", dto.FromModel(ent))
}

/* ============================================
   UPDATE account (HR): rename, phone, activate/deactivate
   PATCH /api/v1/hr/accounts/:id
============================================ */

func (ctl *AccountController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var ent model.AccountModel
	if err := ctl.DB.First(&ent, "account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch account")
	}

	p, err := bindAndValidate[dto.AccountUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update account")
	}
	return helper.JsonUpdated(c, "Account updated successfully", dto.FromModel(ent))
}

/* ============================================
   LIST accounts (HR), filter by role
   GET /api/v1/hr/accounts?role=teacher
============================================ */

func (ctl *AccountController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.AccountModel{})
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		tx = tx.Where("account_role = ?", role)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("account_user_name ILIKE ? OR account_email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count accounts")
	}

	var list []model.AccountModel
	if err := tx.Order("account_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch accounts")
	}

	pg := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(list), &pg)
}

/* ============================================
   TEACHER DIRECTORY (education/hr shared read)
   GET /api/teachers
============================================ */

func (ctl *AccountController) TeacherDirectory(c *fiber.Ctx) error {
	var list []model.AccountModel
	if err := ctl.DB.
		Where("account_role = ? AND account_is_active = true", constants.RoleTeacher).
		Order("account_user_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return helper.JsonOK(c, "ok", dto.FromModels(list))
}
