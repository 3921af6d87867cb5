package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/parents/dto"
	"preschoolku_backend/internals/features/admission/parents/model"
	helper "preschoolku_backend/internals/helpers"
	helperAuth "preschoolku_backend/internals/helpers/auth"
)

type ParentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParentController(db *gorm.DB, v *validator.Validate) *ParentController {
	if v == nil {
		v = validator.New()
	}
	return &ParentController{DB: db, Validator: v}
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
   MY PROFILE (parent only)
   GET /api/v1/parent/me
============================================ */

func (ctl *ParentController) Me(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	var ent model.ParentModel
	if err := ctl.DB.First(&ent, "parent_id = ?", parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.JsonOK(c, "ok", dto.ParentFromModel(ent))
}

/* ============================================
   UPDATE MY PROFILE (parent only)
   PATCH /api/v1/parent/me
============================================ */

func (ctl *ParentController) UpdateMe(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	var ent model.ParentModel
	if err := ctl.DB.First(&ent, "parent_id = ?", parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	p, err := bindAndValidate[dto.ParentUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated successfully", dto.ParentFromModel(ent))
}
