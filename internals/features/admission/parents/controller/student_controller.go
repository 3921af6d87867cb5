package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/parents/dto"
	"preschoolku_backend/internals/features/admission/parents/model"
	"preschoolku_backend/internals/features/admission/parents/service"
	helper "preschoolku_backend/internals/helpers"
	helperAuth "preschoolku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentController{DB: db, Validator: v}
}

/* ============================================
   ADD CHILD (parent only)
   POST /api/v1/parent/children
============================================ */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	p, err := bindAndValidate[dto.StudentCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	p.Normalize()

	if err := service.ValidateChildProfile(
		p.StudentFullName, p.StudentGender, p.StudentDateOfBirth, p.StudentPlaceOfBirth, time.Now(),
	); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ent := p.ToModel(parentID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add child")
	}
	return helper.JsonCreated(c, "Child added successfully", dto.StudentFromModel(ent))
}

/* ============================================
   UPDATE CHILD (parent only, own child)
   PATCH /api/v1/parent/children/:id
============================================ */

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var ent model.StudentModel
	if err := ctl.DB.
		Where("student_parent_id = ? AND student_id = ?", parentID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Child not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch child")
	}

	p, err := bindAndValidate[dto.StudentUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	p.ApplyUpdates(&ent)

	if err := service.ValidateChildProfile(
		ent.StudentFullName, ent.StudentGender, ent.StudentDateOfBirth, ent.StudentPlaceOfBirth, time.Now(),
	); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update child")
	}
	return helper.JsonUpdated(c, "Child updated successfully", dto.StudentFromModel(ent))
}

/* ============================================
   LIST OWN CHILDREN (parent only)
   GET /api/v1/parent/children
============================================ */

func (ctl *StudentController) ListMine(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	var list []model.StudentModel
	if err := ctl.DB.
		Where("student_parent_id = ?", parentID).
		Order("student_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch children")
	}
	return helper.JsonOK(c, "ok", dto.StudentFromModels(list))
}
