package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "preschoolku_backend/internals/features/education/classes/model"
	"preschoolku_backend/internals/features/education/schedules/dto"
	"preschoolku_backend/internals/features/education/schedules/model"
	"preschoolku_backend/internals/features/education/schedules/service"
	helper "preschoolku_backend/internals/helpers"
)

type ScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	if v == nil {
		v = validator.New()
	}
	return &ScheduleController{DB: db, Validator: v}
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

// =======================
// Create / Update / Delete
// =======================

// POST /api/v1/education/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	payload, err := bindAndValidate[dto.ScheduleCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	if err := service.ValidateWeekNumber(payload.ScheduleWeekNumber); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var clsCnt int64
	if err := ctl.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ?", payload.ScheduleClassID).
		Count(&clsCnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
	}
	if clsCnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	var dup int64
	if err := ctl.DB.Model(&model.ScheduleModel{}).
		Where("schedule_class_id = ? AND schedule_week_number = ?", payload.ScheduleClassID, payload.ScheduleWeekNumber).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing schedules")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A schedule already exists for this class and week")
	}

	ent := payload.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}

	return helper.JsonCreated(c, "Schedule created successfully", dto.ScheduleFromModel(ent))
}

// PATCH /api/v1/education/schedules/:id
func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	payload, err := bindAndValidate[dto.ScheduleUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.ScheduleModel
	if err := ctl.DB.First(&ent, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	if payload.ScheduleNote != nil {
		ent.ScheduleNote = payload.ScheduleNote
	}
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}

	return helper.JsonUpdated(c, "Schedule updated successfully", dto.ScheduleFromModel(ent))
}

// DELETE /api/v1/education/schedules/:id
// Deleting a schedule removes its activities in the same transaction.
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var ent model.ScheduleModel
	if err := ctl.DB.First(&ent, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_schedule_id = ?", id).
			Delete(&model.ActivityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ent).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}

	return helper.JsonDeleted(c, "Schedule deleted successfully", fiber.Map{"schedule_id": id})
}

// =======================
// Read
// =======================

// GET /api/schedules?class_id=...
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.ScheduleModel{})
	if classID := c.Query("class_id"); classID != "" {
		cid, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id filter")
		}
		q = q.Where("schedule_class_id = ?", cid)
	}

	var list []model.ScheduleModel
	if err := q.Order("schedule_week_number ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list schedules")
	}

	return helper.JsonOK(c, "Schedules fetched successfully", dto.ScheduleFromModels(list))
}

// GET /api/schedules/:id
// Returns the schedule with its activities ordered by day and start time.
func (ctl *ScheduleController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var ent model.ScheduleModel
	if err := ctl.DB.First(&ent, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	var activities []model.ActivityModel
	if err := ctl.DB.
		Where("activity_schedule_id = ?", id).
		Order("activity_day_of_week ASC, activity_start_time ASC").
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load activities")
	}

	resp := dto.ScheduleFromModel(ent)
	resp.Activities = dto.ActivityFromModels(activities)
	return helper.JsonOK(c, "Schedule fetched successfully", resp)
}
