package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/schedules/dto"
	"preschoolku_backend/internals/features/education/schedules/model"
	"preschoolku_backend/internals/features/education/schedules/service"
	syllabusModel "preschoolku_backend/internals/features/education/syllabus/model"
	helper "preschoolku_backend/internals/helpers"
)

type ActivityController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewActivityController(db *gorm.DB, v *validator.Validate) *ActivityController {
	if v == nil {
		v = validator.New()
	}
	return &ActivityController{DB: db, Validator: v}
}

func (ctl *ActivityController) ensureLessonExists(c *fiber.Ctx, lessonID *uuid.UUID) error {
	if lessonID == nil {
		return nil
	}
	var cnt int64
	if err := ctl.DB.Model(&syllabusModel.LessonModel{}).
		Where("lesson_id = ?", *lessonID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return nil
}

// POST /api/v1/education/schedules/:scheduleId/activities
func (ctl *ActivityController) Create(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	payload, err := bindAndValidate[dto.ActivityCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	payload.Normalize()

	if err := service.ValidateActivitySlot(payload.ActivityDayOfWeek, payload.ActivityStartTime, payload.ActivityEndTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var schedCnt int64
	if err := ctl.DB.Model(&model.ScheduleModel{}).
		Where("schedule_id = ?", scheduleID).
		Count(&schedCnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check schedule")
	}
	if schedCnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}

	if err := ctl.ensureLessonExists(c, payload.ActivityLessonID); err != nil {
		return err
	}

	ent := payload.ToModel(scheduleID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create activity")
	}

	return helper.JsonCreated(c, "Activity created successfully", dto.ActivityFromModel(ent))
}

// PATCH /api/v1/education/activities/:id
func (ctl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	payload, err := bindAndValidate[dto.ActivityUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.ActivityModel
	if err := ctl.DB.First(&ent, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load activity")
	}

	payload.ApplyUpdates(&ent)
	if err := service.ValidateActivitySlot(ent.ActivityDayOfWeek, ent.ActivityStartTime, ent.ActivityEndTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.ensureLessonExists(c, ent.ActivityLessonID); err != nil {
		return err
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}

	return helper.JsonUpdated(c, "Activity updated successfully", dto.ActivityFromModel(ent))
}

// DELETE /api/v1/education/activities/:id
func (ctl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	res := ctl.DB.Where("activity_id = ?", id).Delete(&model.ActivityModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
	}

	return helper.JsonDeleted(c, "Activity deleted successfully", fiber.Map{"activity_id": id})
}

// GET /api/schedules/:scheduleId/activities
func (ctl *ActivityController) ListBySchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var list []model.ActivityModel
	if err := ctl.DB.
		Where("activity_schedule_id = ?", scheduleID).
		Order("activity_day_of_week ASC, activity_start_time ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list activities")
	}

	return helper.JsonOK(c, "Activities fetched successfully", dto.ActivityFromModels(list))
}
