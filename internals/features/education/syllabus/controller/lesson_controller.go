package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/syllabus/dto"
	"preschoolku_backend/internals/features/education/syllabus/model"
	helper "preschoolku_backend/internals/helpers"
)

type LessonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonController(db *gorm.DB, v *validator.Validate) *LessonController {
	if v == nil {
		v = validator.New()
	}
	return &LessonController{DB: db, Validator: v}
}

// POST /api/v1/education/lessons
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	payload, err := bindAndValidate[dto.LessonCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	payload.Normalize()

	ent := payload.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.JsonCreated(c, "Lesson created successfully", dto.LessonFromModel(ent))
}

// PATCH /api/v1/education/lessons/:id
func (ctl *LessonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	payload, err := bindAndValidate[dto.LessonUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.LessonModel
	if err := ctl.DB.First(&ent, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	payload.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}

	return helper.JsonUpdated(c, "Lesson updated successfully", dto.LessonFromModel(ent))
}

// DELETE /api/v1/education/lessons/:id
func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	var ent model.LessonModel
	if err := ctl.DB.First(&ent, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	// a lesson still linked into a syllabus cannot be removed
	var linked int64
	if err := ctl.DB.Model(&model.SyllabusLessonModel{}).
		Where("syllabus_lesson_lesson_id = ?", id).
		Count(&linked).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check syllabus links")
	}
	if linked > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Lesson is part of a syllabus and cannot be deleted")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}

	return helper.JsonDeleted(c, "Lesson deleted successfully", fiber.Map{"lesson_id": id})
}

// GET /api/lessons
func (ctl *LessonController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.LessonModel{})
	if topic := c.Query("topic"); topic != "" {
		q = q.Where("lesson_topic ILIKE ?", "%"+topic+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var list []model.LessonModel
	if err := q.Order("lesson_topic ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list lessons")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Lessons fetched successfully", dto.LessonFromModels(list), &pagination)
}

// GET /api/lessons/:id
func (ctl *LessonController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	var ent model.LessonModel
	if err := ctl.DB.First(&ent, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lesson")
	}

	return helper.JsonOK(c, "Lesson fetched successfully", dto.LessonFromModel(ent))
}
