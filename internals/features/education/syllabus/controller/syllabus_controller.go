package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/syllabus/dto"
	"preschoolku_backend/internals/features/education/syllabus/model"
	"preschoolku_backend/internals/features/education/syllabus/service"
	helper "preschoolku_backend/internals/helpers"
)

type SyllabusController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSyllabusController(db *gorm.DB, v *validator.Validate) *SyllabusController {
	if v == nil {
		v = validator.New()
	}
	return &SyllabusController{DB: db, Validator: v}
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

func toLessonRefs(in []dto.SyllabusLessonRefDTO) []service.LessonRef {
	out := make([]service.LessonRef, 0, len(in))
	for _, r := range in {
		out = append(out, service.LessonRef{LessonID: r.LessonID, Note: r.Note})
	}
	return out
}

// =======================
// Create / Update / Delete
// =======================

// POST /api/v1/education/syllabus
func (ctl *SyllabusController) Create(c *fiber.Ctx) error {
	payload, err := bindAndValidate[dto.SyllabusCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	payload.Normalize()

	ent := payload.ToModel()
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ent).Error; err != nil {
			return err
		}
		return service.ReplaceLessons(tx, ent.SyllabusID, toLessonRefs(payload.Lessons))
	}); err != nil {
		if errors.Is(err, service.ErrSyllabusNeedsLesson) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create syllabus")
	}

	return helper.JsonCreated(c, "Syllabus created successfully", dto.SyllabusFromModel(ent))
}

// PATCH /api/v1/education/syllabus/:id
func (ctl *SyllabusController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid syllabus id")
	}

	payload, err := bindAndValidate[dto.SyllabusUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.SyllabusModel
	if err := ctl.DB.First(&ent, "syllabus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Syllabus not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load syllabus")
	}

	payload.ApplyUpdates(&ent)

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ent).Error; err != nil {
			return err
		}
		if payload.Lessons != nil {
			return service.ReplaceLessons(tx, ent.SyllabusID, toLessonRefs(payload.Lessons))
		}
		return nil
	}); err != nil {
		if errors.Is(err, service.ErrSyllabusNeedsLesson) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update syllabus")
	}

	return helper.JsonUpdated(c, "Syllabus updated successfully", dto.SyllabusFromModel(ent))
}

// DELETE /api/v1/education/syllabus/:id
// Removes the syllabus and its lesson links in one transaction; classes still
// pointing at it keep a dangling reference on purpose, the class update flow
// owns fixing that.
func (ctl *SyllabusController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid syllabus id")
	}

	var ent model.SyllabusModel
	if err := ctl.DB.First(&ent, "syllabus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Syllabus not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load syllabus")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("syllabus_lesson_syllabus_id = ?", id).
			Delete(&model.SyllabusLessonModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ent).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete syllabus")
	}

	return helper.JsonDeleted(c, "Syllabus deleted successfully", fiber.Map{"syllabus_id": id})
}

// =======================
// Read
// =======================

// GET /api/syllabus
func (ctl *SyllabusController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SyllabusModel{})
	if grade := c.Query("grade"); grade != "" {
		q = q.Where("syllabus_grade = ?", strings.ToLower(grade))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count syllabi")
	}

	var list []model.SyllabusModel
	if err := q.Order("syllabus_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list syllabi")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Syllabi fetched successfully", dto.SyllabusFromModels(list), &pagination)
}

// GET /api/syllabus/:id
// Returns the syllabus with its full lesson list.
func (ctl *SyllabusController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid syllabus id")
	}

	var ent model.SyllabusModel
	if err := ctl.DB.First(&ent, "syllabus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Syllabus not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load syllabus")
	}

	var links []model.SyllabusLessonModel
	if err := ctl.DB.
		Where("syllabus_lesson_syllabus_id = ?", id).
		Order("syllabus_lesson_created_at ASC").
		Find(&links).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load syllabus lessons")
	}

	lessonIDs := make([]uuid.UUID, 0, len(links))
	noteByLesson := make(map[uuid.UUID]*string, len(links))
	for _, l := range links {
		lessonIDs = append(lessonIDs, l.SyllabusLessonLessonID)
		noteByLesson[l.SyllabusLessonLessonID] = l.SyllabusLessonNote
	}

	var lessons []model.LessonModel
	if len(lessonIDs) > 0 {
		if err := ctl.DB.Where("lesson_id IN ?", lessonIDs).Find(&lessons).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lessons")
		}
	}
	byID := make(map[uuid.UUID]model.LessonModel, len(lessons))
	for _, l := range lessons {
		byID[l.LessonID] = l
	}

	resp := dto.SyllabusFromModel(ent)
	for _, lid := range lessonIDs {
		l, ok := byID[lid]
		if !ok {
			continue
		}
		resp.Lessons = append(resp.Lessons, dto.SyllabusLessonResponseDTO{
			LessonID:          l.LessonID,
			LessonTopic:       l.LessonTopic,
			LessonDescription: l.LessonDescription,
			LessonMaterials:   []string(l.LessonMaterials),
			Note:              noteByLesson[lid],
		})
	}

	return helper.JsonOK(c, "Syllabus fetched successfully", resp)
}
