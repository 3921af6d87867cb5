package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/terms/dto"
	"preschoolku_backend/internals/features/admission/terms/model"
	"preschoolku_backend/internals/features/admission/terms/service"
	helper "preschoolku_backend/internals/helpers"
)

type AdmissionTermController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdmissionTermController(db *gorm.DB, v *validator.Validate) *AdmissionTermController {
	return &AdmissionTermController{DB: db, Validator: v}
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
// Create
// =======================

// POST /api/v1/admission/terms
func (ctl *AdmissionTermController) Create(c *fiber.Ctx) error {
	payload, err := bindAndValidate[dto.AdmissionTermCreateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	payload.Normalize()

	// one term per grade per year
	var cnt int64
	if err := ctl.DB.Model(&model.AdmissionTermModel{}).
		Where("admission_term_year = ? AND admission_term_grade = ?", payload.AdmissionTermYear, payload.AdmissionTermGrade).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing terms")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "An admission term for this grade and year already exists")
	}

	status := service.ResolveTermStatus(time.Now(), payload.AdmissionTermStartDate, payload.AdmissionTermEndDate)
	ent := payload.ToModel(status)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admission term")
	}

	return helper.JsonCreated(c, "Admission term created successfully", dto.FromModel(ent))
}

// =======================
// Update
// =======================

// PATCH /api/v1/admission/terms/:id
func (ctl *AdmissionTermController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission term id")
	}

	payload, err := bindAndValidate[dto.AdmissionTermUpdateDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.AdmissionTermModel
	if err := ctl.DB.First(&ent, "admission_term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission term")
	}

	payload.ApplyUpdates(&ent)
	if ent.AdmissionTermEndDate.Before(ent.AdmissionTermStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Admission term end date must not be before start date")
	}

	if payload.AdmissionTermYear != nil || payload.AdmissionTermGrade != nil {
		var cnt int64
		if err := ctl.DB.Model(&model.AdmissionTermModel{}).
			Where("admission_term_year = ? AND admission_term_grade = ? AND admission_term_id <> ?",
				ent.AdmissionTermYear, ent.AdmissionTermGrade, ent.AdmissionTermID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing terms")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "An admission term for this grade and year already exists")
		}
	}

	// dates may have moved, recompute instead of trusting the stored value
	ent.AdmissionTermStatus = service.ResolveTermStatus(time.Now(), ent.AdmissionTermStartDate, ent.AdmissionTermEndDate)

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update admission term")
	}

	return helper.JsonUpdated(c, "Admission term updated successfully", dto.FromModel(ent))
}

// =======================
// Read
// =======================

// GET /api/v1/admission/terms
func (ctl *AdmissionTermController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	status := c.Query("status")

	q := ctl.DB.Model(&model.AdmissionTermModel{})
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("admission_term_year = ?", year)
	}
	if grade := c.Query("grade"); grade != "" {
		q = q.Where("admission_term_grade = ?", grade)
	}
	if status != "" {
		q = q.Where("admission_term_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count admission terms")
	}

	var list []model.AdmissionTermModel
	if err := q.Order("admission_term_start_date DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list admission terms")
	}

	service.SyncTermStatuses(ctl.DB, list, time.Now())

	// the stored column is filtered in SQL before the sync above; drop any
	// row whose recomputed status no longer matches the requested filter
	if status != "" {
		list = service.FilterTermsByStatus(list, model.TermStatus(status))
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Admission terms fetched successfully", dto.FromModels(list), &pagination)
}

// GET /api/v1/admission/terms/:id
func (ctl *AdmissionTermController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission term id")
	}

	var ent model.AdmissionTermModel
	if err := ctl.DB.First(&ent, "admission_term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission term")
	}

	// the response carries the recomputed status even if the write-back fails
	if err := service.SyncTermStatus(ctl.DB, &ent, time.Now()); err != nil {
		log.Printf("[WARN] term status write-back failed for %s: %v", ent.AdmissionTermID, err)
	}

	return helper.JsonOK(c, "Admission term fetched successfully", dto.FromModel(ent))
}

// GET /api/v1/parent/terms/open
// Parents only need terms that currently accept registrations.
func (ctl *AdmissionTermController) ListOpen(c *fiber.Ctx) error {
	now := time.Now()

	var list []model.AdmissionTermModel
	if err := ctl.DB.
		Where("admission_term_start_date <= ? AND admission_term_end_date >= ?", now, now).
		Order("admission_term_grade ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list open admission terms")
	}

	service.SyncTermStatuses(ctl.DB, list, now)

	return helper.JsonOK(c, "Open admission terms fetched successfully", dto.FromModels(list))
}

// =======================
// Delete
// =======================

// DELETE /api/v1/admission/terms/:id
func (ctl *AdmissionTermController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission term id")
	}

	var ent model.AdmissionTermModel
	if err := ctl.DB.First(&ent, "admission_term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission term")
	}

	// terms with submitted forms stay on record
	var formCnt int64
	if err := ctl.DB.Table("admission_forms").
		Where("admission_form_term_id = ? AND admission_form_deleted_at IS NULL", id).
		Count(&formCnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check admission forms")
	}
	if formCnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Admission term with registered forms cannot be deleted")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admission term")
	}

	return helper.JsonDeleted(c, "Admission term deleted successfully", fiber.Map{"admission_term_id": id})
}
