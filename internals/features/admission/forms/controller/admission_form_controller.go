package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/forms/dto"
	"preschoolku_backend/internals/features/admission/forms/model"
	"preschoolku_backend/internals/features/admission/forms/service"
	parentModel "preschoolku_backend/internals/features/admission/parents/model"
	parentService "preschoolku_backend/internals/features/admission/parents/service"
	termModel "preschoolku_backend/internals/features/admission/terms/model"
	termService "preschoolku_backend/internals/features/admission/terms/service"
	helper "preschoolku_backend/internals/helpers"
	helperAuth "preschoolku_backend/internals/helpers/auth"
)

type AdmissionFormController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdmissionFormController(db *gorm.DB, v *validator.Validate) *AdmissionFormController {
	if v == nil {
		v = validator.New()
	}
	return &AdmissionFormController{DB: db, Validator: v}
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
// Submit
// =======================

// POST /api/v1/parent/forms
func (ctl *AdmissionFormController) Submit(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	payload, err := bindAndValidate[dto.AdmissionFormSubmitDTO](c, ctl.Validator)
	if err != nil {
		return err
	}
	payload.Normalize()

	var student parentModel.StudentModel
	if err := ctl.DB.
		First(&student, "student_id = ? AND student_parent_id = ?", payload.AdmissionFormStudentID, parentID).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	now := time.Now()

	// child identity is validated again at submit time so a profile edited
	// out of range cannot ride in on a stored record
	if err := parentService.ValidateChildProfile(
		student.StudentFullName,
		student.StudentGender,
		student.StudentDateOfBirth,
		student.StudentPlaceOfBirth,
		now,
	); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := service.ValidateFormDocuments(payload.Documents()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var term termModel.AdmissionTermModel
	if err := ctl.DB.First(&term, "admission_term_id = ?", payload.AdmissionFormTermID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission term")
	}
	if err := termService.SyncTermStatus(ctl.DB, &term, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh admission term status")
	}
	if term.AdmissionTermStatus != termModel.TermStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Admission term is not open for registration")
	}

	// duplicate check is status-blind on purpose: one submission per child
	// per family, full stop
	var cnt int64
	if err := ctl.DB.Model(&model.AdmissionFormModel{}).
		Where("admission_form_parent_id = ? AND admission_form_student_id = ?", parentID, payload.AdmissionFormStudentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing forms")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, service.MsgStudentAlreadyRegistered)
	}

	// cancelled forms free their slot
	var taken int64
	if err := ctl.DB.Model(&model.AdmissionFormModel{}).
		Where("admission_form_term_id = ? AND admission_form_status <> ?", term.AdmissionTermID, model.FormStatusCancelled).
		Count(&taken).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check registration quota")
	}
	if taken >= int64(term.AdmissionTermMaxNumberRegistration) {
		return helper.JsonError(c, fiber.StatusConflict, "Admission term has reached its registration limit")
	}

	ent := payload.ToModel(parentID, now)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit admission form")
	}

	if _, err := termService.RefreshTermStats(ctl.DB, ent.AdmissionFormTermID); err != nil {
		log.Printf("[WARN] term stats refresh failed for %s: %v", ent.AdmissionFormTermID, err)
	}

	return helper.JsonCreated(c, "Admission form submitted successfully", dto.FromModel(ent))
}

// =======================
// Cancel
// =======================

// POST /api/v1/parent/forms/:id/cancel
func (ctl *AdmissionFormController) Cancel(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission form id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// body is optional for cancellation
	_ = c.BodyParser(&body)

	var ent model.AdmissionFormModel
	if err := ctl.DB.First(&ent, "admission_form_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission form not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission form")
	}

	if ent.AdmissionFormParentID != parentID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this admission form")
	}
	if ent.AdmissionFormStatus != model.FormStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending admission forms can be cancelled")
	}

	updates := map[string]any{
		"admission_form_status": model.FormStatusCancelled,
	}
	if reason := strings.TrimSpace(body.Reason); reason != "" {
		if len(reason) > 100 {
			reason = reason[:100]
		}
		updates["admission_form_cancel_reason"] = reason
		ent.AdmissionFormCancelReason = &reason
	}

	if err := ctl.DB.Model(&model.AdmissionFormModel{}).
		Where("admission_form_id = ?", ent.AdmissionFormID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel admission form")
	}
	ent.AdmissionFormStatus = model.FormStatusCancelled

	if _, err := termService.RefreshTermStats(ctl.DB, ent.AdmissionFormTermID); err != nil {
		log.Printf("[WARN] term stats refresh failed for %s: %v", ent.AdmissionFormTermID, err)
	}

	return helper.JsonUpdated(c, "Admission form cancelled successfully", dto.FromModel(ent))
}

// =======================
// Process (approve / reject)
// =======================

// POST /api/v1/admission/forms/:id/process
func (ctl *AdmissionFormController) Process(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission form id")
	}

	payload, err := bindAndValidate[dto.AdmissionFormProcessDTO](c, ctl.Validator)
	if err != nil {
		return err
	}

	var ent model.AdmissionFormModel
	if err := ctl.DB.First(&ent, "admission_form_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission form not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission form")
	}

	if ent.AdmissionFormStatus != model.FormStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Admission form has already been processed")
	}

	if payload.Decision == "reject" {
		if err := service.ValidateRejectReason(payload.Reason); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var term termModel.AdmissionTermModel
	if err := ctl.DB.First(&term, "admission_term_id = ?", ent.AdmissionFormTermID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission term")
	}
	if err := termService.SyncTermStatus(ctl.DB, &term, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh admission term status")
	}
	if term.AdmissionTermStatus != termModel.TermStatusLocked {
		return helper.JsonError(c, fiber.StatusConflict, "Admission forms can only be processed after the registration period has closed")
	}

	updates := map[string]any{}
	switch payload.Decision {
	case "approve":
		ent.AdmissionFormStatus = model.FormStatusApproved
		updates["admission_form_status"] = model.FormStatusApproved
	case "reject":
		reason := strings.TrimSpace(payload.Reason)
		ent.AdmissionFormStatus = model.FormStatusRejected
		ent.AdmissionFormNote = &reason
		updates["admission_form_status"] = model.FormStatusRejected
		updates["admission_form_note"] = reason
	}

	if err := ctl.DB.Model(&model.AdmissionFormModel{}).
		Where("admission_form_id = ?", ent.AdmissionFormID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process admission form")
	}

	if _, err := termService.RefreshTermStats(ctl.DB, ent.AdmissionFormTermID); err != nil {
		log.Printf("[WARN] term stats refresh failed for %s: %v", ent.AdmissionFormTermID, err)
	}

	return helper.JsonUpdated(c, "Admission form processed successfully", dto.FromModel(ent))
}

// =======================
// Read
// =======================

// GET /api/v1/parent/forms
func (ctl *AdmissionFormController) ListMine(c *fiber.Ctx) error {
	parentID, err := helperAuth.GetParentID(c)
	if err != nil {
		return err
	}

	var list []model.AdmissionFormModel
	if err := ctl.DB.
		Where("admission_form_parent_id = ?", parentID).
		Order("admission_form_submitted_date DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list admission forms")
	}

	return helper.JsonOK(c, "Admission forms fetched successfully", dto.FromModels(list))
}

// GET /api/v1/admission/forms
func (ctl *AdmissionFormController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.AdmissionFormModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("admission_form_status = ?", strings.ToUpper(status))
	}
	if termID := c.Query("term_id"); termID != "" {
		id, err := uuid.Parse(termID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term id filter")
		}
		q = q.Where("admission_form_term_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count admission forms")
	}

	var list []model.AdmissionFormModel
	if err := q.Order("admission_form_submitted_date DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list admission forms")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Admission forms fetched successfully", dto.FromModels(list), &pagination)
}

// GET /api/v1/admission/forms/:id and /api/v1/parent/forms/:id
func (ctl *AdmissionFormController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission form id")
	}

	var ent model.AdmissionFormModel
	if err := ctl.DB.First(&ent, "admission_form_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admission form not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admission form")
	}

	// parents may only see their own form
	if role, _ := helperAuth.GetRole(c); role == "parent" {
		parentID, err := helperAuth.GetParentID(c)
		if err != nil {
			return err
		}
		if ent.AdmissionFormParentID != parentID {
			return helper.JsonError(c, fiber.StatusForbidden, "You do not own this admission form")
		}
	}

	return helper.JsonOK(c, "Admission form fetched successfully", dto.FromModel(ent))
}
