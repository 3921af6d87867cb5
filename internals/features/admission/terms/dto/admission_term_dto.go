package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"preschoolku_backend/internals/features/admission/terms/model"
)

// =======================
// Request DTO
// =======================

type AdmissionTermCreateDTO struct {
	AdmissionTermName      string    `json:"admission_term_name"       validate:"required,max=100"`
	AdmissionTermStartDate time.Time `json:"admission_term_start_date" validate:"required"`
	AdmissionTermEndDate   time.Time `json:"admission_term_end_date"   validate:"required,gtefield=AdmissionTermStartDate"`
	AdmissionTermYear      int       `json:"admission_term_year"       validate:"required,min=2000,max=2100"`

	AdmissionTermMaxNumberRegistration int    `json:"admission_term_max_number_registration" validate:"required,min=1"`
	AdmissionTermGrade                 string `json:"admission_term_grade"                   validate:"required,oneof=seed bud leaf"`
}

type AdmissionTermUpdateDTO struct {
	AdmissionTermName      *string    `json:"admission_term_name,omitempty"       validate:"omitempty,max=100"`
	AdmissionTermStartDate *time.Time `json:"admission_term_start_date,omitempty"`
	AdmissionTermEndDate   *time.Time `json:"admission_term_end_date,omitempty"`
	AdmissionTermYear      *int       `json:"admission_term_year,omitempty"       validate:"omitempty,min=2000,max=2100"`

	AdmissionTermMaxNumberRegistration *int    `json:"admission_term_max_number_registration,omitempty" validate:"omitempty,min=1"`
	AdmissionTermGrade                 *string `json:"admission_term_grade,omitempty"                   validate:"omitempty,oneof=seed bud leaf"`
}

// =======================
// Response DTO
// =======================

type AdmissionTermResponseDTO struct {
	AdmissionTermID        uuid.UUID        `json:"admission_term_id"`
	AdmissionTermName      string           `json:"admission_term_name"`
	AdmissionTermStartDate time.Time        `json:"admission_term_start_date"`
	AdmissionTermEndDate   time.Time        `json:"admission_term_end_date"`
	AdmissionTermYear      int              `json:"admission_term_year"`
	AdmissionTermGrade     string           `json:"admission_term_grade"`
	AdmissionTermStatus    model.TermStatus `json:"admission_term_status"`

	AdmissionTermMaxNumberRegistration int `json:"admission_term_max_number_registration"`

	AdmissionTermStats     datatypes.JSON `json:"admission_term_stats,omitempty"`
	AdmissionTermCreatedAt time.Time      `json:"admission_term_created_at"`
}

// =======================
// Helpers
// =======================

func (p *AdmissionTermCreateDTO) Normalize() {
	p.AdmissionTermName = strings.TrimSpace(p.AdmissionTermName)
	p.AdmissionTermGrade = strings.ToLower(strings.TrimSpace(p.AdmissionTermGrade))
}

func (p *AdmissionTermCreateDTO) ToModel(status model.TermStatus) model.AdmissionTermModel {
	return model.AdmissionTermModel{
		AdmissionTermName:                  p.AdmissionTermName,
		AdmissionTermStartDate:             p.AdmissionTermStartDate,
		AdmissionTermEndDate:               p.AdmissionTermEndDate,
		AdmissionTermYear:                  p.AdmissionTermYear,
		AdmissionTermMaxNumberRegistration: p.AdmissionTermMaxNumberRegistration,
		AdmissionTermGrade:                 p.AdmissionTermGrade,
		AdmissionTermStatus:                status,
	}
}

func (u *AdmissionTermUpdateDTO) ApplyUpdates(ent *model.AdmissionTermModel) {
	if u.AdmissionTermName != nil {
		ent.AdmissionTermName = strings.TrimSpace(*u.AdmissionTermName)
	}
	if u.AdmissionTermStartDate != nil {
		ent.AdmissionTermStartDate = *u.AdmissionTermStartDate
	}
	if u.AdmissionTermEndDate != nil {
		ent.AdmissionTermEndDate = *u.AdmissionTermEndDate
	}
	if u.AdmissionTermYear != nil {
		ent.AdmissionTermYear = *u.AdmissionTermYear
	}
	if u.AdmissionTermMaxNumberRegistration != nil {
		ent.AdmissionTermMaxNumberRegistration = *u.AdmissionTermMaxNumberRegistration
	}
	if u.AdmissionTermGrade != nil {
		ent.AdmissionTermGrade = strings.ToLower(strings.TrimSpace(*u.AdmissionTermGrade))
	}
}

func FromModel(ent model.AdmissionTermModel) AdmissionTermResponseDTO {
	return AdmissionTermResponseDTO{
		AdmissionTermID:                    ent.AdmissionTermID,
		AdmissionTermName:                  ent.AdmissionTermName,
		AdmissionTermStartDate:             ent.AdmissionTermStartDate,
		AdmissionTermEndDate:               ent.AdmissionTermEndDate,
		AdmissionTermYear:                  ent.AdmissionTermYear,
		AdmissionTermGrade:                 ent.AdmissionTermGrade,
		AdmissionTermStatus:                ent.AdmissionTermStatus,
		AdmissionTermMaxNumberRegistration: ent.AdmissionTermMaxNumberRegistration,
		AdmissionTermStats:                 ent.AdmissionTermStats,
		AdmissionTermCreatedAt:             ent.AdmissionTermCreatedAt,
	}
}

func FromModels(list []model.AdmissionTermModel) []AdmissionTermResponseDTO {
	out := make([]AdmissionTermResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
