package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/admission/parents/model"
)

// =======================
// Request DTO
// =======================

type StudentCreateDTO struct {
	StudentFullName     string    `json:"student_full_name"      validate:"required,max=50"`
	StudentGender       string    `json:"student_gender"         validate:"required,oneof=male female"`
	StudentDateOfBirth  time.Time `json:"student_date_of_birth"  validate:"required"`
	StudentPlaceOfBirth string    `json:"student_place_of_birth" validate:"required,max=100"`
}

type StudentUpdateDTO struct {
	StudentFullName     *string    `json:"student_full_name,omitempty"      validate:"omitempty,max=50"`
	StudentGender       *string    `json:"student_gender,omitempty"         validate:"omitempty,oneof=male female"`
	StudentDateOfBirth  *time.Time `json:"student_date_of_birth,omitempty"`
	StudentPlaceOfBirth *string    `json:"student_place_of_birth,omitempty" validate:"omitempty,max=100"`
}

// =======================
// Response DTO
// =======================

type StudentResponseDTO struct {
	StudentID           uuid.UUID `json:"student_id"`
	StudentParentID     uuid.UUID `json:"student_parent_id"`
	StudentFullName     string    `json:"student_full_name"`
	StudentGender       string    `json:"student_gender"`
	StudentDateOfBirth  time.Time `json:"student_date_of_birth"`
	StudentPlaceOfBirth string    `json:"student_place_of_birth"`
	StudentCreatedAt    time.Time `json:"student_created_at"`
}

// =======================
// Helpers
// =======================

func (p *StudentCreateDTO) Normalize() {
	p.StudentFullName = strings.TrimSpace(p.StudentFullName)
	p.StudentGender = strings.ToLower(strings.TrimSpace(p.StudentGender))
	p.StudentPlaceOfBirth = strings.TrimSpace(p.StudentPlaceOfBirth)
}

func (p *StudentCreateDTO) ToModel(parentID uuid.UUID) model.StudentModel {
	return model.StudentModel{
		StudentParentID:     parentID,
		StudentFullName:     p.StudentFullName,
		StudentGender:       p.StudentGender,
		StudentDateOfBirth:  p.StudentDateOfBirth,
		StudentPlaceOfBirth: p.StudentPlaceOfBirth,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentFullName != nil {
		ent.StudentFullName = strings.TrimSpace(*u.StudentFullName)
	}
	if u.StudentGender != nil {
		ent.StudentGender = strings.ToLower(strings.TrimSpace(*u.StudentGender))
	}
	if u.StudentDateOfBirth != nil {
		ent.StudentDateOfBirth = *u.StudentDateOfBirth
	}
	if u.StudentPlaceOfBirth != nil {
		ent.StudentPlaceOfBirth = strings.TrimSpace(*u.StudentPlaceOfBirth)
	}
}

func StudentFromModel(ent model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:           ent.StudentID,
		StudentParentID:     ent.StudentParentID,
		StudentFullName:     ent.StudentFullName,
		StudentGender:       ent.StudentGender,
		StudentDateOfBirth:  ent.StudentDateOfBirth,
		StudentPlaceOfBirth: ent.StudentPlaceOfBirth,
		StudentCreatedAt:    ent.StudentCreatedAt,
	}
}

func StudentFromModels(list []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, StudentFromModel(it))
	}
	return out
}
