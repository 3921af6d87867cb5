package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/education/syllabus/model"
)

// =======================
// Request DTO
// =======================

type SyllabusLessonRefDTO struct {
	LessonID uuid.UUID `json:"lesson_id" validate:"required"`
	Note     *string   `json:"note,omitempty" validate:"omitempty,max=200"`
}

type SyllabusCreateDTO struct {
	SyllabusName        string `json:"syllabus_name"        validate:"required,max=100"`
	SyllabusDescription string `json:"syllabus_description"`
	SyllabusGrade       string `json:"syllabus_grade"       validate:"required,oneof=seed bud leaf"`

	Lessons []SyllabusLessonRefDTO `json:"lessons" validate:"required,min=1,dive"`
}

type SyllabusUpdateDTO struct {
	SyllabusName        *string `json:"syllabus_name,omitempty"        validate:"omitempty,max=100"`
	SyllabusDescription *string `json:"syllabus_description,omitempty"`
	SyllabusGrade       *string `json:"syllabus_grade,omitempty"       validate:"omitempty,oneof=seed bud leaf"`

	// when present, replaces the full lesson list
	Lessons []SyllabusLessonRefDTO `json:"lessons,omitempty" validate:"omitempty,min=1,dive"`
}

// =======================
// Response DTO
// =======================

type SyllabusLessonResponseDTO struct {
	LessonID          uuid.UUID `json:"lesson_id"`
	LessonTopic       string    `json:"lesson_topic"`
	LessonDescription string    `json:"lesson_description"`
	LessonMaterials   []string  `json:"lesson_materials"`
	Note              *string   `json:"note,omitempty"`
}

type SyllabusResponseDTO struct {
	SyllabusID          uuid.UUID `json:"syllabus_id"`
	SyllabusName        string    `json:"syllabus_name"`
	SyllabusDescription string    `json:"syllabus_description"`
	SyllabusGrade       string    `json:"syllabus_grade"`
	SyllabusCreatedAt   time.Time `json:"syllabus_created_at"`

	Lessons []SyllabusLessonResponseDTO `json:"lessons,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *SyllabusCreateDTO) Normalize() {
	p.SyllabusName = strings.TrimSpace(p.SyllabusName)
	p.SyllabusDescription = strings.TrimSpace(p.SyllabusDescription)
	p.SyllabusGrade = strings.ToLower(strings.TrimSpace(p.SyllabusGrade))
}

func (p *SyllabusCreateDTO) ToModel() model.SyllabusModel {
	return model.SyllabusModel{
		SyllabusName:        p.SyllabusName,
		SyllabusDescription: p.SyllabusDescription,
		SyllabusGrade:       p.SyllabusGrade,
	}
}

func (u *SyllabusUpdateDTO) ApplyUpdates(ent *model.SyllabusModel) {
	if u.SyllabusName != nil {
		ent.SyllabusName = strings.TrimSpace(*u.SyllabusName)
	}
	if u.SyllabusDescription != nil {
		ent.SyllabusDescription = strings.TrimSpace(*u.SyllabusDescription)
	}
	if u.SyllabusGrade != nil {
		ent.SyllabusGrade = strings.ToLower(strings.TrimSpace(*u.SyllabusGrade))
	}
}

func SyllabusFromModel(ent model.SyllabusModel) SyllabusResponseDTO {
	return SyllabusResponseDTO{
		SyllabusID:          ent.SyllabusID,
		SyllabusName:        ent.SyllabusName,
		SyllabusDescription: ent.SyllabusDescription,
		SyllabusGrade:       ent.SyllabusGrade,
		SyllabusCreatedAt:   ent.SyllabusCreatedAt,
	}
}

func SyllabusFromModels(list []model.SyllabusModel) []SyllabusResponseDTO {
	out := make([]SyllabusResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, SyllabusFromModel(it))
	}
	return out
}
