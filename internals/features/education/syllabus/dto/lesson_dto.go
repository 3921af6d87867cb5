package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"preschoolku_backend/internals/features/education/syllabus/model"
)

type LessonCreateDTO struct {
	LessonTopic       string   `json:"lesson_topic"       validate:"required,max=100"`
	LessonDescription string   `json:"lesson_description"`
	LessonMaterials   []string `json:"lesson_materials"   validate:"omitempty,dive,max=200"`
}

type LessonUpdateDTO struct {
	LessonTopic       *string  `json:"lesson_topic,omitempty"       validate:"omitempty,max=100"`
	LessonDescription *string  `json:"lesson_description,omitempty"`
	LessonMaterials   []string `json:"lesson_materials,omitempty"   validate:"omitempty,dive,max=200"`
}

type LessonResponseDTO struct {
	LessonID          uuid.UUID `json:"lesson_id"`
	LessonTopic       string    `json:"lesson_topic"`
	LessonDescription string    `json:"lesson_description"`
	LessonMaterials   []string  `json:"lesson_materials"`
	LessonCreatedAt   time.Time `json:"lesson_created_at"`
}

func (p *LessonCreateDTO) Normalize() {
	p.LessonTopic = strings.TrimSpace(p.LessonTopic)
	p.LessonDescription = strings.TrimSpace(p.LessonDescription)
}

func (p *LessonCreateDTO) ToModel() model.LessonModel {
	return model.LessonModel{
		LessonTopic:       p.LessonTopic,
		LessonDescription: p.LessonDescription,
		LessonMaterials:   pq.StringArray(p.LessonMaterials),
	}
}

func (u *LessonUpdateDTO) ApplyUpdates(ent *model.LessonModel) {
	if u.LessonTopic != nil {
		ent.LessonTopic = strings.TrimSpace(*u.LessonTopic)
	}
	if u.LessonDescription != nil {
		ent.LessonDescription = strings.TrimSpace(*u.LessonDescription)
	}
	if u.LessonMaterials != nil {
		ent.LessonMaterials = pq.StringArray(u.LessonMaterials)
	}
}

func LessonFromModel(ent model.LessonModel) LessonResponseDTO {
	return LessonResponseDTO{
		LessonID:          ent.LessonID,
		LessonTopic:       ent.LessonTopic,
		LessonDescription: ent.LessonDescription,
		LessonMaterials:   []string(ent.LessonMaterials),
		LessonCreatedAt:   ent.LessonCreatedAt,
	}
}

func LessonFromModels(list []model.LessonModel) []LessonResponseDTO {
	out := make([]LessonResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, LessonFromModel(it))
	}
	return out
}
