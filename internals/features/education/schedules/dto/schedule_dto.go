package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/education/schedules/model"
)

// =======================
// Schedule DTO
// =======================

type ScheduleCreateDTO struct {
	ScheduleClassID    uuid.UUID `json:"schedule_class_id"    validate:"required"`
	ScheduleWeekNumber int       `json:"schedule_week_number" validate:"required"`
	ScheduleNote       *string   `json:"schedule_note,omitempty" validate:"omitempty,max=200"`
}

type ScheduleUpdateDTO struct {
	ScheduleNote *string `json:"schedule_note,omitempty" validate:"omitempty,max=200"`
}

type ScheduleResponseDTO struct {
	ScheduleID         uuid.UUID `json:"schedule_id"`
	ScheduleClassID    uuid.UUID `json:"schedule_class_id"`
	ScheduleWeekNumber int       `json:"schedule_week_number"`
	ScheduleNote       *string   `json:"schedule_note,omitempty"`
	ScheduleCreatedAt  time.Time `json:"schedule_created_at"`

	Activities []ActivityResponseDTO `json:"activities,omitempty"`
}

func (p *ScheduleCreateDTO) ToModel() model.ScheduleModel {
	return model.ScheduleModel{
		ScheduleClassID:    p.ScheduleClassID,
		ScheduleWeekNumber: p.ScheduleWeekNumber,
		ScheduleNote:       p.ScheduleNote,
	}
}

func ScheduleFromModel(ent model.ScheduleModel) ScheduleResponseDTO {
	return ScheduleResponseDTO{
		ScheduleID:         ent.ScheduleID,
		ScheduleClassID:    ent.ScheduleClassID,
		ScheduleWeekNumber: ent.ScheduleWeekNumber,
		ScheduleNote:       ent.ScheduleNote,
		ScheduleCreatedAt:  ent.ScheduleCreatedAt,
	}
}

func ScheduleFromModels(list []model.ScheduleModel) []ScheduleResponseDTO {
	out := make([]ScheduleResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, ScheduleFromModel(it))
	}
	return out
}

// =======================
// Activity DTO
// =======================

type ActivityCreateDTO struct {
	ActivityLessonID *uuid.UUID `json:"activity_lesson_id,omitempty"`

	ActivityTopic       string `json:"activity_topic"       validate:"required,max=100"`
	ActivityDescription string `json:"activity_description"`

	ActivityDayOfWeek int    `json:"activity_day_of_week" validate:"required"`
	ActivityStartTime string `json:"activity_start_time"  validate:"required"`
	ActivityEndTime   string `json:"activity_end_time"    validate:"required"`
}

type ActivityUpdateDTO struct {
	ActivityLessonID *uuid.UUID `json:"activity_lesson_id,omitempty"`

	ActivityTopic       *string `json:"activity_topic,omitempty" validate:"omitempty,max=100"`
	ActivityDescription *string `json:"activity_description,omitempty"`

	ActivityDayOfWeek *int    `json:"activity_day_of_week,omitempty"`
	ActivityStartTime *string `json:"activity_start_time,omitempty"`
	ActivityEndTime   *string `json:"activity_end_time,omitempty"`
}

type ActivityResponseDTO struct {
	ActivityID         uuid.UUID  `json:"activity_id"`
	ActivityScheduleID uuid.UUID  `json:"activity_schedule_id"`
	ActivityLessonID   *uuid.UUID `json:"activity_lesson_id,omitempty"`

	ActivityTopic       string `json:"activity_topic"`
	ActivityDescription string `json:"activity_description"`

	ActivityDayOfWeek int    `json:"activity_day_of_week"`
	ActivityStartTime string `json:"activity_start_time"`
	ActivityEndTime   string `json:"activity_end_time"`

	ActivityCreatedAt time.Time `json:"activity_created_at"`
}

func (p *ActivityCreateDTO) Normalize() {
	p.ActivityTopic = strings.TrimSpace(p.ActivityTopic)
	p.ActivityDescription = strings.TrimSpace(p.ActivityDescription)
	p.ActivityStartTime = strings.TrimSpace(p.ActivityStartTime)
	p.ActivityEndTime = strings.TrimSpace(p.ActivityEndTime)
}

func (p *ActivityCreateDTO) ToModel(scheduleID uuid.UUID) model.ActivityModel {
	return model.ActivityModel{
		ActivityScheduleID:  scheduleID,
		ActivityLessonID:    p.ActivityLessonID,
		ActivityTopic:       p.ActivityTopic,
		ActivityDescription: p.ActivityDescription,
		ActivityDayOfWeek:   p.ActivityDayOfWeek,
		ActivityStartTime:   p.ActivityStartTime,
		ActivityEndTime:     p.ActivityEndTime,
	}
}

func (u *ActivityUpdateDTO) ApplyUpdates(ent *model.ActivityModel) {
	if u.ActivityLessonID != nil {
		ent.ActivityLessonID = u.ActivityLessonID
	}
	if u.ActivityTopic != nil {
		ent.ActivityTopic = strings.TrimSpace(*u.ActivityTopic)
	}
	if u.ActivityDescription != nil {
		ent.ActivityDescription = strings.TrimSpace(*u.ActivityDescription)
	}
	if u.ActivityDayOfWeek != nil {
		ent.ActivityDayOfWeek = *u.ActivityDayOfWeek
	}
	if u.ActivityStartTime != nil {
		ent.ActivityStartTime = strings.TrimSpace(*u.ActivityStartTime)
	}
	if u.ActivityEndTime != nil {
		ent.ActivityEndTime = strings.TrimSpace(*u.ActivityEndTime)
	}
}

func ActivityFromModel(ent model.ActivityModel) ActivityResponseDTO {
	return ActivityResponseDTO{
		ActivityID:          ent.ActivityID,
		ActivityScheduleID:  ent.ActivityScheduleID,
		ActivityLessonID:    ent.ActivityLessonID,
		ActivityTopic:       ent.ActivityTopic,
		ActivityDescription: ent.ActivityDescription,
		ActivityDayOfWeek:   ent.ActivityDayOfWeek,
		ActivityStartTime:   ent.ActivityStartTime,
		ActivityEndTime:     ent.ActivityEndTime,
		ActivityCreatedAt:   ent.ActivityCreatedAt,
	}
}

func ActivityFromModels(list []model.ActivityModel) []ActivityResponseDTO {
	out := make([]ActivityResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, ActivityFromModel(it))
	}
	return out
}
