package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleModel is one class's plan for one week of the year.
type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`

	ScheduleClassID    uuid.UUID `gorm:"column:schedule_class_id;type:uuid;not null;uniqueIndex:uq_schedule_class_week;index" json:"schedule_class_id"`
	ScheduleWeekNumber int       `gorm:"column:schedule_week_number;not null;uniqueIndex:uq_schedule_class_week" json:"schedule_week_number"`

	ScheduleNote *string `gorm:"column:schedule_note;type:varchar(200)" json:"schedule_note,omitempty"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"-"`
}

func (ScheduleModel) TableName() string { return "schedules" }
