package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityModel is one timed slot inside a weekly schedule. Times are stored
// as "HH:MM" wall-clock strings; day of week is ISO, Monday=1.
type ActivityModel struct {
	ActivityID uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`

	ActivityScheduleID uuid.UUID  `gorm:"column:activity_schedule_id;type:uuid;not null;index" json:"activity_schedule_id"`
	ActivityLessonID   *uuid.UUID `gorm:"column:activity_lesson_id;type:uuid;index" json:"activity_lesson_id,omitempty"`

	ActivityTopic       string `gorm:"column:activity_topic;type:varchar(100);not null" json:"activity_topic"`
	ActivityDescription string `gorm:"column:activity_description;type:text" json:"activity_description"`

	ActivityDayOfWeek int    `gorm:"column:activity_day_of_week;not null" json:"activity_day_of_week"`
	ActivityStartTime string `gorm:"column:activity_start_time;type:varchar(5);not null" json:"activity_start_time"`
	ActivityEndTime   string `gorm:"column:activity_end_time;type:varchar(5);not null" json:"activity_end_time"`

	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time      `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;index" json:"-"`
}

func (ActivityModel) TableName() string { return "activities" }

func (m *ActivityModel) BeforeSave(_ *gorm.DB) error {
	m.ActivityTopic = strings.TrimSpace(m.ActivityTopic)
	return nil
}
