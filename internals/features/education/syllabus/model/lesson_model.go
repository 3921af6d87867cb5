package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID uuid.UUID `gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_id"`

	LessonTopic       string         `gorm:"column:lesson_topic;type:varchar(100);not null;index" json:"lesson_topic"`
	LessonDescription string         `gorm:"column:lesson_description;type:text" json:"lesson_description"`
	LessonMaterials   pq.StringArray `gorm:"column:lesson_materials;type:text[]" json:"lesson_materials"`

	LessonCreatedAt time.Time      `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time      `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"-"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeSave(_ *gorm.DB) error {
	m.LessonTopic = strings.TrimSpace(m.LessonTopic)
	return nil
}
