package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SyllabusModel struct {
	SyllabusID uuid.UUID `gorm:"column:syllabus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"syllabus_id"`

	SyllabusName        string `gorm:"column:syllabus_name;type:varchar(100);not null" json:"syllabus_name"`
	SyllabusDescription string `gorm:"column:syllabus_description;type:text" json:"syllabus_description"`
	SyllabusGrade       string `gorm:"column:syllabus_grade;type:varchar(10);not null;index" json:"syllabus_grade"`

	SyllabusCreatedAt time.Time      `gorm:"column:syllabus_created_at;autoCreateTime" json:"syllabus_created_at"`
	SyllabusUpdatedAt time.Time      `gorm:"column:syllabus_updated_at;autoUpdateTime" json:"syllabus_updated_at"`
	SyllabusDeletedAt gorm.DeletedAt `gorm:"column:syllabus_deleted_at;index" json:"-"`
}

func (SyllabusModel) TableName() string { return "syllabus" }

func (m *SyllabusModel) BeforeSave(_ *gorm.DB) error {
	m.SyllabusName = strings.TrimSpace(m.SyllabusName)
	m.SyllabusGrade = strings.ToLower(strings.TrimSpace(m.SyllabusGrade))
	return nil
}
