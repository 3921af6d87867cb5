package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentParentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_parent_id" json:"student_parent_id"`

	StudentFullName string `gorm:"type:varchar(50);not null;column:student_full_name" json:"student_full_name"`
	// male | female
	StudentGender       string    `gorm:"type:varchar(10);not null;column:student_gender" json:"student_gender"`
	StudentDateOfBirth  time.Time `gorm:"type:date;not null;column:student_date_of_birth" json:"student_date_of_birth"`
	StudentPlaceOfBirth string    `gorm:"type:varchar(100);not null;column:student_place_of_birth" json:"student_place_of_birth"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentFullName = strings.TrimSpace(m.StudentFullName)
	m.StudentGender = strings.ToLower(strings.TrimSpace(m.StudentGender))
	m.StudentPlaceOfBirth = strings.TrimSpace(m.StudentPlaceOfBirth)
	return nil
}
