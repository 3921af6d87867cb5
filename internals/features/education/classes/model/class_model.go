package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassStatus is the closed set of class lifecycle states.
type ClassStatus string

const (
	ClassStatusActive   ClassStatus = "ACTIVE"
	ClassStatusInactive ClassStatus = "INACTIVE"
)

func (s ClassStatus) Valid() bool {
	return s == ClassStatusActive || s == ClassStatusInactive
}

type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName          string `gorm:"column:class_name;type:varchar(100);not null;uniqueIndex:uq_classes_name,where:class_deleted_at IS NULL" json:"class_name"`
	ClassNumberStudent int    `gorm:"column:class_number_student;not null" json:"class_number_student"`
	ClassRoomNumber    string `gorm:"column:class_room_number;type:varchar(10);not null" json:"class_room_number"`

	ClassStartDate time.Time   `gorm:"column:class_start_date;type:date;not null" json:"class_start_date"`
	ClassEndDate   time.Time   `gorm:"column:class_end_date;type:date;not null" json:"class_end_date"`
	ClassStatus    ClassStatus `gorm:"column:class_status;type:varchar(20);not null;default:'ACTIVE';index" json:"class_status"`
	ClassGrade     string      `gorm:"column:class_grade;type:varchar(10);not null;index" json:"class_grade"`

	ClassSyllabusID *uuid.UUID `gorm:"column:class_syllabus_id;type:uuid;index" json:"class_syllabus_id,omitempty"`
	ClassTeacherID  uuid.UUID  `gorm:"column:class_teacher_id;type:uuid;not null;index" json:"class_teacher_id"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeSave(_ *gorm.DB) error {
	m.ClassName = strings.TrimSpace(m.ClassName)
	m.ClassRoomNumber = strings.TrimSpace(m.ClassRoomNumber)
	m.ClassGrade = strings.ToLower(strings.TrimSpace(m.ClassGrade))
	if m.ClassStatus == "" {
		m.ClassStatus = ClassStatusActive
	}
	if !m.ClassStatus.Valid() {
		return fmt.Errorf("invalid class status: %q", m.ClassStatus)
	}
	if m.ClassNumberStudent <= 0 {
		return fmt.Errorf("class capacity must be positive")
	}
	return nil
}
