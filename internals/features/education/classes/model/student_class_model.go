package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentClassModel enrolls one student into one class.
type StudentClassModel struct {
	StudentClassID uuid.UUID `gorm:"column:student_class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_class_id"`

	StudentClassStudentID uuid.UUID `gorm:"column:student_class_student_id;type:uuid;not null;uniqueIndex:uq_student_class_pair" json:"student_class_student_id"`
	StudentClassClassID   uuid.UUID `gorm:"column:student_class_class_id;type:uuid;not null;uniqueIndex:uq_student_class_pair;index" json:"student_class_class_id"`

	StudentClassCreatedAt time.Time      `gorm:"column:student_class_created_at;autoCreateTime" json:"student_class_created_at"`
	StudentClassDeletedAt gorm.DeletedAt `gorm:"column:student_class_deleted_at;index" json:"-"`
}

func (StudentClassModel) TableName() string { return "student_classes" }
