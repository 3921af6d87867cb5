package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/education/classes/model"
)

// =======================
// Request DTO
// =======================

type ClassCreateDTO struct {
	ClassName          string    `json:"class_name"           validate:"required,max=100"`
	ClassNumberStudent int       `json:"class_number_student" validate:"required,min=1"`
	ClassRoomNumber    string    `json:"class_room_number"    validate:"required,max=10"`
	ClassStartDate     time.Time `json:"class_start_date"     validate:"required"`
	ClassEndDate       time.Time `json:"class_end_date"       validate:"required,gtefield=ClassStartDate"`
	ClassGrade         string    `json:"class_grade"          validate:"required,oneof=seed bud leaf"`

	ClassSyllabusID *uuid.UUID `json:"class_syllabus_id,omitempty"`
	ClassTeacherID  uuid.UUID  `json:"class_teacher_id" validate:"required"`
}

type ClassUpdateDTO struct {
	ClassName          *string    `json:"class_name,omitempty"           validate:"omitempty,max=100"`
	ClassNumberStudent *int       `json:"class_number_student,omitempty" validate:"omitempty,min=1"`
	ClassRoomNumber    *string    `json:"class_room_number,omitempty"    validate:"omitempty,max=10"`
	ClassStartDate     *time.Time `json:"class_start_date,omitempty"`
	ClassEndDate       *time.Time `json:"class_end_date,omitempty"`
	ClassStatus        *string    `json:"class_status,omitempty"         validate:"omitempty,oneof=ACTIVE INACTIVE"`
	ClassGrade         *string    `json:"class_grade,omitempty"          validate:"omitempty,oneof=seed bud leaf"`

	ClassSyllabusID *uuid.UUID `json:"class_syllabus_id,omitempty"`
	ClassTeacherID  *uuid.UUID `json:"class_teacher_id,omitempty"`
}

type EnrollStudentDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type ClassResponseDTO struct {
	ClassID            uuid.UUID         `json:"class_id"`
	ClassName          string            `json:"class_name"`
	ClassNumberStudent int               `json:"class_number_student"`
	ClassRoomNumber    string            `json:"class_room_number"`
	ClassStartDate     time.Time         `json:"class_start_date"`
	ClassEndDate       time.Time         `json:"class_end_date"`
	ClassStatus        model.ClassStatus `json:"class_status"`
	ClassGrade         string            `json:"class_grade"`
	ClassSyllabusID    *uuid.UUID        `json:"class_syllabus_id,omitempty"`
	ClassTeacherID     uuid.UUID         `json:"class_teacher_id"`
	ClassCreatedAt     time.Time         `json:"class_created_at"`

	ClassEnrolledCount *int64 `json:"class_enrolled_count,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *ClassCreateDTO) Normalize() {
	p.ClassName = strings.TrimSpace(p.ClassName)
	p.ClassRoomNumber = strings.TrimSpace(p.ClassRoomNumber)
	p.ClassGrade = strings.ToLower(strings.TrimSpace(p.ClassGrade))
}

func (p *ClassCreateDTO) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassName:          p.ClassName,
		ClassNumberStudent: p.ClassNumberStudent,
		ClassRoomNumber:    p.ClassRoomNumber,
		ClassStartDate:     p.ClassStartDate,
		ClassEndDate:       p.ClassEndDate,
		ClassStatus:        model.ClassStatusActive,
		ClassGrade:         p.ClassGrade,
		ClassSyllabusID:    p.ClassSyllabusID,
		ClassTeacherID:     p.ClassTeacherID,
	}
}

func (u *ClassUpdateDTO) ApplyUpdates(ent *model.ClassModel) {
	if u.ClassName != nil {
		ent.ClassName = strings.TrimSpace(*u.ClassName)
	}
	if u.ClassNumberStudent != nil {
		ent.ClassNumberStudent = *u.ClassNumberStudent
	}
	if u.ClassRoomNumber != nil {
		ent.ClassRoomNumber = strings.TrimSpace(*u.ClassRoomNumber)
	}
	if u.ClassStartDate != nil {
		ent.ClassStartDate = *u.ClassStartDate
	}
	if u.ClassEndDate != nil {
		ent.ClassEndDate = *u.ClassEndDate
	}
	if u.ClassStatus != nil {
		ent.ClassStatus = model.ClassStatus(*u.ClassStatus)
	}
	if u.ClassGrade != nil {
		ent.ClassGrade = strings.ToLower(strings.TrimSpace(*u.ClassGrade))
	}
	if u.ClassSyllabusID != nil {
		ent.ClassSyllabusID = u.ClassSyllabusID
	}
	if u.ClassTeacherID != nil {
		ent.ClassTeacherID = *u.ClassTeacherID
	}
}

func FromModel(ent model.ClassModel) ClassResponseDTO {
	return ClassResponseDTO{
		ClassID:            ent.ClassID,
		ClassName:          ent.ClassName,
		ClassNumberStudent: ent.ClassNumberStudent,
		ClassRoomNumber:    ent.ClassRoomNumber,
		ClassStartDate:     ent.ClassStartDate,
		ClassEndDate:       ent.ClassEndDate,
		ClassStatus:        ent.ClassStatus,
		ClassGrade:         ent.ClassGrade,
		ClassSyllabusID:    ent.ClassSyllabusID,
		ClassTeacherID:     ent.ClassTeacherID,
		ClassCreatedAt:     ent.ClassCreatedAt,
	}
}

func FromModels(list []model.ClassModel) []ClassResponseDTO {
	out := make([]ClassResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
