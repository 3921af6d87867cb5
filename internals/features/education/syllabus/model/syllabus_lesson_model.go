package model

import (
	"time"

	"github.com/google/uuid"
)

// SyllabusLessonModel links one lesson into one syllabus, with an optional
// teaching note. Rows are replaced wholesale when a syllabus's lesson list is
// updated, so the join carries no soft delete.
type SyllabusLessonModel struct {
	SyllabusLessonID uuid.UUID `gorm:"column:syllabus_lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"syllabus_lesson_id"`

	SyllabusLessonSyllabusID uuid.UUID `gorm:"column:syllabus_lesson_syllabus_id;type:uuid;not null;uniqueIndex:uq_syllabus_lesson_pair;index" json:"syllabus_lesson_syllabus_id"`
	SyllabusLessonLessonID   uuid.UUID `gorm:"column:syllabus_lesson_lesson_id;type:uuid;not null;uniqueIndex:uq_syllabus_lesson_pair" json:"syllabus_lesson_lesson_id"`

	SyllabusLessonNote *string `gorm:"column:syllabus_lesson_note;type:varchar(200)" json:"syllabus_lesson_note,omitempty"`

	SyllabusLessonCreatedAt time.Time `gorm:"column:syllabus_lesson_created_at;autoCreateTime" json:"syllabus_lesson_created_at"`
}

func (SyllabusLessonModel) TableName() string { return "syllabus_lessons" }
