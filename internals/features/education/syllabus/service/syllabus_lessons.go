package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/education/syllabus/model"
)

var ErrSyllabusNeedsLesson = errors.New("A syllabus must contain at least one lesson")

// LessonRef is one entry of a syllabus's lesson list.
type LessonRef struct {
	LessonID uuid.UUID
	Note     *string
}

// DedupeLessonRefs drops repeated lesson IDs, keeping the first occurrence.
func DedupeLessonRefs(refs []LessonRef) []LessonRef {
	seen := make(map[uuid.UUID]struct{}, len(refs))
	out := make([]LessonRef, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r.LessonID]; ok {
			continue
		}
		seen[r.LessonID] = struct{}{}
		out = append(out, r)
	}
	return out
}

// ReplaceLessons swaps a syllabus's full lesson list inside tx: the old join
// rows are removed and the new set inserted, so a failure partway leaves the
// previous list intact.
func ReplaceLessons(tx *gorm.DB, syllabusID uuid.UUID, refs []LessonRef) error {
	refs = DedupeLessonRefs(refs)
	if len(refs) == 0 {
		return ErrSyllabusNeedsLesson
	}

	ids := make([]uuid.UUID, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.LessonID)
	}
	var cnt int64
	if err := tx.Model(&model.LessonModel{}).Where("lesson_id IN ?", ids).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt != int64(len(ids)) {
		return fmt.Errorf("one or more lessons do not exist")
	}

	if err := tx.Where("syllabus_lesson_syllabus_id = ?", syllabusID).
		Delete(&model.SyllabusLessonModel{}).Error; err != nil {
		return err
	}

	rows := make([]model.SyllabusLessonModel, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, model.SyllabusLessonModel{
			SyllabusLessonSyllabusID: syllabusID,
			SyllabusLessonLessonID:   r.LessonID,
			SyllabusLessonNote:       r.Note,
		})
	}
	return tx.Create(&rows).Error
}
