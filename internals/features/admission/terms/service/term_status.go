package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/terms/model"
)

// ResolveTermStatus derives a term's status from its date range.
// Exactly one of the three statuses holds for any today.
func ResolveTermStatus(today, startDate, endDate time.Time) model.TermStatus {
	if today.Before(startDate) {
		return model.TermStatusInactive
	}
	if today.After(endDate) {
		return model.TermStatusLocked
	}
	return model.TermStatusActive
}

// SyncTermStatus recomputes the term's status and persists it when the stored
// value is stale. The date range stays the source of truth; the column is a
// write-through cache.
func SyncTermStatus(db *gorm.DB, term *model.AdmissionTermModel, today time.Time) error {
	computed := ResolveTermStatus(today, term.AdmissionTermStartDate, term.AdmissionTermEndDate)
	if term.AdmissionTermStatus == computed {
		return nil
	}
	term.AdmissionTermStatus = computed
	return db.Model(&model.AdmissionTermModel{}).
		Where("admission_term_id = ?", term.AdmissionTermID).
		Update("admission_term_status", computed).Error
}

// SyncTermStatuses applies SyncTermStatus across a slice, logging instead of
// failing the read path when a single write-back errors.
func SyncTermStatuses(db *gorm.DB, terms []model.AdmissionTermModel, today time.Time) {
	for i := range terms {
		if err := SyncTermStatus(db, &terms[i], today); err != nil {
			log.Printf("[WARN] term status write-back failed for %s: %v", terms[i].AdmissionTermID, err)
		}
	}
}

// FilterTermsByStatus keeps only the terms whose status matches want. Callers
// filtering a freshly synced slice use this to drop rows whose stored status
// went stale between sweeps.
func FilterTermsByStatus(terms []model.AdmissionTermModel, want model.TermStatus) []model.AdmissionTermModel {
	kept := terms[:0]
	for i := range terms {
		if terms[i].AdmissionTermStatus == want {
			kept = append(kept, terms[i])
		}
	}
	return kept
}

// SweepTermStatuses recomputes every live term's status in bulk; used by the
// nightly cron as a safety net behind the lazy per-read sync.
func SweepTermStatuses(db *gorm.DB, today time.Time) (int, error) {
	var terms []model.AdmissionTermModel
	if err := db.Find(&terms).Error; err != nil {
		return 0, err
	}
	updated := 0
	for i := range terms {
		before := terms[i].AdmissionTermStatus
		if err := SyncTermStatus(db, &terms[i], today); err != nil {
			return updated, err
		}
		if terms[i].AdmissionTermStatus != before {
			updated++
		}
	}
	return updated, nil
}
