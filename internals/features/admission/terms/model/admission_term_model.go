package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TermStatus is the closed status domain for admission terms. The stored value
// is a cache: it is recomputed from the date range on every read and persisted
// when stale.
type TermStatus string

const (
	TermStatusInactive TermStatus = "INACTIVE_TERM"
	TermStatusActive   TermStatus = "ACTIVE_TERM"
	TermStatusLocked   TermStatus = "LOCKED_TERM"
)

func (s TermStatus) Valid() bool {
	switch s {
	case TermStatusInactive, TermStatusActive, TermStatusLocked:
		return true
	}
	return false
}

// Grade is the closed preschool grade domain.
const (
	GradeSeed = "seed" // age 3
	GradeBud  = "bud"  // age 4
	GradeLeaf = "leaf" // age 5
)

type AdmissionTermModel struct {
	AdmissionTermID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_term_id" json:"admission_term_id"`

	AdmissionTermName      string    `gorm:"type:varchar(100);not null;column:admission_term_name" json:"admission_term_name"`
	AdmissionTermStartDate time.Time `gorm:"type:timestamptz;not null;column:admission_term_start_date" json:"admission_term_start_date"`
	AdmissionTermEndDate   time.Time `gorm:"type:timestamptz;not null;column:admission_term_end_date" json:"admission_term_end_date"`
	AdmissionTermYear      int       `gorm:"not null;column:admission_term_year" json:"admission_term_year"`

	AdmissionTermMaxNumberRegistration int    `gorm:"not null;column:admission_term_max_number_registration" json:"admission_term_max_number_registration"`
	AdmissionTermGrade                 string `gorm:"type:varchar(20);not null;column:admission_term_grade" json:"admission_term_grade"`

	AdmissionTermStatus TermStatus `gorm:"type:varchar(20);not null;column:admission_term_status" json:"admission_term_status"`

	// flexible registration stats (counts per status etc.)
	AdmissionTermStats datatypes.JSON `gorm:"type:jsonb;column:admission_term_stats" json:"admission_term_stats,omitempty"`

	AdmissionTermCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:admission_term_created_at" json:"admission_term_created_at"`
	AdmissionTermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:admission_term_updated_at" json:"admission_term_updated_at"`
	AdmissionTermDeletedAt gorm.DeletedAt `gorm:"column:admission_term_deleted_at;index" json:"admission_term_deleted_at,omitempty"`
}

func (AdmissionTermModel) TableName() string { return "admission_terms" }

func (m *AdmissionTermModel) BeforeSave(tx *gorm.DB) error {
	// mirror CHECK: end >= start
	if m.AdmissionTermEndDate.Before(m.AdmissionTermStartDate) {
		return errors.New("admission_term_end_date must be >= admission_term_start_date")
	}
	m.AdmissionTermName = strings.TrimSpace(m.AdmissionTermName)
	m.AdmissionTermGrade = strings.ToLower(strings.TrimSpace(m.AdmissionTermGrade))
	if !m.AdmissionTermStatus.Valid() {
		return errors.New("invalid admission_term_status")
	}
	return nil
}
