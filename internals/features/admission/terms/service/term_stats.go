package service

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"preschoolku_backend/internals/features/admission/terms/model"
)

// TermStats is the denormalized per-term form tally stored in the jsonb
// stats column. Rebuilt from the forms table, never incremented in place.
type TermStats struct {
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

// RefreshTermStats recounts the term's forms by status and writes the result
// into the stats column. Callers invoke it after any form transition.
func RefreshTermStats(db *gorm.DB, termID uuid.UUID) (TermStats, error) {
	type row struct {
		Status string
		Cnt    int64
	}
	var rows []row
	if err := db.Table("admission_forms").
		Select("admission_form_status AS status, COUNT(*) AS cnt").
		Where("admission_form_term_id = ? AND admission_form_deleted_at IS NULL", termID).
		Group("admission_form_status").
		Scan(&rows).Error; err != nil {
		return TermStats{}, err
	}

	var stats TermStats
	for _, r := range rows {
		switch r.Status {
		case "PENDING_APPROVAL":
			stats.Pending = r.Cnt
		case "APPROVED":
			stats.Approved = r.Cnt
		case "REJECTED":
			stats.Rejected = r.Cnt
		case "CANCELLED":
			stats.Cancelled = r.Cnt
		}
		stats.Total += r.Cnt
	}

	payload, err := statsJSON(stats)
	if err != nil {
		return stats, err
	}
	if err := db.Model(&model.AdmissionTermModel{}).
		Where("admission_term_id = ?", termID).
		Update("admission_term_stats", payload).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

func statsJSON(stats TermStats) (datatypes.JSON, error) {
	b, err := sonic.Marshal(stats)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
