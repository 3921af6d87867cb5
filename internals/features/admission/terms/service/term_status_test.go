package service

import (
	"testing"
	"time"

	"preschoolku_backend/internals/features/admission/terms/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestResolveTermStatus(t *testing.T) {
	start := date(2025, 1, 1)
	end := date(2025, 1, 31)

	tests := []struct {
		name  string
		today time.Time
		want  model.TermStatus
	}{
		{"before window", date(2024, 12, 31), model.TermStatusInactive},
		{"first day", start, model.TermStatusActive},
		{"mid window", date(2025, 1, 15), model.TermStatusActive},
		{"last day", end, model.TermStatusActive},
		{"day after end", date(2025, 2, 1), model.TermStatusLocked},
		{"long after end", date(2026, 6, 1), model.TermStatusLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTermStatus(tt.today, start, end); got != tt.want {
				t.Errorf("ResolveTermStatus(%v) = %v, want %v", tt.today, got, tt.want)
			}
		})
	}
}

// A term whose stored status went stale overnight must not leak through a
// status filter once the slice has been re-synced.
func TestFilterTermsByStatus(t *testing.T) {
	terms := []model.AdmissionTermModel{
		{AdmissionTermGrade: "seed", AdmissionTermStatus: model.TermStatusActive},
		{AdmissionTermGrade: "bud", AdmissionTermStatus: model.TermStatusLocked},
		{AdmissionTermGrade: "leaf", AdmissionTermStatus: model.TermStatusActive},
	}

	got := FilterTermsByStatus(terms, model.TermStatusActive)
	if len(got) != 2 {
		t.Fatalf("kept %d terms, want 2", len(got))
	}
	if got[0].AdmissionTermGrade != "seed" || got[1].AdmissionTermGrade != "leaf" {
		t.Errorf("kept wrong terms: %v, %v", got[0].AdmissionTermGrade, got[1].AdmissionTermGrade)
	}

	if got := FilterTermsByStatus(terms[:0], model.TermStatusActive); len(got) != 0 {
		t.Errorf("empty input should stay empty, got %d", len(got))
	}
}

// Exactly one status holds for any combination of today vs the window.
func TestResolveTermStatus_Exclusive(t *testing.T) {
	start := date(2025, 3, 1)
	end := date(2025, 3, 31)

	for day := date(2025, 2, 20); day.Before(date(2025, 4, 10)); day = day.AddDate(0, 0, 1) {
		got := ResolveTermStatus(day, start, end)
		if !got.Valid() {
			t.Fatalf("day %v: invalid status %q", day, got)
		}
		matches := 0
		if day.Before(start) && got == model.TermStatusInactive {
			matches++
		}
		if !day.Before(start) && !day.After(end) && got == model.TermStatusActive {
			matches++
		}
		if day.After(end) && got == model.TermStatusLocked {
			matches++
		}
		if matches != 1 {
			t.Errorf("day %v: status %v does not match exactly one window condition", day, got)
		}
	}
}
