package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestDedupeLessonRefs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	noteA := "warmup"
	noteB := "repeat"

	in := []LessonRef{
		{LessonID: a, Note: &noteA},
		{LessonID: b},
		{LessonID: a, Note: &noteB},
		{LessonID: c},
		{LessonID: b},
	}
	out := DedupeLessonRefs(in)

	if len(out) != 3 {
		t.Fatalf("expected 3 unique refs, got %d", len(out))
	}
	if out[0].LessonID != a || out[1].LessonID != b || out[2].LessonID != c {
		t.Fatalf("order not preserved: %v", out)
	}
	if out[0].Note == nil || *out[0].Note != "warmup" {
		t.Fatalf("first occurrence note not kept")
	}
}

func TestDedupeLessonRefs_Empty(t *testing.T) {
	if out := DedupeLessonRefs(nil); len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}
