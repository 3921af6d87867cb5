package service

import (
	"testing"
	"time"
)

func TestAllRoomNumbers(t *testing.T) {
	rooms := AllRoomNumbers()
	if len(rooms) != 20 {
		t.Fatalf("expected 20 rooms, got %d", len(rooms))
	}
	if rooms[0] != "1" || rooms[19] != "20" {
		t.Fatalf("unexpected room range: first=%q last=%q", rooms[0], rooms[19])
	}
}

func TestSharesStartYear(t *testing.T) {
	d := func(s string) time.Time {
		v, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return v
	}

	cases := []struct {
		a, b string
		want bool
	}{
		{"2025-01-01", "2025-12-31", true},
		{"2025-07-15", "2025-07-15", true},
		{"2025-12-31", "2026-01-01", false},
		{"2024-06-01", "2025-06-01", false},
	}
	for _, tc := range cases {
		if got := SharesStartYear(d(tc.a), d(tc.b)); got != tc.want {
			t.Errorf("SharesStartYear(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
