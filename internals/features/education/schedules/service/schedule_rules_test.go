package service

import "testing"

func TestValidateWeekNumber(t *testing.T) {
	cases := []struct {
		week int
		ok   bool
	}{
		{0, false},
		{1, true},
		{26, true},
		{52, true},
		{53, false},
		{-3, false},
	}
	for _, tc := range cases {
		err := ValidateWeekNumber(tc.week)
		if tc.ok && err != nil {
			t.Errorf("week %d rejected: %v", tc.week, err)
		}
		if !tc.ok && err != ErrWeekOutOfRange {
			t.Errorf("week %d: got %v, want ErrWeekOutOfRange", tc.week, err)
		}
	}
}

func TestValidateActivitySlot(t *testing.T) {
	if err := ValidateActivitySlot(1, "08:00", "09:30"); err != nil {
		t.Fatalf("valid slot rejected: %v", err)
	}
	if err := ValidateActivitySlot(7, "00:00", "23:59"); err != nil {
		t.Fatalf("full-day slot rejected: %v", err)
	}

	cases := []struct {
		name  string
		day   int
		start string
		end   string
		want  error
	}{
		{"day zero", 0, "08:00", "09:00", ErrDayOutOfRange},
		{"day eight", 8, "08:00", "09:00", ErrDayOutOfRange},
		{"bad start", 3, "8am", "09:00", ErrBadTimeFormat},
		{"bad end", 3, "08:00", "25:00", ErrBadTimeFormat},
		{"end equals start", 3, "09:00", "09:00", ErrTimeOrder},
		{"end before start", 3, "10:00", "09:00", ErrTimeOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateActivitySlot(tc.day, tc.start, tc.end); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
