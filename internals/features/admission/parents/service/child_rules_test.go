package service

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	today := date(2025, 6, 15)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed this year", date(2021, 3, 1), 4},
		{"birthday later this year", date(2021, 9, 1), 3},
		{"birthday today", date(2021, 6, 15), 4},
		{"birthday tomorrow", date(2021, 6, 16), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.dob, today); got != tt.want {
				t.Errorf("AgeAt(%v) = %d, want %d", tt.dob, got, tt.want)
			}
		})
	}
}

func TestValidateChildProfile_Order(t *testing.T) {
	today := date(2025, 6, 15)
	okDOB := date(2021, 1, 1) // age 4

	tests := []struct {
		name    string
		child   [2]string // name, gender
		dob     time.Time
		pob     string
		wantErr error
	}{
		{"valid", [2]string{"Ana Putri", "female"}, okDOB, "Jakarta", nil},
		{"missing name", [2]string{"", "female"}, okDOB, "Jakarta", ErrChildNameRequired},
		{"single word name", [2]string{"Ana", "female"}, okDOB, "Jakarta", ErrChildNameNoSpace},
		{"name with digits", [2]string{"Ana Putri2", "female"}, okDOB, "Jakarta", ErrChildNameNotLetters},
		{"missing gender", [2]string{"Ana Putri", ""}, okDOB, "Jakarta", ErrGenderRequired},
		{"zero dob", [2]string{"Ana Putri", "female"}, time.Time{}, "Jakarta", ErrDOBRequired},
		{"age two", [2]string{"Ana Putri", "female"}, date(2023, 1, 1), "Jakarta", ErrChildAgeOutOfRange},
		{"age six", [2]string{"Ana Putri", "female"}, date(2019, 1, 1), "Jakarta", ErrChildAgeOutOfRange},
		{"age three lower bound", [2]string{"Ana Putri", "female"}, date(2022, 1, 1), "Jakarta", nil},
		{"age five upper bound", [2]string{"Ana Putri", "female"}, date(2020, 1, 1), "Jakarta", nil},
		{"missing pob", [2]string{"Ana Putri", "female"}, okDOB, "", ErrPOBRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChildProfile(tt.child[0], tt.child[1], tt.dob, tt.pob, today)
			if err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChildProfile_LengthBounds(t *testing.T) {
	today := date(2025, 6, 15)
	okDOB := date(2021, 1, 1)

	longName := make([]byte, 0, 52)
	for len(longName) < 49 {
		longName = append(longName, 'a')
	}
	name := string(longName) + " b" // 51 chars, has a space
	if err := ValidateChildProfile(name, "male", okDOB, "Jakarta", today); err != ErrChildNameTooLong {
		t.Errorf("51-char name: got %v, want %v", err, ErrChildNameTooLong)
	}

	longPOB := make([]byte, 101)
	for i := range longPOB {
		longPOB[i] = 'x'
	}
	if err := ValidateChildProfile("Ana Putri", "female", okDOB, string(longPOB), today); err != ErrPOBTooLong {
		t.Errorf("101-char pob: got %v, want %v", err, ErrPOBTooLong)
	}
}

func TestValidateChildProfile_AgeErrorMessage(t *testing.T) {
	today := date(2025, 6, 15)
	err := ValidateChildProfile("Ana Putri", "female", date(2019, 1, 1), "Jakarta", today)
	if err == nil || err.Error() != "Child's age must be between 3 and 7 years old" {
		t.Errorf("unexpected age error: %v", err)
	}
}
