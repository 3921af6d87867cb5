package service

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Child profile rule set, shared by child management and admission form intake.
// Rules run in order and the first failure wins.

const (
	minChildAge = 3
	maxChildAge = 5

	// historic wording kept for client compatibility; the enforced window is 3-5
	MsgChildAgeOutOfRange = "Child's age must be between 3 and 7 years old"
)

var (
	ErrChildNameRequired   = errors.New("Child's name is required")
	ErrChildNameNoSpace    = errors.New("Child's name must contain a first and last name")
	ErrChildNameTooLong    = errors.New("Child's name must be at most 50 characters")
	ErrChildNameNotLetters = errors.New("Child's name may only contain letters")
	ErrGenderRequired      = errors.New("Gender is required")
	ErrDOBRequired         = errors.New("Date of birth is required")
	ErrChildAgeOutOfRange  = errors.New(MsgChildAgeOutOfRange)
	ErrPOBRequired         = errors.New("Place of birth is required")
	ErrPOBTooLong          = errors.New("Place of birth must be at most 100 characters")
)

// AgeAt returns full years completed at ref.
func AgeAt(dob, ref time.Time) int {
	years := ref.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	return years
}

func alphabeticName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ValidateChildProfile applies the ordered child rules against today.
func ValidateChildProfile(name, gender string, dob time.Time, placeOfBirth string, today time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrChildNameRequired
	}
	if !strings.Contains(name, " ") {
		return ErrChildNameNoSpace
	}
	if len(name) > 50 {
		return ErrChildNameTooLong
	}
	if !alphabeticName(name) {
		return ErrChildNameNotLetters
	}

	if strings.TrimSpace(gender) == "" {
		return ErrGenderRequired
	}

	if dob.IsZero() {
		return ErrDOBRequired
	}
	if age := AgeAt(dob, today); age < minChildAge || age > maxChildAge {
		return ErrChildAgeOutOfRange
	}

	placeOfBirth = strings.TrimSpace(placeOfBirth)
	if placeOfBirth == "" {
		return ErrPOBRequired
	}
	if len(placeOfBirth) > 100 {
		return ErrPOBTooLong
	}

	return nil
}
