package service

import (
	"errors"
	"time"
)

const (
	minWeekNumber = 1
	maxWeekNumber = 52
)

var (
	ErrWeekOutOfRange = errors.New("Week number must be between 1 and 52")
	ErrDayOutOfRange  = errors.New("Day of week must be between 1 and 7")
	ErrBadTimeFormat  = errors.New("Time must be in HH:MM format")
	ErrTimeOrder      = errors.New("Activity end time must be after start time")
)

// ValidateWeekNumber bounds a schedule's week to the weeks of a year.
func ValidateWeekNumber(week int) error {
	if week < minWeekNumber || week > maxWeekNumber {
		return ErrWeekOutOfRange
	}
	return nil
}

// ParseClock parses an "HH:MM" wall-clock string.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, ErrBadTimeFormat
	}
	return t, nil
}

// ValidateActivitySlot checks the day and the time window of one activity.
func ValidateActivitySlot(dayOfWeek int, startTime, endTime string) error {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return ErrDayOutOfRange
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return ErrTimeOrder
	}
	return nil
}
