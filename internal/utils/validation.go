package utils

import (
	"fmt"
	"slices"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

func parseTimeOfDay(s string) error {
	if _, err := time.Parse("15:04:05", s); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04", s); err == nil {
		return nil
	}
	return fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", s)
}

func ValidateTimeOfDay(s string) error {
	return parseTimeOfDay(s)
}

func ValidateWeekday(day string) error {
	if !slices.Contains(domain.Weekdays, day) {
		return fmt.Errorf("invalid day of week %q", day)
	}
	return nil
}

// ValidateSlots checks the time format of every populated segment field.
// Missing fields are allowed: a requirement may be defined before its
// slot-level detail is filled in.
func ValidateSlots(slotArr []domain.Slot) error {
	for i, slot := range slotArr {
		for j, seg := range slot.Segments {
			if seg.Start != nil && *seg.Start != "" {
				if err := parseTimeOfDay(*seg.Start); err != nil {
					return fmt.Errorf("slot %d segment %d: %w", i+1, j+1, err)
				}
			}
			if seg.End != nil && *seg.End != "" {
				if err := parseTimeOfDay(*seg.End); err != nil {
					return fmt.Errorf("slot %d segment %d: %w", i+1, j+1, err)
				}
			}
		}
		if slot.Start != nil && *slot.Start != "" {
			if err := parseTimeOfDay(*slot.Start); err != nil {
				return fmt.Errorf("slot %d: %w", i+1, err)
			}
		}
		if slot.End != nil && *slot.End != "" {
			if err := parseTimeOfDay(*slot.End); err != nil {
				return fmt.Errorf("slot %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// ClearClosingEnds drops the literal end time of every segment flagged as
// ending at closing. This runs at the edit boundary only, so reading stored
// data never mutates it.
func ClearClosingEnds(slotArr []domain.Slot) {
	for i := range slotArr {
		if slotArr[i].EndIsClosing {
			slotArr[i].End = nil
		}
		for j := range slotArr[i].Segments {
			if slotArr[i].Segments[j].EndIsClosing {
				slotArr[i].Segments[j].End = nil
			}
		}
	}
}

func IsWeekend(date string) (bool, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday, nil
}
