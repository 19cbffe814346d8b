package report

import (
	"testing"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestMondayOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-03", "2025-03-03"}, // Monday
		{"2025-03-05", "2025-03-03"}, // Wednesday
		{"2025-03-09", "2025-03-03"}, // Sunday belongs to the preceding Monday
	}

	for _, tt := range tests {
		d, err := time.Parse(DateLayout, tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, MondayOf(d).Format(DateLayout), "date %s", tt.date)
	}
}

func TestWeekDays(t *testing.T) {
	monday, err := time.Parse(DateLayout, "2025-03-03")
	require.NoError(t, err)

	days := WeekDays(monday)

	require.Len(t, days, 7)
	assert.Equal(t, WeekDay{Date: "2025-03-03", DayName: "Monday"}, days[0])
	assert.Equal(t, WeekDay{Date: "2025-03-09", DayName: "Sunday"}, days[6])
}

func TestBuildWeekSummary(t *testing.T) {
	monday, err := time.Parse(DateLayout, "2025-03-03")
	require.NoError(t, err)

	requirements := map[string]*domain.DayRequirement{
		"Monday": {
			DayOfWeek:            "Monday",
			RequiredChefs:        2,
			RequiredKitchenHands: 1,
			ChefSlots: []domain.Slot{
				{Start: strptr("09:00:00"), End: strptr("17:00:00")},
				{Start: strptr("14:00:00"), EndIsClosing: true},
			},
			KitchenSlots: []domain.Slot{
				{Start: strptr("10:00:00"), End: strptr("15:00:00")},
			},
		},
	}
	closing := domain.ClosingTimes{"Monday": "22:00:00"}
	entries := []*domain.RosterEntry{
		{ID: 1, EmployeeID: 11, ShiftDate: "2025-03-03", ShiftStart: "14:00:00", ShiftEnd: "22:00:00", Role: domain.RoleChef},
		{ID: 2, EmployeeID: 12, ShiftDate: "2025-03-03", ShiftStart: "09:00:00", ShiftEnd: "17:00:00", Role: domain.RoleChef},
	}
	names := map[int64]string{11: "Dana", 12: "Arthur"}

	summary := BuildWeekSummary(monday, requirements, closing, entries, names)

	require.Len(t, summary.Days, 7)
	mondaySummary := summary.Days[0]

	require.Len(t, mondaySummary.Chefs, 2)
	require.Len(t, mondaySummary.KitchenHands, 1)

	// Exact-start matching binds Arthur to the 09:00 slot and Dana to 14:00.
	first := mondaySummary.Chefs[0]
	assert.Equal(t, "C1", first.Label)
	assert.Equal(t, "09:00 - 17:00", first.Display)
	assert.Equal(t, "Arthur", first.Segments[0].EmployeeName)
	assert.Equal(t, 480, first.Segments[0].Minutes)

	second := mondaySummary.Chefs[1]
	assert.Equal(t, "14:00 - 22:00", second.Display)
	assert.Equal(t, "Dana", second.Segments[0].EmployeeName)
	assert.Equal(t, 480, second.Segments[0].Minutes)

	// No kitchen hand rostered: slot present, unassigned, zero hours.
	kh := mondaySummary.KitchenHands[0]
	assert.Equal(t, "KH1", kh.Label)
	assert.Nil(t, kh.Segments[0].EmployeeID)
	assert.Equal(t, "Unassigned", kh.Segments[0].EmployeeName)
	assert.Equal(t, 0, kh.Segments[0].Minutes)

	assert.Equal(t, "16", mondaySummary.TotalHours.String())
	assert.Equal(t, "16", summary.TotalHours.String())

	// Days with no requirement contribute empty slot lists, not nils blowing up.
	tuesday := summary.Days[1]
	assert.Empty(t, tuesday.Chefs)
	assert.True(t, tuesday.TotalHours.IsZero())
}

func TestBuildWeekSummaryUnknownEmployeeName(t *testing.T) {
	monday, err := time.Parse(DateLayout, "2025-03-03")
	require.NoError(t, err)

	requirements := map[string]*domain.DayRequirement{
		"Monday": {
			DayOfWeek:     "Monday",
			RequiredChefs: 1,
			ChefSlots:     []domain.Slot{{Start: strptr("09:00:00"), End: strptr("13:30:00")}},
		},
	}
	entries := []*domain.RosterEntry{
		{ID: 1, EmployeeID: 99, ShiftDate: "2025-03-03", ShiftStart: "09:00:00", ShiftEnd: "13:30:00", Role: domain.RoleChef},
	}

	summary := BuildWeekSummary(monday, requirements, domain.ClosingTimes{}, entries, nil)

	seg := summary.Days[0].Chefs[0].Segments[0]
	assert.Equal(t, "Employee 99", seg.EmployeeName)
	assert.Equal(t, "4.5", summary.TotalHours.String())
}
