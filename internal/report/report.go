// Package report assembles the weekly roster view consumed by the dashboard
// and the exports: canonical slots per day, reconciled assignments, display
// strings and hour totals. It is pure assembly over data loaded elsewhere.
package report

import (
	"fmt"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/slots"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type WeekDay struct {
	Date    string `json:"date"`
	DayName string `json:"day_name"`
}

// MondayOf returns the Monday of the week containing t.
func MondayOf(t time.Time) time.Time {
	offset := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	return t.AddDate(0, 0, offset)
}

// WeekDays returns the seven days starting at monday.
func WeekDays(monday time.Time) []WeekDay {
	days := make([]WeekDay, 7)
	for i := range days {
		d := monday.AddDate(0, 0, i)
		days[i] = WeekDay{
			Date:    d.Format(DateLayout),
			DayName: d.Weekday().String(),
		}
	}
	return days
}

type SegmentAssignment struct {
	Time         string `json:"time"`
	EmployeeID   *int64 `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Minutes      int    `json:"minutes"`
}

type SlotSummary struct {
	Label    string              `json:"label"`
	Display  string              `json:"display"`
	Segments []SegmentAssignment `json:"segments"`
}

type DaySummary struct {
	Date         string          `json:"date"`
	DayName      string          `json:"day_name"`
	Chefs        []SlotSummary   `json:"chefs"`
	KitchenHands []SlotSummary   `json:"kitchen_hands"`
	TotalHours   decimal.Decimal `json:"total_hours"`
}

type WeekSummary struct {
	WeekStart  string          `json:"week_start"`
	Days       []DaySummary    `json:"days"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// BuildWeekSummary reconciles a week's roster entries against the day
// requirements and produces the per-day assignment view with hour totals.
// employeeNames maps employee id to display name; unknown ids fall back to a
// generic label, and unassigned segments show "Unassigned". Only segments with
// an assigned entry count toward the totals.
func BuildWeekSummary(
	monday time.Time,
	requirements map[string]*domain.DayRequirement,
	closing domain.ClosingTimes,
	entries []*domain.RosterEntry,
	employeeNames map[int64]string,
) *WeekSummary {
	sorted := make([]*domain.RosterEntry, len(entries))
	copy(sorted, entries)
	slots.SortRosterEntries(sorted)

	// Group by (date, role) preserving the deterministic order.
	grouped := make(map[string][]*domain.RosterEntry)
	for _, entry := range sorted {
		key := entry.ShiftDate + "|" + entry.Role
		grouped[key] = append(grouped[key], entry)
	}

	summary := &WeekSummary{
		WeekStart: monday.Format(DateLayout),
		Days:      make([]DaySummary, 0, 7),
	}

	totalMinutes := 0
	for _, day := range WeekDays(monday) {
		req := requirements[day.DayName]

		var chefSlots, kitchenSlots []domain.Slot
		if req != nil {
			chefSlots = slots.BuildSlotArray(req.ChefSlots, int(req.RequiredChefs))
			kitchenSlots = slots.BuildSlotArray(req.KitchenSlots, int(req.RequiredKitchenHands))
		}

		closingTime := closing.ForDay(day.DayName)
		dayMinutes := 0

		chefs := summarizeRole(chefSlots, grouped[day.Date+"|"+domain.RoleChef], closingTime, "C", employeeNames, &dayMinutes)
		kitchenHands := summarizeRole(kitchenSlots, grouped[day.Date+"|"+domain.RoleKitchenHand], closingTime, "KH", employeeNames, &dayMinutes)

		totalMinutes += dayMinutes
		summary.Days = append(summary.Days, DaySummary{
			Date:         day.Date,
			DayName:      day.DayName,
			Chefs:        chefs,
			KitchenHands: kitchenHands,
			TotalHours:   hoursFromMinutes(dayMinutes),
		})
	}

	summary.TotalHours = hoursFromMinutes(totalMinutes)
	return summary
}

func summarizeRole(
	slotArr []domain.Slot,
	entries []*domain.RosterEntry,
	closingTime string,
	labelPrefix string,
	employeeNames map[int64]string,
	minutes *int,
) []SlotSummary {
	matched := slots.MatchRosterEntriesToSlots(slotArr, entries)

	out := make([]SlotSummary, len(slotArr))
	for i, slot := range slotArr {
		summary := SlotSummary{
			Label:    fmt.Sprintf("%s%d", labelPrefix, i+1),
			Display:  slots.FormatSlotForDisplay(slot, closingTime),
			Segments: make([]SegmentAssignment, len(slot.Segments)),
		}

		for j, seg := range slot.Segments {
			assignment := SegmentAssignment{
				Time:         segmentLabel(seg, closingTime),
				EmployeeName: "Unassigned",
			}

			if entry := matched[i][j]; entry != nil {
				id := entry.EmployeeID
				assignment.EmployeeID = &id
				assignment.EmployeeName = employeeName(employeeNames, id)
				assignment.Minutes = slots.SegmentDurationMinutes(seg, closingTime, slots.ParseTimeToMinutes)
				*minutes += assignment.Minutes
			}

			summary.Segments[j] = assignment
		}

		out[i] = summary
	}
	return out
}

func segmentLabel(seg domain.SlotSegment, closingTime string) string {
	return slots.FormatSlotForDisplay(domain.Slot{Segments: []domain.SlotSegment{seg}}, closingTime)
}

func employeeName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Employee %d", id)
}

func hoursFromMinutes(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).DivRound(decimal.NewFromInt(60), 1)
}
