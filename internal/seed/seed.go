package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/report"
	"github.com/harbourkitchen/roster-manager/backend/internal/repository"
	"github.com/harbourkitchen/roster-manager/backend/internal/slots"
	"github.com/harbourkitchen/roster-manager/backend/internal/utils"
)

var defaultClosingTimes = map[string]string{
	"Monday":    "21:30",
	"Tuesday":   "21:30",
	"Wednesday": "21:30",
	"Thursday":  "21:30",
	"Friday":    "22:30",
	"Saturday":  "22:30",
	"Sunday":    "21:00",
}

// SeedBusinessData inserts one requirement per weekday plus the default
// closing times. Existing requirements are left alone (the day unique
// constraint rejects duplicates).
func SeedBusinessData(r *repository.Repository) {
	cnt := 0
	for _, day := range domain.Weekdays {
		requirement := utils.GenerateRandomDayRequirement(day)
		if err := r.CreateDayRequirement(requirement); err != nil {
			slog.Error("failed to insert requirement", "day", day, "error", err)
			continue
		}
		cnt++
	}
	slog.Info("requirements inserted", slog.Int("count", cnt))

	cnt = 0
	for _, day := range domain.Weekdays {
		closing := defaultClosingTimes[day]
		bh := &domain.BusinessHours{
			DayOfWeek:   day,
			ClosingTime: &closing,
		}
		if err := r.UpsertBusinessHours(bh); err != nil {
			slog.Error("failed to upsert business hours", "day", day, "error", err)
			continue
		}
		cnt++
	}
	slog.Info("business hours upserted", slog.Int("count", cnt))
}

// SeedWeekRoster fills the current week from the stored requirements, picking
// a random available employee of the right role for every slot segment that
// has a start time.
func SeedWeekRoster(r *repository.Repository) {
	employees, err := r.GetAllEmployees()
	if err != nil {
		slog.Error("failed to load employees", "error", err)
		return
	}
	if len(employees) == 0 {
		slog.Error("no employees to roster, seed employees first")
		return
	}

	requirements, err := r.GetAllDayRequirements()
	if err != nil {
		slog.Error("failed to load requirements", "error", err)
		return
	}
	requirementsByDay := make(map[string]*domain.DayRequirement, len(requirements))
	for _, requirement := range requirements {
		requirementsByDay[requirement.DayOfWeek] = requirement
	}

	hours, err := r.GetAllBusinessHours()
	if err != nil {
		slog.Error("failed to load business hours", "error", err)
		return
	}
	closing := domain.NewClosingTimes(hours)

	monday := report.MondayOf(time.Now())
	days := report.WeekDays(monday)

	dates := make([]string, 0, len(days))
	entries := make([]*domain.RosterEntry, 0)
	for _, day := range days {
		dates = append(dates, day.Date)

		requirement, exists := requirementsByDay[day.DayName]
		if !exists {
			continue
		}

		isWeekend, err := utils.IsWeekend(day.Date)
		if err != nil {
			slog.Error("failed to classify date", "date", day.Date, "error", err)
			return
		}

		entries = append(entries, rosterSlots(requirement.ChefSlots, domain.RoleChef, day, employees, closing, isWeekend)...)
		entries = append(entries, rosterSlots(requirement.KitchenSlots, domain.RoleKitchenHand, day, employees, closing, isWeekend)...)
	}

	if err := r.ReplaceWeekRoster(dates, entries); err != nil {
		slog.Error("failed to save week roster", "error", err)
		return
	}

	slog.Info("week roster saved", slog.String("week", monday.Format(report.DateLayout)), slog.Int("entries", len(entries)))
}

func rosterSlots(slotArr []domain.Slot, role string, day report.WeekDay, employees []*domain.Employee, closing domain.ClosingTimes, isWeekend bool) []*domain.RosterEntry {
	entries := make([]*domain.RosterEntry, 0)
	for _, slot := range slotArr {
		normalized := slots.NormalizeSlot(slot)
		for _, seg := range normalized.Segments {
			if seg.Start == nil {
				continue
			}

			end := ""
			switch {
			case seg.EndIsClosing:
				end = closing.ForDay(day.DayName)
			case seg.End != nil:
				end = *seg.End
			}
			if end == "" {
				continue
			}

			employee := pickEmployee(employees, role, day.DayName)
			if employee == nil {
				continue
			}

			entries = append(entries, &domain.RosterEntry{
				EmployeeID: employee.ID,
				ShiftDate:  day.Date,
				ShiftStart: *seg.Start,
				ShiftEnd:   end,
				Role:       role,
				IsWeekend:  isWeekend,
			})
		}
	}
	return entries
}

func pickEmployee(employees []*domain.Employee, role string, dayName string) *domain.Employee {
	candidates := make([]*domain.Employee, 0)
	for _, employee := range employees {
		if role == domain.RoleKitchenHand && employee.Role != domain.RoleKitchenHand {
			continue
		}
		if role == domain.RoleChef && employee.Role == domain.RoleKitchenHand {
			continue
		}

		available := false
		for _, day := range employee.Availability {
			if day == dayName {
				available = true
				break
			}
		}
		if available {
			candidates = append(candidates, employee)
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates[rand.Intn(len(candidates))]
}
