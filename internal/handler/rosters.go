package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/report"
	"github.com/harbourkitchen/roster-manager/backend/internal/slots"
	"github.com/harbourkitchen/roster-manager/backend/internal/utils"
)

func validateRosterRole(role string) error {
	if role != domain.RoleChef && role != domain.RoleKitchenHand {
		return fmt.Errorf("invalid role %q", role)
	}
	return nil
}

func (h *Handler) GetRosterEntries(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	entries, err := h.repository.GetRosterEntries(from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "roster entries retrieved", entries)
}

func (h *Handler) CreateRosterEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int64  `json:"employee_id" validate:"required"`
		ShiftDate  string `json:"shift_date" validate:"required"`
		ShiftStart string `json:"shift_start" validate:"required"`
		ShiftEnd   string `json:"shift_end" validate:"required"`
		Role       string `json:"role" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateTimeOfDay(req.ShiftStart); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateTimeOfDay(req.ShiftEnd); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := validateRosterRole(req.Role); err != nil {
		h.badRequest(w, r, err)
		return
	}

	isWeekend, err := utils.IsWeekend(req.ShiftDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := &domain.RosterEntry{
		EmployeeID: req.EmployeeID,
		ShiftDate:  req.ShiftDate,
		ShiftStart: req.ShiftStart,
		ShiftEnd:   req.ShiftEnd,
		Role:       req.Role,
		IsWeekend:  isWeekend,
	}

	if err := h.repository.CreateRosterEntry(entry); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "rosters_employee_id_fkey":
			h.badRequest(w, r, errors.New("employee does not exist"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.invalidateWeekSummaryForDate(r.Context(), entry.ShiftDate)

	h.successResponse(w, r, "roster entry created", entry)
}

func (h *Handler) GetRosterEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(RosterEntryCtx).(*domain.RosterEntry)
	h.successResponse(w, r, "roster entry retrieved", entry)
}

func (h *Handler) UpdateRosterEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID *int64  `json:"employee_id"`
		ShiftDate  *string `json:"shift_date"`
		ShiftStart *string `json:"shift_start"`
		ShiftEnd   *string `json:"shift_end"`
		Role       *string `json:"role"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := r.Context().Value(RosterEntryCtx).(*domain.RosterEntry)
	previousDate := entry.ShiftDate

	if req.EmployeeID != nil {
		entry.EmployeeID = *req.EmployeeID
	}
	if req.ShiftDate != nil {
		isWeekend, err := utils.IsWeekend(*req.ShiftDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		entry.ShiftDate = *req.ShiftDate
		entry.IsWeekend = isWeekend
	}
	if req.ShiftStart != nil {
		if err := utils.ValidateTimeOfDay(*req.ShiftStart); err != nil {
			h.badRequest(w, r, err)
			return
		}
		entry.ShiftStart = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		if err := utils.ValidateTimeOfDay(*req.ShiftEnd); err != nil {
			h.badRequest(w, r, err)
			return
		}
		entry.ShiftEnd = *req.ShiftEnd
	}
	if req.Role != nil {
		if err := validateRosterRole(*req.Role); err != nil {
			h.badRequest(w, r, err)
			return
		}
		entry.Role = *req.Role
	}

	if err := h.repository.UpdateRosterEntry(entry); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "rosters_employee_id_fkey":
			h.badRequest(w, r, errors.New("employee does not exist"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "roster entry update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.invalidateWeekSummaryForDate(r.Context(), previousDate)
	if entry.ShiftDate != previousDate {
		h.invalidateWeekSummaryForDate(r.Context(), entry.ShiftDate)
	}

	h.successResponse(w, r, "roster entry updated", entry)
}

func (h *Handler) DeleteRosterEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(RosterEntryCtx).(*domain.RosterEntry)

	if err := h.repository.DeleteRosterEntry(entry.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateWeekSummaryForDate(r.Context(), entry.ShiftDate)

	h.successResponse(w, r, "roster entry deleted", nil)
}

// ReplaceWeekRoster swaps the whole week's roster in one transaction, then
// invalidates the cached dashboard summary and queues a roster email for every
// employee who has shifts that week.
func (h *Handler) ReplaceWeekRoster(w http.ResponseWriter, r *http.Request) {
	mondayParam := chi.URLParam(r, "monday")
	monday, err := time.Parse(report.DateLayout, mondayParam)
	if err != nil {
		h.errorResponse(w, r, "invalid week start date")
		return
	}
	if monday.Weekday() != time.Monday {
		h.errorResponse(w, r, "week start must be a Monday")
		return
	}

	var req struct {
		Entries []struct {
			EmployeeID int64  `json:"employee_id" validate:"required"`
			ShiftDate  string `json:"shift_date" validate:"required"`
			ShiftStart string `json:"shift_start" validate:"required"`
			ShiftEnd   string `json:"shift_end" validate:"required"`
			Role       string `json:"role" validate:"required"`
		} `json:"entries" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	days := report.WeekDays(monday)
	dates := make([]string, 0, len(days))
	inWeek := make(map[string]bool, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
		inWeek[day.Date] = true
	}

	entries := make([]*domain.RosterEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		if !inWeek[e.ShiftDate] {
			h.errorResponse(w, r, fmt.Sprintf("shift date %s is outside the week of %s", e.ShiftDate, mondayParam))
			return
		}
		if err := utils.ValidateTimeOfDay(e.ShiftStart); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := utils.ValidateTimeOfDay(e.ShiftEnd); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := validateRosterRole(e.Role); err != nil {
			h.badRequest(w, r, err)
			return
		}

		isWeekend, err := utils.IsWeekend(e.ShiftDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}

		entries = append(entries, &domain.RosterEntry{
			EmployeeID: e.EmployeeID,
			ShiftDate:  e.ShiftDate,
			ShiftStart: e.ShiftStart,
			ShiftEnd:   e.ShiftEnd,
			Role:       e.Role,
			IsWeekend:  isWeekend,
		})
	}

	if err := h.repository.ReplaceWeekRoster(dates, entries); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "rosters_employee_id_fkey":
			h.badRequest(w, r, errors.New("employee does not exist"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.redisClient.Del(r.Context(), weekSummaryKey(mondayParam)).Err(); err != nil {
		slog.Warn("failed to invalidate week summary cache", "week", mondayParam, "error", err)
	}

	h.notifyWeekRoster(mondayParam, entries)

	h.successResponse(w, r, "week roster saved", entries)
}

// notifyWeekRoster publishes one roster email per employee with shifts in the
// week. Publish failures are logged rather than failing the save: the roster
// is already committed at this point.
func (h *Handler) notifyWeekRoster(weekStart string, entries []*domain.RosterEntry) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		slog.Error("failed to load employees for roster emails", "error", err)
		return
	}
	byID := make(map[int64]*domain.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}

	sorted := make([]*domain.RosterEntry, len(entries))
	copy(sorted, entries)
	slots.SortRosterEntries(sorted)

	shiftsByEmployee := make(map[int64][]domain.RosterWeekMailShift)
	order := make([]int64, 0)
	for _, entry := range sorted {
		dayName := ""
		if d, err := time.Parse(report.DateLayout, entry.ShiftDate); err == nil {
			dayName = d.Weekday().String()
		}
		if _, exists := shiftsByEmployee[entry.EmployeeID]; !exists {
			order = append(order, entry.EmployeeID)
		}
		shiftsByEmployee[entry.EmployeeID] = append(shiftsByEmployee[entry.EmployeeID], domain.RosterWeekMailShift{
			DayName: dayName,
			Date:    entry.ShiftDate,
			Role:    entry.Role,
			Start:   slots.HHMM(entry.ShiftStart),
			End:     slots.HHMM(entry.ShiftEnd),
		})
	}

	for _, employeeID := range order {
		employee, exists := byID[employeeID]
		if !exists || employee.Email == "" {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "roster_week",
			To:   employee.Email,
			Data: domain.RosterWeekMailData{
				EmployeeName: employee.Name,
				WeekStart:    weekStart,
				Shifts:       shiftsByEmployee[employeeID],
			},
		}

		emailData, err := json.Marshal(mailMessage)
		if err != nil {
			slog.Error("failed to marshal roster email", "employee", employeeID, "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.mailChannel.PublishWithContext(
			ctx,
			"",
			"roster_email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        emailData,
			},
		)
		cancel()
		if err != nil {
			slog.Error("failed to publish roster email", "employee", employeeID, "error", err)
		}
	}
}
