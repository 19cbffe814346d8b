package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/report"
)

func weekSummaryKey(monday string) string {
	return "week_summary:" + monday
}

// invalidateWeekSummaryForDate drops the cached summary for the week
// containing the given roster date.
func (h *Handler) invalidateWeekSummaryForDate(ctx context.Context, date string) {
	d, err := time.Parse(report.DateLayout, date)
	if err != nil {
		return
	}
	monday := report.MondayOf(d).Format(report.DateLayout)
	if err := h.redisClient.Del(ctx, weekSummaryKey(monday)).Err(); err != nil {
		slog.Warn("failed to invalidate week summary cache", "week", monday, "error", err)
	}
}

// invalidateAllWeekSummaries drops every cached summary. Requirement and
// business-hours changes affect every week, so there is nothing narrower to do.
func (h *Handler) invalidateAllWeekSummaries(ctx context.Context) {
	keys, err := h.redisClient.Keys(ctx, weekSummaryKey("*")).Result()
	if err != nil {
		slog.Warn("failed to list week summary cache keys", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := h.redisClient.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("failed to invalidate week summary cache", "error", err)
	}
}

// GetWeekSummary serves the dashboard view for one week. Summaries are cached
// in redis and invalidated whenever the week's roster is replaced; a cache
// failure degrades to recomputing.
func (h *Handler) GetWeekSummary(w http.ResponseWriter, r *http.Request) {
	mondayParam := r.URL.Query().Get("monday")

	var monday time.Time
	if mondayParam == "" {
		monday = report.MondayOf(time.Now())
	} else {
		parsed, err := time.Parse(report.DateLayout, mondayParam)
		if err != nil {
			h.errorResponse(w, r, "invalid monday date")
			return
		}
		if parsed.Weekday() != time.Monday {
			h.errorResponse(w, r, "date is not a Monday")
			return
		}
		monday = parsed
	}
	weekStart := monday.Format(report.DateLayout)

	key := weekSummaryKey(weekStart)
	cached, err := h.redisClient.Get(r.Context(), key).Result()
	if err == nil {
		var summary report.WeekSummary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			h.successResponse(w, r, "week summary retrieved", &summary)
			return
		}
		slog.Warn("dropping corrupt cached week summary", "week", weekStart)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("failed to read week summary cache", "week", weekStart, "error", err)
	}

	requirements, err := h.repository.GetAllDayRequirements()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	requirementsByDay := make(map[string]*domain.DayRequirement, len(requirements))
	for _, requirement := range requirements {
		requirementsByDay[requirement.DayOfWeek] = requirement
	}

	hours, err := h.repository.GetAllBusinessHours()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	closing := domain.NewClosingTimes(hours)

	sunday := monday.AddDate(0, 0, 6).Format(report.DateLayout)
	entries, err := h.repository.GetRosterEntries(weekStart, sunday)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	names := make(map[int64]string, len(employees))
	for _, employee := range employees {
		names[employee.ID] = employee.Name
	}

	summary := report.BuildWeekSummary(monday, requirementsByDay, closing, entries, names)

	if payload, err := json.Marshal(summary); err == nil {
		expiration := time.Duration(h.config.Redis.SummaryExpiration) * time.Second
		if err := h.redisClient.SetEx(r.Context(), key, payload, expiration).Err(); err != nil {
			slog.Warn("failed to cache week summary", "week", weekStart, "error", err)
		}
	}

	h.successResponse(w, r, "week summary retrieved", summary)
}
