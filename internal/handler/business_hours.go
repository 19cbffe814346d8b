package handler

import (
	"net/http"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/utils"
)

func (h *Handler) GetAllBusinessHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.repository.GetAllBusinessHours()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "business hours retrieved", hours)
}

func (h *Handler) UpdateBusinessHours(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayOfWeek   string  `json:"day_of_week" validate:"required"`
		ClosingTime *string `json:"closing_time"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateWeekday(req.DayOfWeek); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.ClosingTime != nil && *req.ClosingTime != "" {
		if err := utils.ValidateTimeOfDay(*req.ClosingTime); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	bh := &domain.BusinessHours{
		DayOfWeek:   req.DayOfWeek,
		ClosingTime: req.ClosingTime,
	}
	if bh.ClosingTime != nil && *bh.ClosingTime == "" {
		bh.ClosingTime = nil
	}

	if err := h.repository.UpsertBusinessHours(bh); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateAllWeekSummaries(r.Context())

	h.successResponse(w, r, "business hours updated", bh)
}
