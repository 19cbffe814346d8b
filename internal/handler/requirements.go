package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/slots"
	"github.com/harbourkitchen/roster-manager/backend/internal/utils"
)

// synthesizeSlots builds a uniform slot array from the legacy single-shift
// fields, one slot per required person. Older clients still send requirements
// this way instead of as explicit slot arrays.
func synthesizeSlots(count int32, start, end *string, endIsClosing bool) []domain.Slot {
	slotArr := make([]domain.Slot, 0, count)
	for i := int32(0); i < count; i++ {
		slot := domain.Slot{
			Start:        start,
			EndIsClosing: endIsClosing,
		}
		if !endIsClosing {
			slot.End = end
		}
		slotArr = append(slotArr, slot)
	}
	return slotArr
}

// prepareSlots validates and canonicalizes a slot array before it is stored.
func prepareSlots(slotArr []domain.Slot, requiredCount int32) ([]domain.Slot, error) {
	if err := utils.ValidateSlots(slotArr); err != nil {
		return nil, err
	}
	prepared := slots.BuildSlotArray(slotArr, int(requiredCount))
	utils.ClearClosingEnds(prepared)
	return prepared, nil
}

func (h *Handler) GetAllDayRequirements(w http.ResponseWriter, r *http.Request) {
	requirements, err := h.repository.GetAllDayRequirements()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "requirements retrieved", requirements)
}

func (h *Handler) CreateDayRequirement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayOfWeek            string        `json:"day_of_week" validate:"required"`
		RequiredChefs        int32         `json:"required_chefs" validate:"gte=0"`
		RequiredKitchenHands int32         `json:"required_kitchen_hands" validate:"gte=0"`
		ChefStart            *string       `json:"chef_start"`
		ChefEnd              *string       `json:"chef_end"`
		ChefEndIsClosing     bool          `json:"chef_end_is_closing"`
		KitchenStart         *string       `json:"kitchen_start"`
		KitchenEnd           *string       `json:"kitchen_end"`
		KitchenEndIsClosing  bool          `json:"kitchen_end_is_closing"`
		ChefSlots            []domain.Slot `json:"chef_slots"`
		KitchenSlots         []domain.Slot `json:"kitchen_slots"`
		Notes                string        `json:"notes"`
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

	chefSlots := req.ChefSlots
	if chefSlots == nil {
		chefSlots = synthesizeSlots(req.RequiredChefs, req.ChefStart, req.ChefEnd, req.ChefEndIsClosing)
	}
	kitchenSlots := req.KitchenSlots
	if kitchenSlots == nil {
		kitchenSlots = synthesizeSlots(req.RequiredKitchenHands, req.KitchenStart, req.KitchenEnd, req.KitchenEndIsClosing)
	}

	var err error
	if chefSlots, err = prepareSlots(chefSlots, req.RequiredChefs); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if kitchenSlots, err = prepareSlots(kitchenSlots, req.RequiredKitchenHands); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requirement := &domain.DayRequirement{
		DayOfWeek:            req.DayOfWeek,
		RequiredChefs:        req.RequiredChefs,
		RequiredKitchenHands: req.RequiredKitchenHands,
		ChefSlots:            chefSlots,
		KitchenSlots:         kitchenSlots,
		Notes:                req.Notes,
	}

	if err := h.repository.CreateDayRequirement(requirement); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "business_requirements_day_of_week_key":
			h.badRequest(w, r, errors.New("a requirement for this day already exists"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.invalidateAllWeekSummaries(r.Context())

	h.successResponse(w, r, "requirement created", requirement)
}

func (h *Handler) GetDayRequirement(w http.ResponseWriter, r *http.Request) {
	requirement := r.Context().Value(DayRequirementCtx).(*domain.DayRequirement)
	h.successResponse(w, r, "requirement retrieved", requirement)
}

func (h *Handler) UpdateDayRequirement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayOfWeek            *string        `json:"day_of_week"`
		RequiredChefs        *int32         `json:"required_chefs" validate:"omitempty,gte=0"`
		RequiredKitchenHands *int32         `json:"required_kitchen_hands" validate:"omitempty,gte=0"`
		ChefSlots            *[]domain.Slot `json:"chef_slots"`
		KitchenSlots         *[]domain.Slot `json:"kitchen_slots"`
		Notes                *string        `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requirement := r.Context().Value(DayRequirementCtx).(*domain.DayRequirement)

	if req.DayOfWeek != nil {
		if err := utils.ValidateWeekday(*req.DayOfWeek); err != nil {
			h.badRequest(w, r, err)
			return
		}
		requirement.DayOfWeek = *req.DayOfWeek
	}
	if req.RequiredChefs != nil {
		requirement.RequiredChefs = *req.RequiredChefs
	}
	if req.RequiredKitchenHands != nil {
		requirement.RequiredKitchenHands = *req.RequiredKitchenHands
	}
	if req.ChefSlots != nil {
		requirement.ChefSlots = *req.ChefSlots
	}
	if req.KitchenSlots != nil {
		requirement.KitchenSlots = *req.KitchenSlots
	}
	if req.Notes != nil {
		requirement.Notes = *req.Notes
	}

	// re-canonicalize on every write so count changes resize the arrays
	var err error
	if requirement.ChefSlots, err = prepareSlots(requirement.ChefSlots, requirement.RequiredChefs); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if requirement.KitchenSlots, err = prepareSlots(requirement.KitchenSlots, requirement.RequiredKitchenHands); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateDayRequirement(requirement); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "business_requirements_day_of_week_key":
			h.badRequest(w, r, errors.New("a requirement for this day already exists"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "requirement update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.invalidateAllWeekSummaries(r.Context())

	h.successResponse(w, r, "requirement updated", requirement)
}

func (h *Handler) DeleteDayRequirement(w http.ResponseWriter, r *http.Request) {
	requirement := r.Context().Value(DayRequirementCtx).(*domain.DayRequirement)

	if err := h.repository.DeleteDayRequirement(requirement.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateAllWeekSummaries(r.Context())

	h.successResponse(w, r, "requirement deleted", nil)
}
