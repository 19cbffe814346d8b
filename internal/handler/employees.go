package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
	"github.com/harbourkitchen/roster-manager/backend/internal/utils"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees retrieved", employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name" validate:"required"`
		Role         string   `json:"role" validate:"required"`
		Email        string   `json:"email" validate:"omitempty,email"`
		Phone        string   `json:"phone"`
		Availability []string `json:"availability"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	for _, day := range req.Availability {
		if err := utils.ValidateWeekday(day); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	employee := &domain.Employee{
		Name:         req.Name,
		Role:         req.Role,
		Email:        req.Email,
		Phone:        req.Phone,
		Availability: req.Availability,
	}
	if employee.Availability == nil {
		employee.Availability = make([]string, 0)
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)
	h.successResponse(w, r, "employee retrieved", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string   `json:"name"`
		Role         *string   `json:"role"`
		Email        *string   `json:"email" validate:"omitempty,email"`
		Phone        *string   `json:"phone"`
		Availability *[]string `json:"availability"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Availability != nil {
		for _, day := range *req.Availability {
			if err := utils.ValidateWeekday(day); err != nil {
				h.badRequest(w, r, err)
				return
			}
		}
		employee.Availability = *req.Availability
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employee update failed, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee updated", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee deleted", nil)
}
