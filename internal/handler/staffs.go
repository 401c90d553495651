package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func (h *Handler) GetAllStaffs(w http.ResponseWriter, r *http.Request) {
	staffs, err := h.repository.GetAllStaffs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取员工列表成功", staffs)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name" validate:"required"`
		Position       string `json:"position" validate:"required"`
		HourlyWage     int64  `json:"hourlyWage" validate:"min=0"`
		MonthlyWage    int64  `json:"monthlyWage" validate:"min=0"`
		EmploymentType string `json:"employmentType" validate:"required,oneof=full_time part_time"`
		Phone          string `json:"phone"`
		Email          string `json:"email" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := &domain.Staff{
		Name:           req.Name,
		Position:       req.Position,
		HourlyWage:     req.HourlyWage,
		MonthlyWage:    req.MonthlyWage,
		EmploymentType: domain.EmploymentType(req.EmploymentType),
		Phone:          req.Phone,
		Email:          req.Email,
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "员工创建成功", staff)
}

func (h *Handler) GetStaffInfo(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffCtx).(*domain.Staff)
	h.successResponse(w, r, "获取员工信息成功", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           *string `json:"name"`
		Position       *string `json:"position"`
		HourlyWage     *int64  `json:"hourlyWage" validate:"omitempty,min=0"`
		MonthlyWage    *int64  `json:"monthlyWage" validate:"omitempty,min=0"`
		EmploymentType *string `json:"employmentType" validate:"omitempty,oneof=full_time part_time"`
		Phone          *string `json:"phone"`
		Email          *string `json:"email" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.Staff)

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.HourlyWage != nil {
		staff.HourlyWage = *req.HourlyWage
	}
	if req.MonthlyWage != nil {
		staff.MonthlyWage = *req.MonthlyWage
	}
	if req.EmploymentType != nil {
		staff.EmploymentType = domain.EmploymentType(*req.EmploymentType)
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新员工信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新员工信息成功", staff)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffCtx).(*domain.Staff)

	if err := h.repository.DeleteStaff(staff.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除员工成功", nil)
}
