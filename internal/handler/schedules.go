package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/storelink-dev/backoffice/backend/internal/domain"
	"github.com/storelink-dev/backoffice/backend/internal/schedule"
)

const dateLayout = "2006-01-02"

// scheduleError 把排班核心返回的错误翻译成响应。
// 核心的校验错误都带有面向用户的中文消息，直接透传。
func (h *Handler) scheduleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, schedule.ErrNotFound),
		errors.Is(err, schedule.ErrInvalidWorkKind),
		errors.Is(err, schedule.ErrInvalidTimeRange),
		errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, schedule.ErrInvalidStatus),
		errors.Is(err, schedule.ErrAlreadyDecided):
		h.errorResponse(w, r, err.Error())
	default:
		h.internalServerError(w, r, err)
	}
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID      int64   `json:"staffId" validate:"required"`
		Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
		WorkKind     string  `json:"workKind" validate:"required"`
		StartTime    *string `json:"startTime"`
		EndTime      *string `json:"endTime"`
		BreakMinutes *int32  `json:"breakMinutes"`
		Notes        string  `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	input := schedule.CreateAssignmentInput{
		StaffID:  req.StaffID,
		Date:     req.Date,
		WorkKind: domain.WorkKind(req.WorkKind),
		Notes:    req.Notes,
	}

	// 手动录入班次时三个时间字段才有意义
	if req.StartTime != nil && req.EndTime != nil {
		custom := &schedule.CustomTimes{
			StartTime: *req.StartTime,
			EndTime:   *req.EndTime,
		}
		if req.BreakMinutes != nil {
			custom.BreakMinutes = *req.BreakMinutes
		}
		input.Custom = custom
	}

	h.ledgerMu.Lock()
	assignment, err := h.scheduleLedger.Create(input, time.Now())
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "排班创建成功", assignment)
}

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := schedule.ListOptions{
		NameSearch: query.Get("search"),
	}

	if staffIDParam := query.Get("staffId"); staffIDParam != "" {
		staffID, err := strconv.ParseInt(staffIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "员工ID无效")
			return
		}
		opts.StaffID = staffID
	}

	h.ledgerMu.Lock()
	defer h.ledgerMu.Unlock()

	if date := query.Get("date"); date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
		h.successResponse(w, r, "获取排班列表成功", h.scheduleLedger.ListForDate(date, opts))
		return
	}

	h.successResponse(w, r, "获取排班列表成功", h.scheduleLedger.ListAll(opts))
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "排班ID无效")
		return
	}

	var req struct {
		StaffID      *int64  `json:"staffId"`
		Date         *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		WorkKind     *string `json:"workKind"`
		StartTime    *string `json:"startTime"`
		EndTime      *string `json:"endTime"`
		BreakMinutes *int32  `json:"breakMinutes"`
		Notes        *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := schedule.UpdateAssignmentPatch{
		StaffID: req.StaffID,
		Date:    req.Date,
		Notes:   req.Notes,
	}
	if req.WorkKind != nil {
		kind := domain.WorkKind(*req.WorkKind)
		patch.WorkKind = &kind
	}
	if req.StartTime != nil && req.EndTime != nil {
		custom := &schedule.CustomTimes{
			StartTime: *req.StartTime,
			EndTime:   *req.EndTime,
		}
		if req.BreakMinutes != nil {
			custom.BreakMinutes = *req.BreakMinutes
		}
		patch.Custom = custom
	}

	h.ledgerMu.Lock()
	assignment, err := h.scheduleLedger.Update(id, patch)
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新排班成功", assignment)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "排班ID无效")
		return
	}

	h.ledgerMu.Lock()
	err = h.scheduleLedger.Delete(id)
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班成功", nil)
}

func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "排班ID无效")
		return
	}

	var req struct {
		ActualStartTime string `json:"actualStartTime"`
		ActualEndTime   string `json:"actualEndTime"`
		Status          string `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.ledgerMu.Lock()
	assignment, err := h.scheduleLedger.RecordAttendance(id, req.ActualStartTime, req.ActualEndTime, domain.AssignmentStatus(req.Status))
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "出勤记录成功", assignment)
}

// ScheduleDay 是周视图和月视图中的一天。
type ScheduleDay struct {
	Date          string                   `json:"date"`
	BusinessHours schedule.BusinessHours   `json:"businessHours"`
	Assignments   []domain.ShiftAssignment `json:"assignments"`
}

func (h *Handler) GetScheduleWeek(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	anchor := time.Now()
	if anchorParam := query.Get("anchor"); anchorParam != "" {
		parsed, err := time.Parse(dateLayout, anchorParam)
		if err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
		anchor = parsed
	}

	var dates []time.Time
	switch query.Get("view") {
	case "", "week":
		dates = schedule.WeekDatesContaining(anchor)
	case "month":
		dates = schedule.MonthDatesContaining(anchor)
	default:
		h.errorResponse(w, r, "无效的视图类型")
		return
	}

	h.ledgerMu.Lock()
	defer h.ledgerMu.Unlock()

	days := make([]ScheduleDay, 0, len(dates))
	for _, d := range dates {
		date := d.Format(dateLayout)
		days = append(days, ScheduleDay{
			Date:          date,
			BusinessHours: schedule.BusinessHoursFor(d),
			Assignments:   h.scheduleLedger.ListForDate(date, schedule.ListOptions{}),
		})
	}

	h.successResponse(w, r, "获取排班视图成功", days)
}

func (h *Handler) GetScheduleStats(w http.ResponseWriter, r *http.Request) {
	h.ledgerMu.Lock()
	defer h.ledgerMu.Unlock()

	payrollTotal, err := h.scheduleLedger.PartTimePayrollTotal()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := struct {
		WorkingNowCount      int     `json:"workingNowCount"`
		PendingVacationCount int     `json:"pendingVacationCount"`
		TotalCompletedHours  float64 `json:"totalCompletedHours"`
		PartTimePayrollTotal int64   `json:"partTimePayrollTotal"`
	}{
		WorkingNowCount:      h.scheduleLedger.WorkingNowCount(time.Now().Format(dateLayout)),
		PendingVacationCount: h.vacationLedger.PendingCount(),
		TotalCompletedHours:  h.scheduleLedger.TotalCompletedHours(),
		PartTimePayrollTotal: payrollTotal,
	}

	h.successResponse(w, r, "获取排班统计成功", stats)
}
