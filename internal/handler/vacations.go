package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func (h *Handler) RequestVacation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID   int64  `json:"staffId" validate:"required"`
		StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
		Type      string `json:"type" validate:"required,oneof=annual sick personal maternity"`
		Reason    string `json:"reason"`
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
	request, err := h.vacationLedger.Request(req.StaffID, req.StartDate, req.EndDate, domain.VacationType(req.Type), req.Reason, time.Now())
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "休假申请提交成功", request)
}

func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	h.ledgerMu.Lock()
	requests := h.vacationLedger.List()
	h.ledgerMu.Unlock()

	h.successResponse(w, r, "获取休假申请列表成功", requests)
}

func (h *Handler) DecideVacation(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "休假申请ID无效")
		return
	}

	var req struct {
		Approved *bool `json:"approved" validate:"required"`
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
	request, err := h.vacationLedger.Decide(id, *req.Approved, myInfo.FullName, time.Now().Format(dateLayout))
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	// 申请人留有邮箱时发送审批结果通知。账本已经更新，
	// 邮件发送失败不回滚，只记录日志
	h.notifyVacationDecided(request)

	h.successResponse(w, r, "休假申请处理成功", request)
}

func (h *Handler) notifyVacationDecided(request domain.VacationRequest) {
	staff, err := h.repository.GetStaffByID(request.StaffID)
	if err != nil || staff.Email == "" {
		return
	}

	mailMessage := domain.MailMessage{
		Type: "vacation_decided",
		To:   staff.Email,
		Data: domain.VacationDecidedMailData{
			StaffName:  request.StaffName,
			StartDate:  request.StartDate,
			EndDate:    request.EndDate,
			Approved:   request.Status == domain.VacationApproved,
			ApprovedBy: request.ApprovedBy,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Error("序列化休假审批通知邮件失败", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Error("发送休假审批通知邮件失败", "error", err)
	}
}

func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "休假申请ID无效")
		return
	}

	h.ledgerMu.Lock()
	err = h.vacationLedger.Delete(id)
	h.ledgerMu.Unlock()
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除休假申请成功", nil)
}
