package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func (h *Handler) GetAllNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.repository.GetAllNotices()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取公告列表成功", notices)
}

func (h *Handler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Title    string `json:"title" validate:"required"`
		Category string `json:"category" validate:"required,oneof=general operation education"`
		Body     string `json:"body" validate:"required"`
		IsPinned bool   `json:"isPinned"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	notice := &domain.Notice{
		Title:    req.Title,
		Category: domain.NoticeCategory(req.Category),
		Body:     req.Body,
		Author:   myInfo.FullName,
		IsPinned: req.IsPinned,
	}

	if err := h.repository.CreateNotice(notice); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "公告创建成功", notice)
}

func (h *Handler) GetNotice(w http.ResponseWriter, r *http.Request) {
	notice := r.Context().Value(NoticeCtx).(*domain.Notice)
	h.successResponse(w, r, "获取公告成功", notice)
}

func (h *Handler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    *string `json:"title"`
		Category *string `json:"category" validate:"omitempty,oneof=general operation education"`
		Body     *string `json:"body"`
		IsPinned *bool   `json:"isPinned"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	notice := r.Context().Value(NoticeCtx).(*domain.Notice)

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Category != nil {
		notice.Category = domain.NoticeCategory(*req.Category)
	}
	if req.Body != nil {
		notice.Body = *req.Body
	}
	if req.IsPinned != nil {
		notice.IsPinned = *req.IsPinned
	}

	if err := h.repository.UpdateNotice(notice); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新公告失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新公告成功", notice)
}

func (h *Handler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	notice := r.Context().Value(NoticeCtx).(*domain.Notice)

	if err := h.repository.DeleteNotice(notice.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除公告成功", nil)
}
