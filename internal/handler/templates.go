package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func (h *Handler) ListShiftTemplates(w http.ResponseWriter, r *http.Request) {
	employmentType := r.URL.Query().Get("employmentType")

	switch employmentType {
	case "":
		h.successResponse(w, r, "获取班次模板成功", h.catalog.All())
	case string(domain.EmploymentFullTime), string(domain.EmploymentPartTime):
		h.successResponse(w, r, "获取班次模板成功", h.catalog.List(domain.EmploymentType(employmentType)))
	default:
		h.errorResponse(w, r, "无效的雇佣形态")
	}
}

func (h *Handler) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	template, ok := h.catalog.Resolve(domain.WorkKind(kind))
	if !ok {
		h.errorResponse(w, r, "班次模板不存在")
		return
	}

	h.successResponse(w, r, "获取班次模板成功", template)
}
