package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/domain/audit"
)

// AuditLister reads back recent audit entries for the admin view.
type AuditLister interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Entry, error)
}

type AuditHandler struct{ store AuditLister }

func NewAuditHandler(store AuditLister) *AuditHandler { return &AuditHandler{store: store} }

func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 500 {
		limit = 100
	}
	entries, err := h.store.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"audit_logs": entries})
}
