package handler

import (
	"fmt"

	"banking-core/internal/adapter/http/dto"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"
	"banking-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes remote mutations whose local write failed.
type ReconciliationHandler struct {
	journal ports.ReconciliationJournal
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(journal ports.ReconciliationJournal) *ReconciliationHandler {
	return &ReconciliationHandler{journal: journal}
}

// Orphans handles GET /api/v1/reconciliation/orphans, newest first.
func (h *ReconciliationHandler) Orphans(c *gin.Context) {
	var q dto.OrphanQuery
	if !bindQuery(c, &q) {
		return
	}

	orphans, err := h.journal.List(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, apperror.InternalError(fmt.Errorf("list orphans: %w", err)))
		return
	}
	response.OK(c, orphans)
}
