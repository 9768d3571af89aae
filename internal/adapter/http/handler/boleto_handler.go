package handler

import (
	"banking-core/internal/adapter/http/dto"
	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"
	"banking-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// BoletoHandler handles bank slip endpoints.
type BoletoHandler struct {
	boletoSvc ports.BoletoService
}

// NewBoletoHandler creates a new BoletoHandler.
func NewBoletoHandler(boletoSvc ports.BoletoService) *BoletoHandler {
	return &BoletoHandler{boletoSvc: boletoSvc}
}

// Emit handles POST /api/v1/boletos. When the slip was issued but its lines
// could not be rendered, the boleto is returned alongside BOLETO_001.
func (h *BoletoHandler) Emit(c *gin.Context) {
	var req dto.BoletoRequest
	if !bindJSON(c, &req) {
		return
	}

	boleto, err := h.boletoSvc.EmitBankSlip(c.Request.Context(), ports.EmitBoletoRequest{
		DomainID:    req.DomainID,
		ExpiresAt:   req.ExpiresAt,
		Amount:      req.Amount,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		if boleto != nil {
			response.Partial(c, err, boleto)
			return
		}
		response.Error(c, err)
		return
	}
	response.Created(c, boleto)
}

// Get handles GET /api/v1/boletos/:id.
func (h *BoletoHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	boleto, err := h.boletoSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, boleto)
}

// Remote handles GET /api/v1/boletos/:id/remote.
func (h *BoletoHandler) Remote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	slip, err := h.boletoSvc.LookupRemote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, slip)
}

// Register handles POST /api/v1/boletos/:id/register.
func (h *BoletoHandler) Register(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	boleto, err := h.boletoSvc.RegisterBankSlip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, boleto)
}

// RegenerateLines handles POST /api/v1/boletos/:id/lines.
func (h *BoletoHandler) RegenerateLines(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	boleto, err := h.boletoSvc.RegenerateLines(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, boleto)
}

// List handles GET /api/v1/boletos. Filters are tried in order: code,
// status, recipient_id, missing_lines, then the issuing period.
func (h *BoletoHandler) List(c *gin.Context) {
	var q dto.BoletoListQuery
	if !bindQuery(c, &q) {
		return
	}
	ctx := c.Request.Context()

	if q.Code != "" {
		boleto, err := h.boletoSvc.FindByCode(ctx, q.Code)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, boleto)
		return
	}

	page := q.Page()
	var (
		boletos []domain.Boleto
		total   int64
		err     error
	)
	switch {
	case q.Status != "":
		boletos, total, err = h.boletoSvc.FindByStatus(ctx, domain.BoletoStatus(q.Status), page)
	case q.RecipientID != nil:
		boletos, total, err = h.boletoSvc.FindByRecipient(ctx, *q.RecipientID, page)
	case q.MissingLines:
		boletos, total, err = h.boletoSvc.ListMissingLines(ctx, page)
	case q.PeriodQuery.IsSet():
		boletos, total, err = h.boletoSvc.FindByIssuingPeriod(ctx, q.Period(), page)
	default:
		response.Error(c, apperror.Validation("one of code, status, recipient_id, missing_lines, after or before is required"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, boletos, total, page.Offset, page.Limit)
}
