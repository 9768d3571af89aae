package handler

import (
	"banking-core/internal/adapter/http/dto"
	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"
	"banking-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles money movement endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *PaymentHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	var paymentType domain.PaymentType
	if req.Type != "" {
		paymentType = domain.PaymentType(req.Type)
	}

	payment, err := h.paymentSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Amount:      req.Amount,
		Type:        paymentType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}

// InternalPayment handles POST /api/v1/internal-payments.
func (h *PaymentHandler) InternalPayment(c *gin.Context) {
	var req dto.InternalPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentSvc.InternalPayment(c.Request.Context(), req.RecipientID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment)
}

// Deposit handles POST /api/v1/deposits.
func (h *PaymentHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	payments, err := h.paymentSvc.Deposit(c.Request.Context(), ports.DepositRequest{
		DomainID:    req.DomainID,
		Amount:      req.Amount,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payments)
}

// Withdraw handles POST /api/v1/withdrawals.
func (h *PaymentHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	confirmation, err := h.paymentSvc.Withdraw(c.Request.Context(), ports.WithdrawRequest{
		RecipientID:   req.RecipientID,
		BankAccountID: req.BankAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.WithdrawalResponse{Confirmation: confirmation})
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payment)
}

// List handles GET /api/v1/payments?status=|type=. Exactly one filter is required.
func (h *PaymentHandler) List(c *gin.Context) {
	var q dto.PaymentListQuery
	if !bindQuery(c, &q) {
		return
	}
	page := q.Page()

	var (
		payments []domain.Payment
		total    int64
		err      error
	)
	switch {
	case q.Status != "" && q.Type == "":
		payments, total, err = h.paymentSvc.FindByStatus(c.Request.Context(), domain.PaymentStatus(q.Status), page)
	case q.Type != "" && q.Status == "":
		payments, total, err = h.paymentSvc.FindByType(c.Request.Context(), domain.PaymentType(q.Type), page)
	default:
		response.Error(c, apperror.Validation("exactly one of status or type is required"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, payments, total, page.Offset, page.Limit)
}

// ListByWallet handles GET /api/v1/wallets/:id/payments.
func (h *PaymentHandler) ListByWallet(c *gin.Context) {
	walletID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q dto.WalletPaymentsQuery
	if !bindQuery(c, &q) {
		return
	}
	page := q.Page()

	payments, total, err := h.paymentSvc.FindByPeriod(c.Request.Context(), walletID, q.Period(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, payments, total, page.Offset, page.Limit)
}

// Transactions handles GET /api/v1/wallets/:id/transactions, the remote history.
func (h *PaymentHandler) Transactions(c *gin.Context) {
	walletID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}

	result, err := h.paymentSvc.GetBlockchainTransactions(c.Request.Context(), walletID, q.Page())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, result.Transactions, result.Total, result.Offset, result.Limit)
}
