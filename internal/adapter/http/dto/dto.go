package dto

import (
	"time"

	"banking-core/internal/core/domain"
	"banking-core/pkg/money"

	"github.com/google/uuid"
)

// TransferRequest is the request body for a wallet-to-wallet transfer.
type TransferRequest struct {
	SenderID    uuid.UUID    `json:"sender_id" binding:"required"`
	RecipientID uuid.UUID    `json:"recipient_id" binding:"required"`
	Amount      money.Amount `json:"amount" binding:"positive_amount"`
	Type        string       `json:"type,omitempty" binding:"omitempty,oneof=transfer supplier_payment employee_payment"`
}

// InternalPaymentRequest pays a person from their tenant's accountable wallet.
type InternalPaymentRequest struct {
	RecipientID uuid.UUID    `json:"recipient_id" binding:"required"`
	Amount      money.Amount `json:"amount" binding:"positive_amount"`
}

// DepositRequest emits the root asset into a wallet of the tenant.
type DepositRequest struct {
	DomainID    uuid.UUID    `json:"domain_id" binding:"required"`
	Amount      money.Amount `json:"amount" binding:"positive_amount"`
	RecipientID *uuid.UUID   `json:"recipient_id,omitempty"`
}

// WithdrawalRequest moves funds out to a registered bank account.
type WithdrawalRequest struct {
	RecipientID   uuid.UUID    `json:"recipient_id" binding:"required"`
	BankAccountID uuid.UUID    `json:"bank_account_id" binding:"required"`
	Amount        money.Amount `json:"amount" binding:"positive_amount"`
	Description   string       `json:"description" binding:"max=140"`
}

// WithdrawalResponse carries the remote ledger confirmation.
type WithdrawalResponse struct {
	Confirmation string `json:"confirmation"`
}

// BoletoRequest is the request body for bank slip issuance.
type BoletoRequest struct {
	DomainID    uuid.UUID    `json:"domain_id" binding:"required"`
	ExpiresAt   time.Time    `json:"expires_at" binding:"required"`
	Amount      money.Amount `json:"amount" binding:"positive_amount"`
	RecipientID *uuid.UUID   `json:"recipient_id,omitempty"`
}

// SalaryRequest sets a new current salary.
type SalaryRequest struct {
	Amount money.Amount `json:"amount" binding:"positive_amount"`
}

// PayrollRunRequest restricts a payroll run to some employees. Empty pays
// every current salary.
type PayrollRunRequest struct {
	EmployeeIDs []uuid.UUID `json:"employee_ids,omitempty" binding:"omitempty,max=500"`
}

// PageQuery is the offset/limit pair shared by every listing.
type PageQuery struct {
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Page converts the query into a normalized domain page.
func (q PageQuery) Page() domain.Page {
	return domain.Page{Offset: q.Offset, Limit: q.Limit}.Normalize()
}

// PeriodQuery bounds a listing by creation time (RFC 3339, both inclusive).
type PeriodQuery struct {
	After  *time.Time `form:"after"`
	Before *time.Time `form:"before"`
}

// Period converts the query into a domain period.
func (q PeriodQuery) Period() domain.Period {
	return domain.Period{After: q.After, Before: q.Before}
}

// IsSet reports whether any bound was given.
func (q PeriodQuery) IsSet() bool {
	return q.After != nil || q.Before != nil
}

// PaymentListQuery filters GET /payments. Exactly one of Status and Type is used.
type PaymentListQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,oneof=pending executed failed"`
	Type   string `form:"type" binding:"omitempty,oneof=deposit withdrawal transfer supplier_payment employee_payment"`
}

// BoletoListQuery filters GET /boletos.
type BoletoListQuery struct {
	PageQuery
	PeriodQuery
	Code         string     `form:"code" binding:"omitempty,boleto_code"`
	Status       string     `form:"status" binding:"omitempty,oneof=issued expired paid"`
	RecipientID  *uuid.UUID `form:"recipient_id"`
	MissingLines bool       `form:"missing_lines"`
}

// WalletPaymentsQuery filters GET /wallets/:id/payments.
type WalletPaymentsQuery struct {
	PageQuery
	PeriodQuery
}

// OrphanQuery limits GET /reconciliation/orphans.
type OrphanQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
