package domain

import (
	"fmt"
	"time"

	"banking-core/pkg/money"

	"github.com/google/uuid"
)

// PaymentType represents the kind of money movement.
type PaymentType string

const (
	PaymentTypeDeposit    PaymentType = "deposit"
	PaymentTypeWithdrawal PaymentType = "withdrawal"
	PaymentTypeTransfer   PaymentType = "transfer"
	PaymentTypeSupplier   PaymentType = "supplier_payment"
	PaymentTypeEmployee   PaymentType = "employee_payment"
)

// ParsePaymentType validates a wire value.
func ParsePaymentType(s string) (PaymentType, error) {
	switch t := PaymentType(s); t {
	case PaymentTypeDeposit, PaymentTypeWithdrawal, PaymentTypeTransfer,
		PaymentTypeSupplier, PaymentTypeEmployee:
		return t, nil
	}
	return "", fmt.Errorf("unknown payment type %q", s)
}

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusExecuted PaymentStatus = "executed"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// ParsePaymentStatus validates a wire value.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentStatusPending, PaymentStatusExecuted, PaymentStatusFailed:
		return st, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Payment is the local record of a money movement accepted by the remote ledger.
// It is only ever created after the remote mutation succeeded.
type Payment struct {
	ID                uuid.UUID     `json:"id"`
	ExternalID        *string       `json:"external_id,omitempty"` // Remote transaction id
	Type              PaymentType   `json:"type"`
	SenderWalletID    uuid.UUID     `json:"sender_wallet_id"`
	RecipientWalletID uuid.UUID     `json:"recipient_wallet_id"`
	Amount            money.Amount  `json:"amount"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// NewPayment builds a pending payment for a remote mutation that was accepted.
func NewPayment(paymentType PaymentType, sender, recipient WalletRef, amount money.Amount, remoteID string) *Payment {
	now := time.Now().UTC()
	p := &Payment{
		ID:                uuid.New(),
		Type:              paymentType,
		SenderWalletID:    sender.LocalID,
		RecipientWalletID: recipient.LocalID,
		Amount:            amount,
		Status:            PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if remoteID != "" {
		p.ExternalID = &remoteID
	}
	return p
}

// MarkExecuted moves a pending payment to executed.
func (p *Payment) MarkExecuted() {
	p.Status = PaymentStatusExecuted
	p.UpdatedAt = time.Now().UTC()
}

// IsTerminal returns true if the payment is in a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusExecuted || p.Status == PaymentStatusFailed
}

// Involves reports whether the wallet is sender or recipient.
func (p *Payment) Involves(walletID uuid.UUID) bool {
	return p.SenderWalletID == walletID || p.RecipientWalletID == walletID
}
