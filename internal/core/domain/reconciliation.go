package domain

import (
	"time"

	"banking-core/pkg/money"
)

// OrphanedMutation records a remote mutation that succeeded while the local
// write that should have followed it failed. Operators repair these by hand.
type OrphanedMutation struct {
	CorrelationID   string       `json:"correlation_id"`
	Operation       string       `json:"operation"`
	RemoteID        string       `json:"remote_id,omitempty"`
	SenderWallet    string       `json:"sender_wallet,omitempty"`
	RecipientWallet string       `json:"recipient_wallet,omitempty"`
	Amount          money.Amount `json:"amount"`
	Error           string       `json:"error"`
	OccurredAt      time.Time    `json:"occurred_at"`
}
