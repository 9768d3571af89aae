package domain

import (
	"errors"
	"time"

	"banking-core/pkg/money"
)

// ErrUnreadableReply marks a 2xx ledger answer to a mutation whose body could
// not be read. The ledger may have applied the mutation.
var ErrUnreadableReply = errors.New("remote ledger accepted the request but its reply was unreadable")

// RemoteTransaction is an entry of a wallet's history on the remote ledger.
type RemoteTransaction struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Status    string         `json:"status"`
	Source    string         `json:"source,omitempty"`
	Payments  []RemoteCredit `json:"payments,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// RemoteCredit is one destination leg of a remote transaction.
type RemoteCredit struct {
	ID          string       `json:"id,omitempty"`
	Destination string       `json:"destination"`
	Amount      money.Amount `json:"amount"`
	Asset       string       `json:"asset,omitempty"`
}

// RemoteTransactionPage is a page of remote history.
type RemoteTransactionPage struct {
	Transactions []RemoteTransaction `json:"transactions"`
	Total        int64               `json:"total"`
	Offset       int                 `json:"offset"`
	Limit        int                 `json:"limit"`
}

// RemoteBankSlip is the remote ledger's view of a boleto.
type RemoteBankSlip struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	Amount     money.Amount `json:"amount"`
	Registered bool         `json:"registered"`
	ExpiresAt  time.Time    `json:"expires_at"`
}
