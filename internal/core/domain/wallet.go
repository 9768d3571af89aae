package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the local mirror of a custodial account held by the remote ledger.
// Balances live remotely; ExternalID is the only link to them.
type Wallet struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	ExternalID *string   `json:"external_id,omitempty"` // Immutable once set
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RemoteID returns the remote ledger identifier and whether it is set.
func (w *Wallet) RemoteID() (string, bool) {
	if w == nil || w.ExternalID == nil || *w.ExternalID == "" {
		return "", false
	}
	return *w.ExternalID, true
}

// WalletRef is a wallet resolved at the boundary: the local row id plus its
// remote identifier. Orchestrators pass this around instead of re-resolving.
type WalletRef struct {
	LocalID  uuid.UUID
	RemoteID string
}

// Ref resolves the wallet into a WalletRef. ok is false when the wallet has
// never been registered remotely.
func (w *Wallet) Ref() (WalletRef, bool) {
	remote, ok := w.RemoteID()
	if !ok {
		return WalletRef{}, false
	}
	return WalletRef{LocalID: w.ID, RemoteID: remote}, true
}
