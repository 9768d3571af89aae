package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"banking-core/pkg/money"

	"github.com/google/uuid"
)

// BoletoStatus represents the lifecycle state of a bank slip.
type BoletoStatus string

const (
	BoletoStatusIssued  BoletoStatus = "issued"
	BoletoStatusExpired BoletoStatus = "expired"
	BoletoStatusPaid    BoletoStatus = "paid"
)

// ParseBoletoStatus validates a wire value.
func ParseBoletoStatus(s string) (BoletoStatus, error) {
	switch st := BoletoStatus(s); st {
	case BoletoStatusIssued, BoletoStatusExpired, BoletoStatusPaid:
		return st, nil
	}
	return "", fmt.Errorf("unknown boleto status %q", s)
}

// Boleto is a bank slip issued by the remote ledger and collected outside the platform.
type Boleto struct {
	ID                uuid.UUID     `json:"id"`
	ExternalID        *string       `json:"external_id,omitempty"`
	Sequence          int64         `json:"sequence"` // "nosso numero", assigned by the store
	DomainID          uuid.UUID     `json:"domain_id"`
	RecipientWalletID uuid.UUID     `json:"recipient_wallet_id"`
	Amount            money.Amount  `json:"amount"`
	AmountPaid        *money.Amount `json:"amount_paid,omitempty"`
	Registered        bool          `json:"registered"`
	DigitableLine     *string       `json:"digitable_line,omitempty"`
	Barcode           *string       `json:"barcode,omitempty"`
	Status            BoletoStatus  `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	ExpiresAt         time.Time     `json:"expires_at"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`
}

// NewBoleto builds an issued, unregistered boleto for a remote slip.
func NewBoleto(domainID uuid.UUID, recipient WalletRef, amount money.Amount, expiresAt time.Time, remoteID string) *Boleto {
	now := time.Now().UTC()
	b := &Boleto{
		ID:                uuid.New(),
		DomainID:          domainID,
		RecipientWalletID: recipient.LocalID,
		Amount:            amount,
		Status:            BoletoStatusIssued,
		CreatedAt:         now,
		UpdatedAt:         now,
		ExpiresAt:         expiresAt.UTC(),
	}
	if remoteID != "" {
		b.ExternalID = &remoteID
	}
	return b
}

// HasLines reports whether the digitable line was already generated.
func (b *Boleto) HasLines() bool {
	return b.DigitableLine != nil && *b.DigitableLine != ""
}

// SetLines stores the generated line (digits only) and barcode.
func (b *Boleto) SetLines(digitableLine, barcode string) {
	line := DigitsOnly(digitableLine)
	b.DigitableLine = &line
	b.Barcode = &barcode
	b.UpdatedAt = time.Now().UTC()
}

// MatchesCode reports whether code equals the digitable line or the barcode.
func (b *Boleto) MatchesCode(code string) bool {
	return (b.DigitableLine != nil && *b.DigitableLine == code) ||
		(b.Barcode != nil && *b.Barcode == code)
}

// SequenceNumber is the zero-padded 10 digit "nosso numero".
func (b *Boleto) SequenceNumber() string {
	return fmt.Sprintf("%010d", b.Sequence)
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// BoletoIssuer is the tenant profile printed on a bank slip.
type BoletoIssuer struct {
	CompanyName      string
	EIN              string
	Bank             string
	Branch           string
	BranchDigit      string
	AccountNumber    string
	CollectionWallet string
}

// BoletoLines is the output of the line/barcode renderer.
type BoletoLines struct {
	DigitableLine string `json:"digitable_line"`
	Barcode       string `json:"barcode"`
}
