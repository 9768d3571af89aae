package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonType classifies the role a person plays inside a tenant.
type PersonType string

const (
	PersonTypeAccountable PersonType = "accountable"
	PersonTypeEmployee    PersonType = "employee"
	PersonTypeSupplier    PersonType = "supplier"
	PersonTypeCustomer    PersonType = "customer"
)

// PersonStatus represents the state of a person record.
type PersonStatus string

const (
	PersonStatusPending  PersonStatus = "pending"
	PersonStatusActive   PersonStatus = "active"
	PersonStatusDisabled PersonStatus = "disabled"
	PersonStatusDeleted  PersonStatus = "deleted"
)

// Person is a party that can hold a wallet: accountables, employees,
// suppliers and customers of a tenant.
type Person struct {
	ID           uuid.UUID     `json:"id"`
	DomainID     *uuid.UUID    `json:"domain_id,omitempty"`
	ExternalID   *string       `json:"external_id,omitempty"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	TaxID        string        `json:"tax_id"`
	Email        string        `json:"email"`
	Type         PersonType    `json:"type"`
	Status       PersonStatus  `json:"status"`
	Wallet       *Wallet       `json:"wallet,omitempty"`
	BankAccounts []BankAccount `json:"bank_accounts,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// FullName returns first and last name joined by a space.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsEmployee reports whether the person can hold a salary.
func (p *Person) IsEmployee() bool {
	return p.Type == PersonTypeEmployee
}

// PaymentTypeAsRecipient is the payment type used when the tenant pays this
// person on its own behalf.
func (p *Person) PaymentTypeAsRecipient() PaymentType {
	if p.Type == PersonTypeEmployee {
		return PaymentTypeEmployee
	}
	return PaymentTypeSupplier
}

// DefaultBankAccount returns the account flagged as default, or nil.
func (p *Person) DefaultBankAccount() *BankAccount {
	for i := range p.BankAccounts {
		if p.BankAccounts[i].Default {
			return &p.BankAccounts[i]
		}
	}
	return nil
}

// BankAccount returns the owned account with the given id, or nil.
func (p *Person) BankAccount(id uuid.UUID) *BankAccount {
	for i := range p.BankAccounts {
		if p.BankAccounts[i].ID == id {
			return &p.BankAccounts[i]
		}
	}
	return nil
}

// BankAccount is an account at a traditional bank, used as withdrawal
// destination and as boleto issuer.
type BankAccount struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	ExternalID       *string   `json:"external_id,omitempty"` // Set once registered remotely
	Bank             string    `json:"bank"`
	Branch           string    `json:"branch"`
	BranchDigit      string    `json:"branch_digit"`
	Number           string    `json:"number"`
	Digit            string    `json:"digit"`
	CollectionWallet *string   `json:"collection_wallet,omitempty"` // "carteira" for boleto issuance
	Default          bool      `json:"default"`
}

// RemoteID returns the remote ledger identifier and whether it is set.
func (b *BankAccount) RemoteID() (string, bool) {
	if b == nil || b.ExternalID == nil || *b.ExternalID == "" {
		return "", false
	}
	return *b.ExternalID, true
}

// CanIssueBoletos reports whether the account carries a collection wallet.
func (b *BankAccount) CanIssueBoletos() bool {
	return b != nil && b.CollectionWallet != nil && *b.CollectionWallet != ""
}
