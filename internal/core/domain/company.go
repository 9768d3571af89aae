package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanyStatus represents the onboarding state of a tenant.
type CompanyStatus string

const (
	CompanyStatusDomainPending   CompanyStatus = "domain_pending"
	CompanyStatusMediatorPending CompanyStatus = "mediator_pending"
	CompanyStatusActive          CompanyStatus = "active"
	CompanyStatusDisabled        CompanyStatus = "disabled"
)

// Company is a tenant (domain) of the platform.
type Company struct {
	ID            uuid.UUID     `json:"id"`
	ExternalID    *string       `json:"external_id,omitempty"`
	Name          string        `json:"name"`
	EIN           string        `json:"ein"`
	Website       string        `json:"website"`
	Status        CompanyStatus `json:"status"`
	AccountableID *uuid.UUID    `json:"accountable_id,omitempty"` // Person legally responsible
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsActive returns true if the tenant finished onboarding.
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}
