package domain

import (
	"time"

	"banking-core/pkg/money"

	"github.com/google/uuid"
)

// Salary is one version of an employee's wage. At most one row per employee
// is current; closed rows keep ValidUntil.
type Salary struct {
	ID         uuid.UUID    `json:"id"`
	EmployeeID uuid.UUID    `json:"employee_id"`
	Amount     money.Amount `json:"amount"`
	ValidFrom  time.Time    `json:"valid_from"`
	ValidUntil *time.Time   `json:"valid_until,omitempty"`
	Current    bool         `json:"current"`
}

// NewSalary opens a current salary row starting at from.
func NewSalary(employeeID uuid.UUID, amount money.Amount, from time.Time) *Salary {
	return &Salary{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Amount:     amount,
		ValidFrom:  from,
		Current:    true,
	}
}

// Close ends the salary at until.
func (s *Salary) Close(until time.Time) {
	s.ValidUntil = &until
	s.Current = false
}
