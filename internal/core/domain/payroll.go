package domain

import "github.com/google/uuid"

// PayrollRun aggregates the per-employee outcome of a payroll batch.
type PayrollRun struct {
	Payments []Payment        `json:"payments"`
	Failures []PayrollFailure `json:"failures"`
}

// PayrollFailure explains why one employee was not paid.
type PayrollFailure struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Code       string    `json:"code"`
	Reason     string    `json:"reason"`
}

// Failed reports whether any employee payment failed.
func (r *PayrollRun) Failed() bool {
	return len(r.Failures) > 0
}
