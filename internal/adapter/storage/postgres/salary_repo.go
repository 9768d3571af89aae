package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"banking-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const salaryColumns = `id, employee_id, amount, valid_from, valid_until, current`

// SalaryRepo implements ports.SalaryRepository. The salaries_one_current
// partial index rejects a second current row per employee.
type SalaryRepo struct {
	pool Pool
}

// NewSalaryRepo creates a new SalaryRepo.
func NewSalaryRepo(pool Pool) *SalaryRepo {
	return &SalaryRepo{pool: pool}
}

func (r *SalaryRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.Salary) error {
	query := `INSERT INTO salaries (` + salaryColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, s.ID, s.EmployeeID, s.Amount, s.ValidFrom, s.ValidUntil, s.Current)
	if err != nil {
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

// Close ends a current salary row.
func (r *SalaryRepo) Close(ctx context.Context, tx pgx.Tx, id uuid.UUID, until time.Time) error {
	query := `UPDATE salaries SET valid_until = $1, current = false WHERE id = $2 AND current`

	tag, err := tx.Exec(ctx, query, until, id)
	if err != nil {
		return fmt.Errorf("close salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("current salary not found: %s", id)
	}
	return nil
}

func (r *SalaryRepo) GetCurrent(ctx context.Context, employeeID uuid.UUID) (*domain.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE employee_id = $1 AND current`

	s, err := scanSalary(r.pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current salary: %w", err)
	}
	return &s, nil
}

func (r *SalaryRepo) ListCurrent(ctx context.Context, page domain.Page) ([]domain.Salary, int64, error) {
	var f filter
	f.add("current")
	return listPage(ctx, r.pool, "salaries", salaryColumns, "valid_from ASC, id ASC", f, page, scanSalary)
}

func (r *SalaryRepo) ListHistory(ctx context.Context, employeeID uuid.UUID, page domain.Page) ([]domain.Salary, int64, error) {
	var f filter
	f.add("employee_id = ?", employeeID)
	return listPage(ctx, r.pool, "salaries", salaryColumns, "valid_from ASC", f, page, scanSalary)
}

func scanSalary(row pgx.Row) (domain.Salary, error) {
	var s domain.Salary
	err := row.Scan(&s.ID, &s.EmployeeID, &s.Amount, &s.ValidFrom, &s.ValidUntil, &s.Current)
	return s, err
}
