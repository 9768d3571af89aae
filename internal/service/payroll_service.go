package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"
	"banking-core/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultPayrollWorkers = 4

// PayrollServiceImpl implements ports.PayrollService.
type PayrollServiceImpl struct {
	salaryRepo ports.SalaryRepository
	personRepo ports.PersonRepository
	payments   ports.PaymentService
	transactor ports.DBTransactor
	workers    int
	now        func() time.Time
	log        zerolog.Logger
}

// NewPayrollService creates a new PayrollServiceImpl. workers bounds the
// number of employee payments in flight.
func NewPayrollService(
	salaryRepo ports.SalaryRepository,
	personRepo ports.PersonRepository,
	payments ports.PaymentService,
	transactor ports.DBTransactor,
	workers int,
	log zerolog.Logger,
) *PayrollServiceImpl {
	if workers < 1 {
		workers = defaultPayrollWorkers
	}
	return &PayrollServiceImpl{
		salaryRepo: salaryRepo,
		personRepo: personRepo,
		payments:   payments,
		transactor: transactor,
		workers:    workers,
		now:        time.Now,
		log:        log,
	}
}

// Update closes the employee's current salary and opens a new one in a
// single transaction.
func (s *PayrollServiceImpl) Update(ctx context.Context, employeeID uuid.UUID, amount money.Amount) (*domain.Salary, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	employee, err := s.personRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get employee: %w", err))
	}
	if employee == nil {
		return nil, apperror.ErrNotFound("employee")
	}
	if !employee.IsEmployee() {
		return nil, apperror.ErrInvalidOperand("salaries can only be set for employees")
	}

	previous, err := s.salaryRepo.GetCurrent(ctx, employeeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get current salary: %w", err))
	}

	now := s.now().UTC()
	salary := domain.NewSalary(employeeID, amount, now)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Close first: the partial unique index allows one current row.
	if previous != nil {
		if err := s.salaryRepo.Close(ctx, dbTx, previous.ID, now); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("close salary: %w", err))
		}
	}
	if err := s.salaryRepo.Create(ctx, dbTx, salary); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create salary: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("employee_id", employeeID.String()).
		Str("salary_id", salary.ID.String()).
		Str("amount", amount.String()).
		Msg("salary updated")

	return salary, nil
}

// PayEmployees pays the current salary of each employee, or of every
// employee with a current salary when employeeIDs is empty. Payments run on
// a bounded worker pool and each employee succeeds or fails on its own. The
// run is always returned; a PAYROLL_001 error accompanies it when any
// employee failed.
func (s *PayrollServiceImpl) PayEmployees(ctx context.Context, employeeIDs []uuid.UUID) (*domain.PayrollRun, error) {
	run := &domain.PayrollRun{
		Payments: []domain.Payment{},
		Failures: []domain.PayrollFailure{},
	}

	var salaries []domain.Salary
	if len(employeeIDs) > 0 {
		for _, id := range employeeIDs {
			salary, err := s.salaryRepo.GetCurrent(ctx, id)
			switch {
			case err != nil:
				run.Failures = append(run.Failures, failureOf(id, apperror.InternalError(fmt.Errorf("get current salary: %w", err))))
			case salary == nil:
				run.Failures = append(run.Failures, failureOf(id, apperror.ErrNotFound("current salary")))
			default:
				salaries = append(salaries, *salary)
			}
		}
	} else {
		all, err := s.allCurrentSalaries(ctx)
		if err != nil {
			return nil, err
		}
		salaries = all
	}

	type outcome struct {
		payment *domain.Payment
		err     error
	}
	outcomes := make([]outcome, len(salaries))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range salaries {
		salary := salaries[i]
		g.Go(func() error {
			p, err := s.payments.InternalPayment(ctx, salary.EmployeeID, salary.Amount)
			outcomes[i] = outcome{payment: p, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, o := range outcomes {
		if o.err != nil {
			run.Failures = append(run.Failures, failureOf(salaries[i].EmployeeID, o.err))
			continue
		}
		run.Payments = append(run.Payments, *o.payment)
	}

	total := len(run.Payments) + len(run.Failures)
	s.log.Info().
		Int("employees", total).
		Int("paid", len(run.Payments)).
		Int("failed", len(run.Failures)).
		Msg("payroll run finished")

	if run.Failed() {
		return run, apperror.ErrPayrollPartial(len(run.Failures), total)
	}
	return run, nil
}

// Current returns the salary in effect for the employee.
func (s *PayrollServiceImpl) Current(ctx context.Context, employeeID uuid.UUID) (*domain.Salary, error) {
	salary, err := s.salaryRepo.GetCurrent(ctx, employeeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get current salary: %w", err))
	}
	if salary == nil {
		return nil, apperror.ErrNotFound("salary")
	}
	return salary, nil
}

func (s *PayrollServiceImpl) CurrentWages(ctx context.Context, page domain.Page) ([]domain.Salary, int64, error) {
	salaries, total, err := s.salaryRepo.ListCurrent(ctx, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list current salaries: %w", err))
	}
	return salaries, total, nil
}

// History lists every salary version of the employee, oldest first.
func (s *PayrollServiceImpl) History(ctx context.Context, employeeID uuid.UUID, page domain.Page) ([]domain.Salary, int64, error) {
	salaries, total, err := s.salaryRepo.ListHistory(ctx, employeeID, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list salary history: %w", err))
	}
	return salaries, total, nil
}

func (s *PayrollServiceImpl) allCurrentSalaries(ctx context.Context) ([]domain.Salary, error) {
	var all []domain.Salary
	page := domain.Page{Offset: 0, Limit: domain.MaxPageLimit}
	for {
		batch, total, err := s.salaryRepo.ListCurrent(ctx, page)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("list current salaries: %w", err))
		}
		all = append(all, batch...)
		page.Offset += len(batch)
		if len(batch) == 0 || int64(page.Offset) >= total {
			return all, nil
		}
	}
}

func failureOf(employeeID uuid.UUID, err error) domain.PayrollFailure {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return domain.PayrollFailure{EmployeeID: employeeID, Code: appErr.Code, Reason: appErr.Message}
	}
	return domain.PayrollFailure{EmployeeID: employeeID, Code: apperror.CodeInternal, Reason: err.Error()}
}
