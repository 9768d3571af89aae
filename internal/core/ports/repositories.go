package ports

import (
	"context"
	"time"

	"banking-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository defines persistence operations for payments.
// Create runs inside the transaction that follows a remote mutation.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus, page domain.Page) ([]domain.Payment, int64, error)
	ListByType(ctx context.Context, paymentType domain.PaymentType, page domain.Page) ([]domain.Payment, int64, error)
	// ListByWalletPeriod matches payments where the wallet is sender OR
	// recipient, bounded by the inclusive period, oldest first.
	ListByWalletPeriod(ctx context.Context, walletID uuid.UUID, period domain.Period, page domain.Page) ([]domain.Payment, int64, error)
}

// BoletoRepository defines persistence operations for bank slips.
type BoletoRepository interface {
	// Create inserts the boleto and fills in the store-assigned Sequence.
	Create(ctx context.Context, tx pgx.Tx, boleto *domain.Boleto) error
	UpdateLines(ctx context.Context, id uuid.UUID, digitableLine, barcode string) error
	MarkRegistered(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Boleto, error)
	// GetByCode matches the digitable line OR the barcode.
	GetByCode(ctx context.Context, code string) (*domain.Boleto, error)
	ListByStatus(ctx context.Context, status domain.BoletoStatus, page domain.Page) ([]domain.Boleto, int64, error)
	ListByRecipient(ctx context.Context, walletID uuid.UUID, page domain.Page) ([]domain.Boleto, int64, error)
	ListByIssuingPeriod(ctx context.Context, period domain.Period, page domain.Page) ([]domain.Boleto, int64, error)
	ListMissingLines(ctx context.Context, page domain.Page) ([]domain.Boleto, int64, error)
}

// SalaryRepository defines persistence operations for salary versions.
type SalaryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, salary *domain.Salary) error
	// Close ends the current row; it must run before Create in the same tx.
	Close(ctx context.Context, tx pgx.Tx, id uuid.UUID, until time.Time) error
	GetCurrent(ctx context.Context, employeeID uuid.UUID) (*domain.Salary, error)
	ListCurrent(ctx context.Context, page domain.Page) ([]domain.Salary, int64, error)
	ListHistory(ctx context.Context, employeeID uuid.UUID, page domain.Page) ([]domain.Salary, int64, error)
}

// WalletRepository reads cached wallet rows.
type WalletRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
}

// PersonRepository reads people with their wallet and bank accounts loaded.
type PersonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
}

// DomainRepository reads tenants.
type DomainRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
