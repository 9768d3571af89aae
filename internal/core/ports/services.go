package ports

import (
	"context"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/pkg/money"

	"github.com/google/uuid"
)

// --- Service Ports (Business Logic) ---

// AccountableResolver finds the person legally responsible for a tenant.
type AccountableResolver interface {
	FindAccountable(ctx context.Context, domainID uuid.UUID) (*domain.Person, error)
}

// PaymentService executes money movements against the remote ledger and
// records them locally.
type PaymentService interface {
	Transfer(ctx context.Context, req TransferRequest) (*domain.Payment, error)
	InternalPayment(ctx context.Context, recipientID uuid.UUID, amount money.Amount) (*domain.Payment, error)
	Deposit(ctx context.Context, req DepositRequest) ([]domain.Payment, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (string, error)
	GetBlockchainTransactions(ctx context.Context, walletID uuid.UUID, page domain.Page) (*domain.RemoteTransactionPage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindByStatus(ctx context.Context, status domain.PaymentStatus, page domain.Page) ([]domain.Payment, int64, error)
	FindByType(ctx context.Context, paymentType domain.PaymentType, page domain.Page) ([]domain.Payment, int64, error)
	FindByPeriod(ctx context.Context, walletID uuid.UUID, period domain.Period, page domain.Page) ([]domain.Payment, int64, error)
}

// TransferRequest holds validated input for a peer-to-peer transfer.
type TransferRequest struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Amount      money.Amount
	Type        domain.PaymentType // Empty defaults to transfer
}

// DepositRequest holds validated input for an asset emission.
type DepositRequest struct {
	DomainID    uuid.UUID
	Amount      money.Amount
	RecipientID *uuid.UUID // nil = the tenant's accountable
}

// WithdrawRequest holds validated input for a withdrawal to a bank account.
type WithdrawRequest struct {
	RecipientID   uuid.UUID
	BankAccountID uuid.UUID
	Amount        money.Amount
	Description   string
}

// BoletoService issues and tracks bank slips.
type BoletoService interface {
	EmitBankSlip(ctx context.Context, req EmitBoletoRequest) (*domain.Boleto, error)
	RegisterBankSlip(ctx context.Context, id uuid.UUID) (*domain.Boleto, error)
	RegenerateLines(ctx context.Context, id uuid.UUID) (*domain.Boleto, error)
	LookupRemote(ctx context.Context, id uuid.UUID) (*domain.RemoteBankSlip, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Boleto, error)
	FindByCode(ctx context.Context, code string) (*domain.Boleto, error)
	FindByStatus(ctx context.Context, status domain.BoletoStatus, page domain.Page) ([]domain.Boleto, int64, error)
	FindByRecipient(ctx context.Context, walletID uuid.UUID, page domain.Page) ([]domain.Boleto, int64, error)
	FindByIssuingPeriod(ctx context.Context, period domain.Period, page domain.Page) ([]domain.Boleto, int64, error)
	ListMissingLines(ctx context.Context, page domain.Page) ([]domain.Boleto, int64, error)
}

// EmitBoletoRequest holds validated input for bank slip issuance.
type EmitBoletoRequest struct {
	DomainID    uuid.UUID
	ExpiresAt   time.Time
	Amount      money.Amount
	RecipientID *uuid.UUID // nil = the tenant's accountable
}

// PayrollService versions salaries and pays employees.
type PayrollService interface {
	Update(ctx context.Context, employeeID uuid.UUID, amount money.Amount) (*domain.Salary, error)
	PayEmployees(ctx context.Context, employeeIDs []uuid.UUID) (*domain.PayrollRun, error)
	Current(ctx context.Context, employeeID uuid.UUID) (*domain.Salary, error)
	CurrentWages(ctx context.Context, page domain.Page) ([]domain.Salary, int64, error)
	History(ctx context.Context, employeeID uuid.UUID, page domain.Page) ([]domain.Salary, int64, error)
}
