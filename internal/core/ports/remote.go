package ports

import (
	"context"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/pkg/money"
)

// RemoteLedger is the custodial ledger that holds real balances.
// Every mutating call carries a correlation id for log matching only; the
// remote side is not assumed to deduplicate on it. Mutations answered with a
// 2xx that cannot be read fail with domain.ErrUnreadableReply.
type RemoteLedger interface {
	// FindWalletBalance returns nil when the wallet holds no such asset.
	FindWalletBalance(ctx context.Context, walletID, asset string) (*money.Amount, error)
	Transfer(ctx context.Context, correlationID, source string, credits []domain.RemoteCredit) (string, error)
	EmitAsset(ctx context.Context, correlationID, asset string, amount money.Amount, destination string) (string, error)
	IssueBankSlip(ctx context.Context, correlationID string, amount money.Amount, expiresAt time.Time) (string, error)
	RegisterBankSlip(ctx context.Context, correlationID, slipID string) (string, error)
	FindBankSlip(ctx context.Context, slipID string) (*domain.RemoteBankSlip, error)
	Withdraw(ctx context.Context, correlationID, bankAccountID string, amount money.Amount, description string) (string, error)
	FindWalletTransactions(ctx context.Context, walletID string, page domain.Page) (*domain.RemoteTransactionPage, error)
}

// BoletoGenerator renders the digitable line and barcode of a bank slip.
type BoletoGenerator interface {
	Generate(ctx context.Context, issuer domain.BoletoIssuer, boleto *domain.Boleto) (*domain.BoletoLines, error)
}

// WalletLocker serializes mutations per sender wallet. The returned release
// func is safe to call once.
type WalletLocker interface {
	Acquire(ctx context.Context, walletID string) (release func(), err error)
}

// ReconciliationJournal keeps remote mutations whose local write failed.
type ReconciliationJournal interface {
	Record(ctx context.Context, m domain.OrphanedMutation) error
	List(ctx context.Context, limit int) ([]domain.OrphanedMutation, error)
}
