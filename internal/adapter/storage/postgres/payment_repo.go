package postgres

import (
	"context"
	"errors"
	"fmt"

	"banking-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, external_id, type, sender_wallet_id, recipient_wallet_id, amount, status, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a payment within a database transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.ExternalID, p.Type, p.SenderWalletID, p.RecipientWalletID,
		p.Amount, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches a payment by UUID.
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}
	return &p, nil
}

func (r *PaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus, page domain.Page) ([]domain.Payment, int64, error) {
	var f filter
	f.add("status = ?", status)
	return listPage(ctx, r.pool, "payments", paymentColumns, "created_at ASC, id ASC", f, page, scanPayment)
}

func (r *PaymentRepo) ListByType(ctx context.Context, paymentType domain.PaymentType, page domain.Page) ([]domain.Payment, int64, error) {
	var f filter
	f.add("type = ?", paymentType)
	return listPage(ctx, r.pool, "payments", paymentColumns, "created_at ASC, id ASC", f, page, scanPayment)
}

// ListByWalletPeriod matches the wallet on either side of the payment.
func (r *PaymentRepo) ListByWalletPeriod(ctx context.Context, walletID uuid.UUID, period domain.Period, page domain.Page) ([]domain.Payment, int64, error) {
	var f filter
	f.add("(sender_wallet_id = ? OR recipient_wallet_id = ?)", walletID, walletID)
	f.period("created_at", period)
	return listPage(ctx, r.pool, "payments", paymentColumns, "created_at ASC, id ASC", f, page, scanPayment)
}

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.ExternalID, &p.Type, &p.SenderWalletID, &p.RecipientWalletID,
		&p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
