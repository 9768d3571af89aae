package postgres

import (
	"context"
	"errors"
	"fmt"

	"banking-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const boletoColumns = `id, external_id, sequence, domain_id, recipient_wallet_id, amount, amount_paid, registered,
		digitable_line, barcode, status, created_at, updated_at, expires_at, paid_at`

// BoletoRepo implements ports.BoletoRepository.
type BoletoRepo struct {
	pool Pool
}

// NewBoletoRepo creates a new BoletoRepo.
func NewBoletoRepo(pool Pool) *BoletoRepo {
	return &BoletoRepo{pool: pool}
}

// Create inserts the boleto and reads back the sequence the database assigned.
func (r *BoletoRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.Boleto) error {
	query := `INSERT INTO boletos (id, external_id, domain_id, recipient_wallet_id, amount, registered,
		status, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING sequence`

	err := tx.QueryRow(ctx, query,
		b.ID, b.ExternalID, b.DomainID, b.RecipientWalletID, b.Amount, b.Registered,
		b.Status, b.CreatedAt, b.UpdatedAt, b.ExpiresAt,
	).Scan(&b.Sequence)
	if err != nil {
		return fmt.Errorf("insert boleto: %w", err)
	}
	return nil
}

func (r *BoletoRepo) UpdateLines(ctx context.Context, id uuid.UUID, digitableLine, barcode string) error {
	query := `UPDATE boletos SET digitable_line = $1, barcode = $2, updated_at = now() WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, digitableLine, barcode, id)
	if err != nil {
		return fmt.Errorf("update boleto lines: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("boleto not found: %s", id)
	}
	return nil
}

func (r *BoletoRepo) MarkRegistered(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE boletos SET registered = true, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark boleto registered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("boleto not found: %s", id)
	}
	return nil
}

// GetByID fetches a boleto by UUID.
func (r *BoletoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Boleto, error) {
	query := `SELECT ` + boletoColumns + ` FROM boletos WHERE id = $1`
	return r.getOne(ctx, "get boleto by id", query, id)
}

// GetByCode matches either stored line. Lines are kept as digits only, so
// formatted input is reduced the same way; input without digits matches
// nothing.
func (r *BoletoRepo) GetByCode(ctx context.Context, code string) (*domain.Boleto, error) {
	digits := domain.DigitsOnly(code)
	if digits == "" {
		return nil, nil
	}
	query := `SELECT ` + boletoColumns + ` FROM boletos
		WHERE digitable_line = $1 OR barcode = $1
		ORDER BY created_at ASC, id ASC LIMIT 1`
	return r.getOne(ctx, "get boleto by code", query, digits)
}

func (r *BoletoRepo) ListByStatus(ctx context.Context, status domain.BoletoStatus, page domain.Page) ([]domain.Boleto, int64, error) {
	var f filter
	f.add("status = ?", status)
	return listPage(ctx, r.pool, "boletos", boletoColumns, "created_at ASC, id ASC", f, page, scanBoleto)
}

func (r *BoletoRepo) ListByRecipient(ctx context.Context, walletID uuid.UUID, page domain.Page) ([]domain.Boleto, int64, error) {
	var f filter
	f.add("recipient_wallet_id = ?", walletID)
	return listPage(ctx, r.pool, "boletos", boletoColumns, "created_at ASC, id ASC", f, page, scanBoleto)
}

func (r *BoletoRepo) ListByIssuingPeriod(ctx context.Context, period domain.Period, page domain.Page) ([]domain.Boleto, int64, error) {
	var f filter
	f.period("created_at", period)
	return listPage(ctx, r.pool, "boletos", boletoColumns, "created_at ASC, id ASC", f, page, scanBoleto)
}

// ListMissingLines returns boletos whose rendering never completed.
func (r *BoletoRepo) ListMissingLines(ctx context.Context, page domain.Page) ([]domain.Boleto, int64, error) {
	var f filter
	f.add("(digitable_line IS NULL OR barcode IS NULL)")
	return listPage(ctx, r.pool, "boletos", boletoColumns, "created_at ASC, id ASC", f, page, scanBoleto)
}

func (r *BoletoRepo) getOne(ctx context.Context, op, query string, arg any) (*domain.Boleto, error) {
	b, err := scanBoleto(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

func scanBoleto(row pgx.Row) (domain.Boleto, error) {
	var b domain.Boleto
	err := row.Scan(
		&b.ID, &b.ExternalID, &b.Sequence, &b.DomainID, &b.RecipientWalletID,
		&b.Amount, &b.AmountPaid, &b.Registered, &b.DigitableLine, &b.Barcode,
		&b.Status, &b.CreatedAt, &b.UpdatedAt, &b.ExpiresAt, &b.PaidAt,
	)
	return b, err
}
