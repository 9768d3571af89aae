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

// PersonRepo implements ports.PersonRepository. People are returned with
// their wallet and bank accounts loaded.
type PersonRepo struct {
	pool Pool
}

// NewPersonRepo creates a new PersonRepo.
func NewPersonRepo(pool Pool) *PersonRepo {
	return &PersonRepo{pool: pool}
}

func (r *PersonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	query := `SELECT p.id, p.domain_id, p.external_id, p.first_name, p.last_name, p.tax_id, p.email,
		p.type, p.status, p.created_at, p.updated_at,
		w.id, w.external_id, w.created_at, w.updated_at
		FROM people p
		LEFT JOIN wallets w ON w.owner_id = p.id
		WHERE p.id = $1`

	p := &domain.Person{}
	var (
		walletID                     *uuid.UUID
		walletExternalID             *string
		walletCreated, walletUpdated *time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.DomainID, &p.ExternalID, &p.FirstName, &p.LastName, &p.TaxID, &p.Email,
		&p.Type, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&walletID, &walletExternalID, &walletCreated, &walletUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by id: %w", err)
	}
	// LEFT JOIN: every wallet column is NULL when the person has none.
	if walletID != nil && walletCreated != nil && walletUpdated != nil {
		p.Wallet = &domain.Wallet{
			ID:         *walletID,
			OwnerID:    p.ID,
			ExternalID: walletExternalID,
			CreatedAt:  *walletCreated,
			UpdatedAt:  *walletUpdated,
		}
	}

	accounts, err := r.bankAccounts(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.BankAccounts = accounts
	return p, nil
}

func (r *PersonRepo) bankAccounts(ctx context.Context, ownerID uuid.UUID) ([]domain.BankAccount, error) {
	query := `SELECT id, owner_id, external_id, bank, branch, branch_digit, number, digit, collection_wallet, is_default
		FROM bank_accounts WHERE owner_id = $1 ORDER BY is_default DESC, id ASC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		var a domain.BankAccount
		if err := rows.Scan(
			&a.ID, &a.OwnerID, &a.ExternalID, &a.Bank, &a.Branch, &a.BranchDigit,
			&a.Number, &a.Digit, &a.CollectionWallet, &a.Default,
		); err != nil {
			return nil, fmt.Errorf("scan bank account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank account rows: %w", err)
	}
	return accounts, nil
}
