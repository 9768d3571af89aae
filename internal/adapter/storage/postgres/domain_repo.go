package postgres

import (
	"context"
	"errors"
	"fmt"

	"banking-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DomainRepo implements ports.DomainRepository over the domains table.
type DomainRepo struct {
	pool Pool
}

// NewDomainRepo creates a new DomainRepo.
func NewDomainRepo(pool Pool) *DomainRepo {
	return &DomainRepo{pool: pool}
}

func (r *DomainRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `SELECT id, external_id, name, ein, website, status, accountable_id, created_at, updated_at
		FROM domains WHERE id = $1`

	c := &domain.Company{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ExternalID, &c.Name, &c.EIN, &c.Website,
		&c.Status, &c.AccountableID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get domain by id: %w", err)
	}
	return c, nil
}
