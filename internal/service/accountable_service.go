package service

import (
	"context"
	"fmt"

	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountableService implements ports.AccountableResolver.
type AccountableService struct {
	domainRepo ports.DomainRepository
	personRepo ports.PersonRepository
	log        zerolog.Logger
}

// NewAccountableService creates a new AccountableService.
func NewAccountableService(
	domainRepo ports.DomainRepository,
	personRepo ports.PersonRepository,
	log zerolog.Logger,
) *AccountableService {
	return &AccountableService{
		domainRepo: domainRepo,
		personRepo: personRepo,
		log:        log,
	}
}

// FindAccountable returns the person legally responsible for the tenant,
// with wallet and bank accounts loaded.
func (s *AccountableService) FindAccountable(ctx context.Context, domainID uuid.UUID) (*domain.Person, error) {
	company, err := s.domainRepo.GetByID(ctx, domainID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get domain: %w", err))
	}
	if company == nil {
		return nil, apperror.ErrNotFound("domain")
	}
	if company.AccountableID == nil {
		s.log.Warn().Str("domain_id", domainID.String()).Msg("domain has no accountable")
		return nil, apperror.ErrNotFound("accountable")
	}

	person, err := s.personRepo.GetByID(ctx, *company.AccountableID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get accountable: %w", err))
	}
	if person == nil {
		return nil, apperror.ErrNotFound("accountable")
	}
	return person, nil
}
