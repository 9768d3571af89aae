package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BoletoServiceImpl implements ports.BoletoService.
type BoletoServiceImpl struct {
	boletoRepo   ports.BoletoRepository
	domainRepo   ports.DomainRepository
	personRepo   ports.PersonRepository
	accountables ports.AccountableResolver
	ledger       ports.RemoteLedger
	generator    ports.BoletoGenerator
	transactor   ports.DBTransactor
	orphans      orphanReporter
	bankName     string
	log          zerolog.Logger
}

// NewBoletoService creates a new BoletoServiceImpl.
func NewBoletoService(
	boletoRepo ports.BoletoRepository,
	domainRepo ports.DomainRepository,
	personRepo ports.PersonRepository,
	accountables ports.AccountableResolver,
	ledger ports.RemoteLedger,
	generator ports.BoletoGenerator,
	journal ports.ReconciliationJournal,
	transactor ports.DBTransactor,
	bankName string,
	log zerolog.Logger,
) *BoletoServiceImpl {
	return &BoletoServiceImpl{
		boletoRepo:   boletoRepo,
		domainRepo:   domainRepo,
		personRepo:   personRepo,
		accountables: accountables,
		ledger:       ledger,
		generator:    generator,
		transactor:   transactor,
		orphans:      orphanReporter{journal: journal, log: log},
		bankName:     bankName,
		log:          log,
	}
}

// EmitBankSlip issues a remote bank slip, records it as issued and then
// renders its digitable line. A rendering failure leaves the recorded boleto
// in place; it is returned together with a BOLETO_001 error and can be
// repaired with RegenerateLines.
func (s *BoletoServiceImpl) EmitBankSlip(ctx context.Context, req ports.EmitBoletoRequest) (*domain.Boleto, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.ExpiresAt.After(time.Now()) {
		return nil, apperror.Validation("expires_at must be in the future")
	}

	company, accountable, err := s.resolveTenant(ctx, req.DomainID)
	if err != nil {
		return nil, err
	}
	issuer, err := s.issuerFor(company, accountable)
	if err != nil {
		return nil, err
	}

	recipient := accountable
	if req.RecipientID != nil && *req.RecipientID != accountable.ID {
		recipient, err = s.personRepo.GetByID(ctx, *req.RecipientID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get recipient: %w", err))
		}
		if recipient == nil {
			return nil, apperror.ErrNotFound("recipient")
		}
	}
	wallet, err := remoteWallet(recipient)
	if err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	remoteID, err := s.ledger.IssueBankSlip(ctx, correlationID, req.Amount, req.ExpiresAt)
	if err != nil {
		s.log.Warn().Err(err).
			Str("correlation_id", correlationID).
			Str("domain_id", req.DomainID.String()).
			Str("amount", req.Amount.String()).
			Msg("bank slip issuance rejected")
		return nil, s.orphans.rejected(ctx, domain.OrphanedMutation{
			CorrelationID:   correlationID,
			Operation:       "issue_bank_slip",
			RecipientWallet: wallet.RemoteID,
			Amount:          req.Amount,
		}, "bank slip issuance", err)
	}

	boleto := domain.NewBoleto(company.ID, wallet, req.Amount, req.ExpiresAt, remoteID)
	if err := s.create(ctx, boleto); err != nil {
		s.orphans.report(ctx, domain.OrphanedMutation{
			CorrelationID:   correlationID,
			Operation:       "issue_bank_slip",
			RemoteID:        remoteID,
			RecipientWallet: wallet.RemoteID,
			Amount:          req.Amount,
		}, err)
		return nil, apperror.ErrPersistence(err)
	}

	s.log.Info().
		Str("boleto_id", boleto.ID.String()).
		Str("remote_id", remoteID).
		Int64("sequence", boleto.Sequence).
		Str("recipient_wallet", wallet.RemoteID).
		Str("amount", req.Amount.String()).
		Msg("bank slip issued")

	if err := s.renderLines(ctx, issuer, boleto); err != nil {
		return boleto, err
	}
	return boleto, nil
}

// RegisterBankSlip registers an issued boleto with the remote ledger.
// Calling it twice calls the remote side twice.
func (s *BoletoServiceImpl) RegisterBankSlip(ctx context.Context, id uuid.UUID) (*domain.Boleto, error) {
	boleto, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slipID, err := remoteSlip(boleto)
	if err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	if _, err := s.ledger.RegisterBankSlip(ctx, correlationID, slipID); err != nil {
		s.log.Warn().Err(err).
			Str("correlation_id", correlationID).
			Str("boleto_id", id.String()).
			Msg("bank slip registration rejected")
		return nil, s.orphans.rejected(ctx, domain.OrphanedMutation{
			CorrelationID: correlationID,
			Operation:     "register_bank_slip",
			RemoteID:      slipID,
			Amount:        boleto.Amount,
		}, "bank slip registration", err)
	}

	if err := s.boletoRepo.MarkRegistered(ctx, id); err != nil {
		s.orphans.report(ctx, domain.OrphanedMutation{
			CorrelationID: correlationID,
			Operation:     "register_bank_slip",
			RemoteID:      slipID,
			Amount:        boleto.Amount,
		}, err)
		return nil, apperror.ErrPersistence(err)
	}

	boleto.Registered = true
	boleto.UpdatedAt = time.Now().UTC()
	s.log.Info().Str("boleto_id", id.String()).Str("remote_id", slipID).Msg("bank slip registered")
	return boleto, nil
}

// RegenerateLines renders the digitable line of a boleto that was issued
// without one.
func (s *BoletoServiceImpl) RegenerateLines(ctx context.Context, id uuid.UUID) (*domain.Boleto, error) {
	boleto, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if boleto.HasLines() {
		return nil, apperror.ErrInvalidOperand("boleto already has a digitable line")
	}

	company, accountable, err := s.resolveTenant(ctx, boleto.DomainID)
	if err != nil {
		return nil, err
	}
	issuer, err := s.issuerFor(company, accountable)
	if err != nil {
		return nil, err
	}

	if err := s.renderLines(ctx, issuer, boleto); err != nil {
		return nil, err
	}
	return boleto, nil
}

// LookupRemote reads the remote ledger's view of the boleto.
func (s *BoletoServiceImpl) LookupRemote(ctx context.Context, id uuid.UUID) (*domain.RemoteBankSlip, error) {
	boleto, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slipID, err := remoteSlip(boleto)
	if err != nil {
		return nil, err
	}

	slip, err := s.ledger.FindBankSlip(ctx, slipID)
	if err != nil {
		return nil, apperror.ErrRemoteLedger("bank slip lookup", err)
	}
	if slip == nil {
		return nil, apperror.ErrNotFound("remote bank slip")
	}
	return slip, nil
}

func (s *BoletoServiceImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Boleto, error) {
	boleto, err := s.boletoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get boleto: %w", err))
	}
	if boleto == nil {
		return nil, apperror.ErrNotFound("boleto")
	}
	return boleto, nil
}

// FindByCode matches the digitable line or the barcode.
func (s *BoletoServiceImpl) FindByCode(ctx context.Context, code string) (*domain.Boleto, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.Validation("code is required")
	}
	boleto, err := s.boletoRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get boleto by code: %w", err))
	}
	if boleto == nil {
		return nil, apperror.ErrNotFound("boleto")
	}
	return boleto, nil
}

func (s *BoletoServiceImpl) FindByStatus(ctx context.Context, status domain.BoletoStatus, page domain.Page) ([]domain.Boleto, int64, error) {
	boletos, total, err := s.boletoRepo.ListByStatus(ctx, status, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list boletos by status: %w", err))
	}
	return boletos, total, nil
}

func (s *BoletoServiceImpl) FindByRecipient(ctx context.Context, walletID uuid.UUID, page domain.Page) ([]domain.Boleto, int64, error) {
	boletos, total, err := s.boletoRepo.ListByRecipient(ctx, walletID, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list boletos by recipient: %w", err))
	}
	return boletos, total, nil
}

func (s *BoletoServiceImpl) FindByIssuingPeriod(ctx context.Context, period domain.Period, page domain.Page) ([]domain.Boleto, int64, error) {
	if period.After != nil && period.Before != nil && period.After.After(*period.Before) {
		return nil, 0, apperror.Validation("after must not be later than before")
	}
	boletos, total, err := s.boletoRepo.ListByIssuingPeriod(ctx, period, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list boletos by period: %w", err))
	}
	return boletos, total, nil
}

func (s *BoletoServiceImpl) ListMissingLines(ctx context.Context, page domain.Page) ([]domain.Boleto, int64, error) {
	boletos, total, err := s.boletoRepo.ListMissingLines(ctx, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list boletos missing lines: %w", err))
	}
	return boletos, total, nil
}

func (s *BoletoServiceImpl) resolveTenant(ctx context.Context, domainID uuid.UUID) (*domain.Company, *domain.Person, error) {
	company, err := s.domainRepo.GetByID(ctx, domainID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("get domain: %w", err))
	}
	if company == nil {
		return nil, nil, apperror.ErrNotFound("domain")
	}
	accountable, err := s.accountables.FindAccountable(ctx, domainID)
	if err != nil {
		return nil, nil, err
	}
	return company, accountable, nil
}

// issuerFor builds the issuer profile from the accountable's default bank
// account, which must carry a collection wallet.
func (s *BoletoServiceImpl) issuerFor(company *domain.Company, accountable *domain.Person) (domain.BoletoIssuer, error) {
	account := accountable.DefaultBankAccount()
	if !account.CanIssueBoletos() {
		return domain.BoletoIssuer{}, apperror.ErrInvalidOperand(
			"accountable has no default bank account with a collection wallet")
	}
	return domain.BoletoIssuer{
		CompanyName:      company.Name,
		EIN:              company.EIN,
		Bank:             s.bankName,
		Branch:           account.Branch,
		BranchDigit:      account.BranchDigit,
		AccountNumber:    account.Number,
		CollectionWallet: *account.CollectionWallet,
	}, nil
}

func (s *BoletoServiceImpl) renderLines(ctx context.Context, issuer domain.BoletoIssuer, boleto *domain.Boleto) error {
	lines, err := s.generator.Generate(ctx, issuer, boleto)
	if err != nil {
		s.log.Warn().Err(err).Str("boleto_id", boleto.ID.String()).Msg("digitable line generation failed")
		return apperror.ErrBoletoGeneration(err)
	}

	line := domain.DigitsOnly(lines.DigitableLine)
	if err := s.boletoRepo.UpdateLines(ctx, boleto.ID, line, lines.Barcode); err != nil {
		s.log.Error().Err(err).Str("boleto_id", boleto.ID.String()).Msg("failed to store digitable line")
		return apperror.ErrBoletoGeneration(fmt.Errorf("store lines: %w", err))
	}
	boleto.SetLines(line, lines.Barcode)
	return nil
}

func (s *BoletoServiceImpl) create(ctx context.Context, boleto *domain.Boleto) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.boletoRepo.Create(ctx, dbTx, boleto); err != nil {
		return fmt.Errorf("create boleto: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func remoteSlip(boleto *domain.Boleto) (string, error) {
	if boleto.ExternalID == nil || *boleto.ExternalID == "" {
		return "", apperror.ErrInvalidOperand("boleto has no remote identifier")
	}
	return *boleto.ExternalID, nil
}
