package service

import (
	"context"
	"fmt"

	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/pkg/apperror"
	"banking-core/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService.
//
// Every mutation follows the same order: preconditions, remote mutation,
// local write. Nothing is written locally before the remote ledger accepts,
// and nothing is written at all when it rejects.
type PaymentServiceImpl struct {
	paymentRepo  ports.PaymentRepository
	personRepo   ports.PersonRepository
	walletRepo   ports.WalletRepository
	accountables ports.AccountableResolver
	ledger       ports.RemoteLedger
	locker       ports.WalletLocker
	transactor   ports.DBTransactor
	orphans      orphanReporter
	rootAsset    string
	log          zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	paymentRepo ports.PaymentRepository,
	personRepo ports.PersonRepository,
	walletRepo ports.WalletRepository,
	accountables ports.AccountableResolver,
	ledger ports.RemoteLedger,
	locker ports.WalletLocker,
	journal ports.ReconciliationJournal,
	transactor ports.DBTransactor,
	rootAsset string,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		personRepo:   personRepo,
		walletRepo:   walletRepo,
		accountables: accountables,
		ledger:       ledger,
		locker:       locker,
		transactor:   transactor,
		orphans:      orphanReporter{journal: journal, log: log},
		rootAsset:    rootAsset,
		log:          log,
	}
}

// Transfer moves amount between two people's wallets.
func (s *PaymentServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	paymentType := req.Type
	if paymentType == "" {
		paymentType = domain.PaymentTypeTransfer
	}

	sender, err := s.loadPerson(ctx, req.SenderID, "sender")
	if err != nil {
		return nil, err
	}
	recipient, err := s.loadPerson(ctx, req.RecipientID, "recipient")
	if err != nil {
		return nil, err
	}

	return s.transferBetween(ctx, paymentType, sender, recipient, req.Amount)
}

// InternalPayment pays recipient on behalf of its tenant. The tenant's
// accountable is the sender; the type follows the recipient's role.
func (s *PaymentServiceImpl) InternalPayment(ctx context.Context, recipientID uuid.UUID, amount money.Amount) (*domain.Payment, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	recipient, err := s.loadPerson(ctx, recipientID, "recipient")
	if err != nil {
		return nil, err
	}
	if recipient.DomainID == nil {
		return nil, apperror.ErrInvalidOperand("recipient does not belong to a domain")
	}

	accountable, err := s.accountables.FindAccountable(ctx, *recipient.DomainID)
	if err != nil {
		return nil, err
	}

	return s.transferBetween(ctx, recipient.PaymentTypeAsRecipient(), accountable, recipient, amount)
}

// Deposit emits amount of the root asset into the tenant accountable's
// wallet, then forwards it to recipient when one other than the accountable
// is given. The emission is never retried: if the forward transfer fails the
// emission payment is still returned alongside the error.
func (s *PaymentServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) ([]domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	accountable, err := s.accountables.FindAccountable(ctx, req.DomainID)
	if err != nil {
		return nil, err
	}
	accountableWallet, err := remoteWallet(accountable)
	if err != nil {
		return nil, err
	}

	var recipient *domain.Person
	if req.RecipientID != nil && *req.RecipientID != accountable.ID {
		recipient, err = s.loadPerson(ctx, *req.RecipientID, "recipient")
		if err != nil {
			return nil, err
		}
		if _, err := remoteWallet(recipient); err != nil {
			return nil, err
		}
	}

	correlationID := uuid.NewString()
	remoteID, err := s.ledger.EmitAsset(ctx, correlationID, s.rootAsset, req.Amount, accountableWallet.RemoteID)
	if err != nil {
		s.log.Warn().Err(err).
			Str("correlation_id", correlationID).
			Str("domain_id", req.DomainID.String()).
			Str("amount", req.Amount.String()).
			Msg("asset emission rejected")
		return nil, s.orphans.rejected(ctx, domain.OrphanedMutation{
			CorrelationID:   correlationID,
			Operation:       "emit_asset",
			RecipientWallet: accountableWallet.RemoteID,
			Amount:          req.Amount,
		}, "asset emission", err)
	}

	emission := domain.NewPayment(domain.PaymentTypeDeposit, accountableWallet, accountableWallet, req.Amount, remoteID)
	emission.MarkExecuted()
	if err := s.persist(ctx, emission); err != nil {
		s.orphans.report(ctx, domain.OrphanedMutation{
			CorrelationID:   correlationID,
			Operation:       "emit_asset",
			RemoteID:        remoteID,
			RecipientWallet: accountableWallet.RemoteID,
			Amount:          req.Amount,
		}, err)
		return nil, apperror.ErrPersistence(err)
	}

	s.log.Info().
		Str("payment_id", emission.ID.String()).
		Str("remote_id", remoteID).
		Str("domain_id", req.DomainID.String()).
		Str("amount", req.Amount.String()).
		Msg("deposit emitted")

	payments := []domain.Payment{*emission}
	if recipient == nil {
		return payments, nil
	}

	forward, err := s.transferBetween(ctx, domain.PaymentTypeDeposit, accountable, recipient, req.Amount)
	if err != nil {
		s.log.Error().Err(err).
			Str("payment_id", emission.ID.String()).
			Str("recipient_id", recipient.ID.String()).
			Msg("deposit emitted but forward transfer failed")
		return payments, err
	}
	return append(payments, *forward), nil
}

// Withdraw sends amount from the recipient's wallet to one of its bank
// accounts registered on the remote ledger. It returns the remote
// confirmation; no local payment is recorded.
func (s *PaymentServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawRequest) (string, error) {
	if !req.Amount.IsPositive() {
		return "", apperror.ErrInvalidAmount()
	}

	recipient, err := s.loadPerson(ctx, req.RecipientID, "recipient")
	if err != nil {
		return "", err
	}
	wallet, err := remoteWallet(recipient)
	if err != nil {
		return "", err
	}
	account := recipient.BankAccount(req.BankAccountID)
	if account == nil {
		return "", apperror.ErrNotFound("bank account")
	}
	remoteAccount, ok := account.RemoteID()
	if !ok {
		return "", apperror.ErrInvalidOperand("bank account is not registered on the remote ledger")
	}

	release, err := s.lock(ctx, wallet)
	if err != nil {
		return "", err
	}
	defer release()

	if err := s.checkBalance(ctx, wallet, req.Amount); err != nil {
		return "", err
	}

	correlationID := uuid.NewString()
	confirmation, err := s.ledger.Withdraw(ctx, correlationID, remoteAccount, req.Amount, req.Description)
	if err != nil {
		s.log.Warn().Err(err).
			Str("correlation_id", correlationID).
			Str("sender_wallet", wallet.RemoteID).
			Str("amount", req.Amount.String()).
			Msg("withdrawal rejected")
		return "", s.orphans.rejected(ctx, domain.OrphanedMutation{
			CorrelationID: correlationID,
			Operation:     "withdrawal",
			SenderWallet:  wallet.RemoteID,
			Amount:        req.Amount,
		}, "withdrawal", err)
	}

	s.log.Info().
		Str("correlation_id", correlationID).
		Str("remote_id", confirmation).
		Str("sender_wallet", wallet.RemoteID).
		Str("bank_account_id", req.BankAccountID.String()).
		Str("amount", req.Amount.String()).
		Msg("withdrawal accepted")

	return confirmation, nil
}

// GetBlockchainTransactions proxies the wallet's remote history.
func (s *PaymentServiceImpl) GetBlockchainTransactions(ctx context.Context, walletID uuid.UUID, page domain.Page) (*domain.RemoteTransactionPage, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	ref, ok := wallet.Ref()
	if !ok {
		return nil, apperror.ErrNotFound("remote wallet")
	}

	result, err := s.ledger.FindWalletTransactions(ctx, ref.RemoteID, page.Normalize())
	if err != nil {
		return nil, apperror.ErrRemoteLedger("transaction history", err)
	}
	return result, nil
}

func (s *PaymentServiceImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	return payment, nil
}

func (s *PaymentServiceImpl) FindByStatus(ctx context.Context, status domain.PaymentStatus, page domain.Page) ([]domain.Payment, int64, error) {
	payments, total, err := s.paymentRepo.ListByStatus(ctx, status, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payments by status: %w", err))
	}
	return payments, total, nil
}

func (s *PaymentServiceImpl) FindByType(ctx context.Context, paymentType domain.PaymentType, page domain.Page) ([]domain.Payment, int64, error) {
	payments, total, err := s.paymentRepo.ListByType(ctx, paymentType, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payments by type: %w", err))
	}
	return payments, total, nil
}

// FindByPeriod lists payments sent or received by the wallet inside the
// inclusive period, oldest first.
func (s *PaymentServiceImpl) FindByPeriod(ctx context.Context, walletID uuid.UUID, period domain.Period, page domain.Page) ([]domain.Payment, int64, error) {
	if period.After != nil && period.Before != nil && period.After.After(*period.Before) {
		return nil, 0, apperror.Validation("after must not be later than before")
	}
	payments, total, err := s.paymentRepo.ListByWalletPeriod(ctx, walletID, period, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payments by period: %w", err))
	}
	return payments, total, nil
}

// transferBetween runs balance check, remote transfer and local write for
// two already-loaded parties while holding the sender wallet lock.
func (s *PaymentServiceImpl) transferBetween(
	ctx context.Context,
	paymentType domain.PaymentType,
	sender, recipient *domain.Person,
	amount money.Amount,
) (*domain.Payment, error) {
	from, err := remoteWallet(sender)
	if err != nil {
		return nil, err
	}
	to, err := remoteWallet(recipient)
	if err != nil {
		return nil, err
	}

	release, err := s.lock(ctx, from)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.checkBalance(ctx, from, amount); err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	remoteID, err := s.ledger.Transfer(ctx, correlationID, from.RemoteID, []domain.RemoteCredit{{
		Destination: to.RemoteID,
		Amount:      amount,
		Asset:       s.rootAsset,
	}})
	if err != nil {
		s.log.Warn().Err(err).
			Str("correlation_id", correlationID).
			Str("sender_wallet", from.RemoteID).
			Str("recipient_wallet", to.RemoteID).
			Str("amount", amount.String()).
			Msg("transfer rejected")
		return nil, s.orphans.rejected(ctx, domain.OrphanedMutation{
			CorrelationID:   correlationID,
			Operation:       string(paymentType),
			SenderWallet:    from.RemoteID,
			RecipientWallet: to.RemoteID,
			Amount:          amount,
		}, "transfer", err)
	}

	payment := domain.NewPayment(paymentType, from, to, amount, remoteID)
	payment.MarkExecuted()
	if err := s.persist(ctx, payment); err != nil {
		s.orphans.report(ctx, domain.OrphanedMutation{
			CorrelationID:   correlationID,
			Operation:       string(paymentType),
			RemoteID:        remoteID,
			SenderWallet:    from.RemoteID,
			RecipientWallet: to.RemoteID,
			Amount:          amount,
		}, err)
		return nil, apperror.ErrPersistence(err)
	}

	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Str("remote_id", remoteID).
		Str("type", string(paymentType)).
		Str("sender_wallet", from.RemoteID).
		Str("recipient_wallet", to.RemoteID).
		Str("amount", amount.String()).
		Msg("payment executed")

	return payment, nil
}

// checkBalance is advisory; the remote ledger stays the authority on overdraft.
func (s *PaymentServiceImpl) checkBalance(ctx context.Context, wallet domain.WalletRef, amount money.Amount) error {
	balance, err := s.ledger.FindWalletBalance(ctx, wallet.RemoteID, s.rootAsset)
	if err != nil {
		return apperror.ErrRemoteLedger("balance lookup", err)
	}
	if balance == nil || balance.LessThan(amount) {
		return apperror.ErrInsufficientFunds()
	}
	return nil
}

func (s *PaymentServiceImpl) lock(ctx context.Context, wallet domain.WalletRef) (func(), error) {
	release, err := s.locker.Acquire(ctx, wallet.RemoteID)
	if err != nil {
		s.log.Warn().Err(err).Str("sender_wallet", wallet.RemoteID).Msg("wallet lock not acquired")
		return nil, apperror.ErrLockTimeout(err)
	}
	return release, nil
}

func (s *PaymentServiceImpl) persist(ctx context.Context, payment *domain.Payment) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *PaymentServiceImpl) loadPerson(ctx context.Context, id uuid.UUID, role string) (*domain.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get %s: %w", role, err))
	}
	if person == nil {
		return nil, apperror.ErrNotFound(role)
	}
	return person, nil
}

// remoteWallet resolves a person's wallet once, at the boundary.
func remoteWallet(p *domain.Person) (domain.WalletRef, error) {
	ref, ok := p.Wallet.Ref()
	if !ok {
		return domain.WalletRef{}, apperror.ErrNotFound("remote wallet")
	}
	return ref, nil
}
