package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/internal/core/ports"
	"banking-core/internal/core/ports/mocks"
	"banking-core/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type boletoTestDeps struct {
	svc          *BoletoServiceImpl
	boletoRepo   *mocks.MockBoletoRepository
	domainRepo   *mocks.MockDomainRepository
	personRepo   *mocks.MockPersonRepository
	accountables *mocks.MockAccountableResolver
	ledger       *mocks.MockRemoteLedger
	generator    *mocks.MockBoletoGenerator
	journal      *mocks.MockReconciliationJournal
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupBoletoService(t *testing.T) *boletoTestDeps {
	ctrl := gomock.NewController(t)
	d := &boletoTestDeps{
		boletoRepo:   mocks.NewMockBoletoRepository(ctrl),
		domainRepo:   mocks.NewMockDomainRepository(ctrl),
		personRepo:   mocks.NewMockPersonRepository(ctrl),
		accountables: mocks.NewMockAccountableResolver(ctrl),
		ledger:       mocks.NewMockRemoteLedger(ctrl),
		generator:    mocks.NewMockBoletoGenerator(ctrl),
		journal:      mocks.NewMockReconciliationJournal(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewBoletoService(
		d.boletoRepo, d.domainRepo, d.personRepo, d.accountables,
		d.ledger, d.generator, d.journal, d.transactor, "santander", zerolog.Nop(),
	)
	return d
}

// boletoTenant returns a tenant whose accountable can issue bank slips.
func boletoTenant() (*domain.Company, *domain.Person) {
	company := &domain.Company{ID: uuid.New(), Name: "Acme Ltda", EIN: "11222333000181", Status: domain.CompanyStatusActive}
	accountable := newPerson(domain.PersonTypeAccountable, "w-accountable", &company.ID)
	company.AccountableID = &accountable.ID
	wallet := "101"
	accountable.BankAccounts = []domain.BankAccount{{
		ID: uuid.New(), OwnerID: accountable.ID, Bank: "033",
		Branch: "1234", BranchDigit: "5", Number: "987654", Digit: "1",
		CollectionWallet: &wallet, Default: true,
	}}
	return company, accountable
}

// sequenceAssigner mimics the store filling in the boleto sequence.
func sequenceAssigner(seq int64) func(context.Context, pgx.Tx, *domain.Boleto) error {
	return func(_ context.Context, _ pgx.Tx, b *domain.Boleto) error {
		b.Sequence = seq
		return nil
	}
}

// ==================== EmitBankSlip Tests ====================

func TestBoletoService_EmitBankSlip_Success(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()
	amount := money.MustParse("150.00")
	expiresAt := time.Now().Add(72 * time.Hour)

	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	d.ledger.EXPECT().IssueBankSlip(ctx, gomock.Any(), amount, expiresAt).Return("slip-1", nil)
	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)
	d.boletoRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(sequenceAssigner(7))
	d.generator.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, issuer domain.BoletoIssuer, b *domain.Boleto) (*domain.BoletoLines, error) {
			assert.Equal(t, "Acme Ltda", issuer.CompanyName)
			assert.Equal(t, "101", issuer.CollectionWallet)
			assert.Equal(t, "santander", issuer.Bank)
			assert.Equal(t, "0000000007", b.SequenceNumber())
			return &domain.BoletoLines{DigitableLine: "03399.12345 67890", Barcode: "0339912345"}, nil
		})
	d.boletoRepo.EXPECT().UpdateLines(ctx, gomock.Any(), "033991234567890", "0339912345").Return(nil)

	boleto, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{DomainID: company.ID, ExpiresAt: expiresAt, Amount: amount})
	require.NoError(t, err)
	assert.Equal(t, domain.BoletoStatusIssued, boleto.Status)
	assert.False(t, boleto.Registered)
	assert.Equal(t, accountable.Wallet.ID, boleto.RecipientWalletID)
	assert.Equal(t, company.ID, boleto.DomainID)
	assert.Equal(t, int64(7), boleto.Sequence)
	require.True(t, boleto.HasLines())
	assert.Equal(t, "033991234567890", *boleto.DigitableLine)
}

func TestBoletoService_EmitBankSlip_GenerationFailure_KeepsIssuedBoleto(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()
	expiresAt := time.Now().Add(24 * time.Hour)

	var created *domain.Boleto
	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	d.ledger.EXPECT().IssueBankSlip(ctx, gomock.Any(), gomock.Any(), expiresAt).Return("slip-2", nil)
	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)
	d.boletoRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, b *domain.Boleto) error {
			created = b
			return nil
		})
	d.generator.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("renderer down"))
	// No UpdateLines expected.

	boleto, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: company.ID, ExpiresAt: expiresAt, Amount: money.MustParse("10.00"),
	})
	assertAppError(t, err, "BOLETO_001")
	require.NotNil(t, boleto, "issued boleto must be returned with the error")
	require.NotNil(t, created, "boleto must be persisted before generation")
	assert.Equal(t, domain.BoletoStatusIssued, created.Status)
	assert.False(t, created.Registered)
	assert.False(t, created.HasLines())
	assert.Equal(t, "slip-2", *created.ExternalID)
}

func TestBoletoService_EmitBankSlip_ExplicitRecipient(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()
	customer := newPerson(domain.PersonTypeCustomer, "w-customer", &company.ID)
	expiresAt := time.Now().Add(24 * time.Hour)

	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	d.personRepo.EXPECT().GetByID(ctx, customer.ID).Return(customer, nil)
	d.ledger.EXPECT().IssueBankSlip(ctx, gomock.Any(), gomock.Any(), expiresAt).Return("slip-3", nil)
	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)
	d.boletoRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(sequenceAssigner(8))
	d.generator.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).Return(&domain.BoletoLines{DigitableLine: "1", Barcode: "2"}, nil)
	d.boletoRepo.EXPECT().UpdateLines(ctx, gomock.Any(), "1", "2").Return(nil)

	boleto, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: company.ID, ExpiresAt: expiresAt, Amount: money.MustParse("10.00"), RecipientID: &customer.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, customer.Wallet.ID, boleto.RecipientWalletID)
}

func TestBoletoService_EmitBankSlip_IssuerWithoutCollectionWallet(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()
	accountable.BankAccounts[0].CollectionWallet = nil

	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	// Rejected before any remote call.

	_, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: company.ID, ExpiresAt: time.Now().Add(time.Hour), Amount: money.MustParse("10.00"),
	})
	assertAppError(t, err, "PAY_008")
}

func TestBoletoService_EmitBankSlip_Validation(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	_, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour), Amount: money.Zero,
	})
	assertAppError(t, err, "PAY_002")

	_, err = d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: uuid.New(), ExpiresAt: time.Now().Add(-time.Hour), Amount: money.MustParse("1.00"),
	})
	assertAppError(t, err, "PAY_002")
}

func TestBoletoService_EmitBankSlip_RemoteFailure_WritesNothing(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()

	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	d.ledger.EXPECT().IssueBankSlip(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bad request"))

	boleto, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: company.ID, ExpiresAt: time.Now().Add(time.Hour), Amount: money.MustParse("1.00"),
	})
	assert.Nil(t, boleto)
	assertAppError(t, err, "LEDGER_001")
}

func TestBoletoService_EmitBankSlip_UnreadableReply_IsJournaled(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()

	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	d.ledger.EXPECT().IssueBankSlip(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", domain.ErrUnreadableReply)

	var journaled domain.OrphanedMutation
	d.journal.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.OrphanedMutation) error {
			journaled = m
			return nil
		})

	boleto, err := d.svc.EmitBankSlip(ctx, ports.EmitBoletoRequest{
		DomainID: company.ID, ExpiresAt: time.Now().Add(time.Hour), Amount: money.MustParse("1.00"),
	})
	assert.Nil(t, boleto)
	assertAppError(t, err, "LEDGER_002")
	assert.Equal(t, "issue_bank_slip", journaled.Operation)
	assert.Equal(t, "w-accountable", journaled.RecipientWallet)
}

// ==================== RegisterBankSlip Tests ====================

func TestBoletoService_RegisterBankSlip_UnknownID_NoRemoteCall(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.boletoRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)
	// No RegisterBankSlip expected on the ledger mock.

	boleto, err := d.svc.RegisterBankSlip(ctx, id)
	assert.Nil(t, boleto)
	assertAppError(t, err, "PAY_004")
}

func TestBoletoService_RegisterBankSlip_UsesRemoteID(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.NewBoleto(uuid.New(), domain.WalletRef{LocalID: uuid.New()}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-remote")

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	d.ledger.EXPECT().RegisterBankSlip(ctx, gomock.Any(), "slip-remote").Return("slip-remote", nil)
	d.boletoRepo.EXPECT().MarkRegistered(ctx, stored.ID).Return(nil)

	boleto, err := d.svc.RegisterBankSlip(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, boleto.Registered)
}

func TestBoletoService_RegisterBankSlip_RemoteFailure(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.NewBoleto(uuid.New(), domain.WalletRef{LocalID: uuid.New()}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-remote")

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	d.ledger.EXPECT().RegisterBankSlip(ctx, gomock.Any(), "slip-remote").Return("", errors.New("already registered"))

	_, err := d.svc.RegisterBankSlip(ctx, stored.ID)
	assertAppError(t, err, "LEDGER_001")
	assert.False(t, stored.Registered)
}

func TestBoletoService_RegisterBankSlip_UnreadableReply_IsJournaled(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.NewBoleto(uuid.New(), domain.WalletRef{LocalID: uuid.New()}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-remote")

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	d.ledger.EXPECT().RegisterBankSlip(ctx, gomock.Any(), "slip-remote").Return("", domain.ErrUnreadableReply)
	d.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.RegisterBankSlip(ctx, stored.ID)
	assertAppError(t, err, "LEDGER_002")
	assert.False(t, stored.Registered)
}

func TestBoletoService_RegisterBankSlip_LocalFailureIsJournaled(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.NewBoleto(uuid.New(), domain.WalletRef{LocalID: uuid.New()}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-remote")

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	d.ledger.EXPECT().RegisterBankSlip(ctx, gomock.Any(), "slip-remote").Return("slip-remote", nil)
	d.boletoRepo.EXPECT().MarkRegistered(ctx, stored.ID).Return(errors.New("db down"))
	d.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.RegisterBankSlip(ctx, stored.ID)
	assertAppError(t, err, "SYS_004")
}

// ==================== RegenerateLines Tests ====================

func TestBoletoService_RegenerateLines(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	company, accountable := boletoTenant()
	stored := domain.NewBoleto(company.ID, domain.WalletRef{LocalID: accountable.Wallet.ID}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-4")

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	d.domainRepo.EXPECT().GetByID(ctx, company.ID).Return(company, nil)
	d.accountables.EXPECT().FindAccountable(ctx, company.ID).Return(accountable, nil)
	d.generator.EXPECT().Generate(ctx, gomock.Any(), stored).Return(&domain.BoletoLines{DigitableLine: "9.9", Barcode: "99"}, nil)
	d.boletoRepo.EXPECT().UpdateLines(ctx, stored.ID, "99", "99").Return(nil)

	boleto, err := d.svc.RegenerateLines(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "99", *boleto.DigitableLine)
}

func TestBoletoService_RegenerateLines_AlreadyRendered(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.NewBoleto(uuid.New(), domain.WalletRef{LocalID: uuid.New()}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-5")
	stored.SetLines("123", "456")

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)

	_, err := d.svc.RegenerateLines(ctx, stored.ID)
	assertAppError(t, err, "PAY_008")
}

// ==================== Query Tests ====================

func TestBoletoService_FindByCode(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	match := &domain.Boleto{ID: uuid.New()}
	match.SetLines("12345", "99999")

	d.boletoRepo.EXPECT().GetByCode(ctx, "12345").Return(match, nil)
	d.boletoRepo.EXPECT().GetByCode(ctx, "00000").Return(nil, nil)

	got, err := d.svc.FindByCode(ctx, " 12345 ")
	require.NoError(t, err)
	assert.Equal(t, match.ID, got.ID)

	_, err = d.svc.FindByCode(ctx, "00000")
	assertAppError(t, err, "PAY_004")

	_, err = d.svc.FindByCode(ctx, "  ")
	assertAppError(t, err, "PAY_002")
}

func TestBoletoService_LookupRemote(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stored := domain.NewBoleto(uuid.New(), domain.WalletRef{LocalID: uuid.New()}, money.MustParse("10.00"), time.Now().Add(time.Hour), "slip-6")
	slip := &domain.RemoteBankSlip{ID: "slip-6", Status: "registered", Registered: true}

	d.boletoRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil)
	d.ledger.EXPECT().FindBankSlip(ctx, "slip-6").Return(slip, nil)

	got, err := d.svc.LookupRemote(ctx, stored.ID)
	require.NoError(t, err)
	assert.Same(t, slip, got)
}

func TestBoletoService_FindByIssuingPeriod(t *testing.T) {
	d := setupBoletoService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	after := mustTime(t, "2026-01-01T00:00:00Z")
	period := domain.Period{After: &after}

	d.boletoRepo.EXPECT().ListByIssuingPeriod(ctx, period, domain.Page{Offset: 0, Limit: domain.DefaultPageLimit}).
		Return([]domain.Boleto{{ID: uuid.New()}}, int64(1), nil)

	boletos, total, err := d.svc.FindByIssuingPeriod(ctx, period, domain.Page{})
	require.NoError(t, err)
	assert.Len(t, boletos, 1)
	assert.Equal(t, int64(1), total)
}
