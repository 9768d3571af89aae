package integration

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"banking-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func paginate[T any](items []T, page domain.Page) []T {
	page = page.Normalize()
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[page.Offset:end]...)
}

// --- In-Memory People, Wallets and Domains ---

type inMemoryDirectory struct {
	mu      sync.RWMutex
	people  map[uuid.UUID]domain.Person
	wallets map[uuid.UUID]domain.Wallet
	domains map[uuid.UUID]domain.Company
}

func newInMemoryDirectory() *inMemoryDirectory {
	return &inMemoryDirectory{
		people:  make(map[uuid.UUID]domain.Person),
		wallets: make(map[uuid.UUID]domain.Wallet),
		domains: make(map[uuid.UUID]domain.Company),
	}
}

func (d *inMemoryDirectory) addPerson(p domain.Person) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.people[p.ID] = p
	if p.Wallet != nil {
		d.wallets[p.Wallet.ID] = *p.Wallet
	}
}

func (d *inMemoryDirectory) addDomain(c domain.Company) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.domains[c.ID] = c
}

type personRepo struct{ *inMemoryDirectory }

func (r personRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.people[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type walletRepo struct{ *inMemoryDirectory }

func (r walletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

type domainRepo struct{ *inMemoryDirectory }

func (r domainRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.domains[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments []domain.Payment
	failNext atomic.Bool
}

func (r *inMemoryPaymentRepo) Create(_ context.Context, _ pgx.Tx, p *domain.Payment) error {
	if r.failNext.CompareAndSwap(true, false) {
		return errors.New("connection reset by peer")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, *p)
	return nil
}

func (r *inMemoryPaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentRepo) filter(keep func(domain.Payment) bool, page domain.Page) ([]domain.Payment, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Payment
	for _, p := range r.payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	return paginate(out, page), int64(len(out)), nil
}

func (r *inMemoryPaymentRepo) ListByStatus(_ context.Context, status domain.PaymentStatus, page domain.Page) ([]domain.Payment, int64, error) {
	return r.filter(func(p domain.Payment) bool { return p.Status == status }, page)
}

func (r *inMemoryPaymentRepo) ListByType(_ context.Context, t domain.PaymentType, page domain.Page) ([]domain.Payment, int64, error) {
	return r.filter(func(p domain.Payment) bool { return p.Type == t }, page)
}

func (r *inMemoryPaymentRepo) ListByWalletPeriod(_ context.Context, walletID uuid.UUID, period domain.Period, page domain.Page) ([]domain.Payment, int64, error) {
	return r.filter(func(p domain.Payment) bool {
		return p.Involves(walletID) && period.Contains(p.CreatedAt)
	}, page)
}

func (r *inMemoryPaymentRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}

// --- In-Memory Boleto Repo ---

type inMemoryBoletoRepo struct {
	mu      sync.RWMutex
	seq     int64
	boletos []domain.Boleto
}

func (r *inMemoryBoletoRepo) Create(_ context.Context, _ pgx.Tx, b *domain.Boleto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.Sequence = r.seq
	r.boletos = append(r.boletos, *b)
	return nil
}

func (r *inMemoryBoletoRepo) update(id uuid.UUID, fn func(*domain.Boleto)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.boletos {
		if r.boletos[i].ID == id {
			fn(&r.boletos[i])
			return nil
		}
	}
	return errors.New("boleto not found")
}

func (r *inMemoryBoletoRepo) UpdateLines(_ context.Context, id uuid.UUID, line, barcode string) error {
	return r.update(id, func(b *domain.Boleto) { b.SetLines(line, barcode) })
}

func (r *inMemoryBoletoRepo) MarkRegistered(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(b *domain.Boleto) { b.Registered = true })
}

func (r *inMemoryBoletoRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Boleto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.boletos {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBoletoRepo) GetByCode(_ context.Context, code string) (*domain.Boleto, error) {
	code = domain.DigitsOnly(code)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.boletos {
		if b.MatchesCode(code) {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBoletoRepo) filter(keep func(domain.Boleto) bool, page domain.Page) ([]domain.Boleto, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Boleto
	for _, b := range r.boletos {
		if keep(b) {
			out = append(out, b)
		}
	}
	return paginate(out, page), int64(len(out)), nil
}

func (r *inMemoryBoletoRepo) ListByStatus(_ context.Context, status domain.BoletoStatus, page domain.Page) ([]domain.Boleto, int64, error) {
	return r.filter(func(b domain.Boleto) bool { return b.Status == status }, page)
}

func (r *inMemoryBoletoRepo) ListByRecipient(_ context.Context, walletID uuid.UUID, page domain.Page) ([]domain.Boleto, int64, error) {
	return r.filter(func(b domain.Boleto) bool { return b.RecipientWalletID == walletID }, page)
}

func (r *inMemoryBoletoRepo) ListByIssuingPeriod(_ context.Context, period domain.Period, page domain.Page) ([]domain.Boleto, int64, error) {
	return r.filter(func(b domain.Boleto) bool { return period.Contains(b.CreatedAt) }, page)
}

func (r *inMemoryBoletoRepo) ListMissingLines(_ context.Context, page domain.Page) ([]domain.Boleto, int64, error) {
	return r.filter(func(b domain.Boleto) bool { return !b.HasLines() }, page)
}

// --- In-Memory Salary Repo ---

type inMemorySalaryRepo struct {
	mu   sync.RWMutex
	rows []domain.Salary
}

func (r *inMemorySalaryRepo) Create(_ context.Context, _ pgx.Tx, s *domain.Salary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.EmployeeID == s.EmployeeID && row.Current {
			return errors.New("duplicate current salary")
		}
	}
	r.rows = append(r.rows, *s)
	return nil
}

func (r *inMemorySalaryRepo) Close(_ context.Context, _ pgx.Tx, id uuid.UUID, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].Current {
			r.rows[i].Close(until)
			return nil
		}
	}
	return errors.New("current salary not found")
}

func (r *inMemorySalaryRepo) GetCurrent(_ context.Context, employeeID uuid.UUID) (*domain.Salary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.EmployeeID == employeeID && row.Current {
			return &row, nil
		}
	}
	return nil, nil
}

func (r *inMemorySalaryRepo) ListCurrent(_ context.Context, page domain.Page) ([]domain.Salary, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Salary
	for _, row := range r.rows {
		if row.Current {
			out = append(out, row)
		}
	}
	return paginate(out, page), int64(len(out)), nil
}

func (r *inMemorySalaryRepo) ListHistory(_ context.Context, employeeID uuid.UUID, page domain.Page) ([]domain.Salary, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Salary
	for _, row := range r.rows {
		if row.EmployeeID == employeeID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ValidFrom.Before(out[j].ValidFrom) })
	return paginate(out, page), int64(len(out)), nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func (t inMemoryTransactor) Begin(context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(context.Context) error          { return nil }
func (t *noopTx) Rollback(context.Context) error        { return nil }
func (t *noopTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (t *noopTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (t *noopTx) Conn() *pgx.Conn                                         { return nil }
