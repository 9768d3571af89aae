package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"banking-core/internal/core/domain"
	"banking-core/pkg/money"
)

const rootAsset = "BRLD"

// fakeLedger is a stateful stand-in for the custodial ledger. It never
// rejects an overdraft, so any negative balance means the caller let one
// through.
type fakeLedger struct {
	server *httptest.Server

	mu          sync.Mutex
	seq         int
	balances    map[string]money.Amount
	lowest      map[string]money.Amount
	history     map[string][]domain.RemoteTransaction
	slips       map[string]*domain.RemoteBankSlip
	withdrawals []string
}

func newFakeLedger(t *testing.T) *fakeLedger {
	t.Helper()
	l := &fakeLedger{
		balances: make(map[string]money.Amount),
		lowest:   make(map[string]money.Amount),
		history:  make(map[string][]domain.RemoteTransaction),
		slips:    make(map[string]*domain.RemoteBankSlip),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "test-token", "expires_in": 3600})
	})
	mux.HandleFunc("GET /wallets/{id}", l.wallet)
	mux.HandleFunc("GET /wallets/{id}/transactions", l.transactions)
	mux.HandleFunc("POST /payments", l.transfer)
	mux.HandleFunc("POST /assets/{asset}/emit", l.emit)
	mux.HandleFunc("POST /payments/boleto", l.issueSlip)
	mux.HandleFunc("POST /payments/boleto/register/{id}", l.registerSlip)
	mux.HandleFunc("GET /payments/boleto/{id}", l.getSlip)
	mux.HandleFunc("POST /payments/withdraw/{account}", l.withdraw)

	l.server = httptest.NewServer(mux)
	t.Cleanup(l.server.Close)
	return l
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (l *fakeLedger) nextID(prefix string) string {
	l.seq++
	return fmt.Sprintf("%s-%d", prefix, l.seq)
}

func (l *fakeLedger) credit(wallet string, amount money.Amount) {
	l.balances[wallet] = l.balances[wallet].Add(amount)
	if low, ok := l.lowest[wallet]; !ok || l.balances[wallet].LessThan(low) {
		l.lowest[wallet] = l.balances[wallet]
	}
}

func (l *fakeLedger) fund(wallet string, amount money.Amount) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(wallet, amount)
}

func (l *fakeLedger) balance(wallet string) money.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[wallet]
}

func (l *fakeLedger) lowestBalance(wallet string) money.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lowest[wallet]
}

func (l *fakeLedger) wallet(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := r.PathValue("id")
	balances := []map[string]any{}
	if b, ok := l.balances[id]; ok {
		balances = append(balances, map[string]any{"asset_code": rootAsset, "balance": b})
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "balances": balances})
}

func (l *fakeLedger) transactions(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	txs := l.history[r.PathValue("id")]
	w.Header().Set("X-Data-Length", strconv.Itoa(len(txs)))
	if txs == nil {
		txs = []domain.RemoteTransaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (l *fakeLedger) transfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Source     string `json:"source"`
		Recipients []struct {
			Destination string       `json:"destination"`
			Amount      money.Amount `json:"amount"`
		} `json:"recipients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	tx := domain.RemoteTransaction{
		ID:        l.nextID("tx"),
		Type:      "payment",
		Status:    "success",
		Source:    req.Source,
		CreatedAt: time.Now().UTC(),
	}
	for _, rc := range req.Recipients {
		l.credit(req.Source, money.Zero.Sub(rc.Amount))
		l.credit(rc.Destination, rc.Amount)
		tx.Payments = append(tx.Payments, domain.RemoteCredit{Destination: rc.Destination, Amount: rc.Amount, Asset: rootAsset})
		l.history[rc.Destination] = append(l.history[rc.Destination], tx)
	}
	l.history[req.Source] = append(l.history[req.Source], tx)
	writeJSON(w, http.StatusCreated, map[string]string{"id": tx.ID})
}

func (l *fakeLedger) emit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      money.Amount `json:"amount"`
		Destination string       `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(req.Destination, req.Amount)
	writeJSON(w, http.StatusCreated, map[string]string{"id": l.nextID("emit")})
}

func (l *fakeLedger) issueSlip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount    money.Amount `json:"amount"`
		ExpiresAt time.Time    `json:"expires_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID("slip")
	l.slips[id] = &domain.RemoteBankSlip{ID: id, Status: "open", Amount: req.Amount, ExpiresAt: req.ExpiresAt}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (l *fakeLedger) registerSlip(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slip, ok := l.slips[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "bank slip not found"})
		return
	}
	slip.Registered = true
	writeJSON(w, http.StatusOK, map[string]string{"id": slip.ID})
}

func (l *fakeLedger) getSlip(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slip, ok := l.slips[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "bank slip not found"})
		return
	}
	writeJSON(w, http.StatusOK, slip)
}

func (l *fakeLedger) withdraw(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID("wd")
	l.withdrawals = append(l.withdrawals, r.PathValue("account"))
	// Withdrawals answer with a bare confirmation string.
	writeJSON(w, http.StatusCreated, id)
}

// fakeRenderer answers boleto render requests with lines derived from the
// sequence number. It can be switched to fail.
type fakeRenderer struct {
	server *httptest.Server
	down   atomic.Bool
}

func newFakeRenderer(t *testing.T) *fakeRenderer {
	t.Helper()
	f := &fakeRenderer{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.down.Load() {
			http.Error(w, "renderer unavailable", http.StatusServiceUnavailable)
			return
		}
		var req struct {
			OurNumber string `json:"our_number"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"digitable_line": digitableLineFor(req.OurNumber),
			"barcode":        "0339" + zeroPad(req.OurNumber, 40),
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

// digitableLineFor is the 47 digit line the fake renders, punctuated the
// way banks print it.
func digitableLineFor(ourNumber string) string {
	digits := "03399" + zeroPad(ourNumber, 42)
	return digits[:5] + "." + digits[5:10] + " " + digits[10:15] + "." + digits[15:21] + " " +
		digits[21:26] + "." + digits[26:32] + " " + digits[32:33] + " " + digits[33:]
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
