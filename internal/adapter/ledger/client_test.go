package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"banking-core/config"
	"banking-core/internal/core/domain"
	"banking-core/pkg/money"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger serves the token endpoint and delegates everything else.
type fakeLedger struct {
	tokenCalls atomic.Int32
	expiresIn  int64
	handler    http.HandlerFunc
	lastBody   []byte
	lastReq    *http.Request
}

func (f *fakeLedger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == tokenPath {
		f.tokenCalls.Add(1)
		id, secret, ok := r.BasicAuth()
		if !ok || id != "client-id" || secret != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-1", ExpiresIn: f.expiresIn})
		return
	}
	f.lastBody, _ = io.ReadAll(r.Body)
	f.lastReq = r
	f.handler(w, r)
}

func setupClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeLedger) {
	t.Helper()
	fake := &fakeLedger{expiresIn: 3600, handler: handler}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := config.LedgerConfig{
		BaseURL:      srv.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RootAsset:    "BRLD",
		Timeout:      2 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:         1,
			Interval:            time.Minute,
			OpenTimeout:         time.Minute,
			ConsecutiveFailures: 2,
		},
	}
	return NewClient(cfg, zerolog.Nop()), fake
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ==================== Balance Tests ====================

func TestClient_FindWalletBalance(t *testing.T) {
	client, fake := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wallets/w-1", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id": "w-1",
			"balances": []map[string]any{
				{"asset_code": "XLM", "balance": "3.5"},
				{"asset_code": "BRLD", "balance": "150.25"},
			},
		})
	})

	balance, err := client.FindWalletBalance(context.Background(), "w-1", "BRLD")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, "150.25", balance.String())

	missing, err := client.FindWalletBalance(context.Background(), "w-1", "USD")
	require.NoError(t, err)
	assert.Nil(t, missing, "absent asset yields nil balance")

	assert.Equal(t, int32(1), fake.tokenCalls.Load(), "token is cached between calls")
}

func TestClient_TokenRefreshedWhenExpired(t *testing.T) {
	client, fake := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "w-1"})
	})
	now := time.Now()
	client.now = func() time.Time { return now }

	_, err := client.FindWalletBalance(context.Background(), "w-1", "BRLD")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = client.FindWalletBalance(context.Background(), "w-1", "BRLD")
	require.NoError(t, err)

	assert.Equal(t, int32(2), fake.tokenCalls.Load())
}

// ==================== Mutation Tests ====================

func TestClient_Transfer_SignsAndSendsCorrelationID(t *testing.T) {
	client, fake := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"id": "remote-tx-1"})
	})

	id, err := client.Transfer(context.Background(), "corr-1", "w-from", []domain.RemoteCredit{
		{Destination: "w-to", Amount: money.MustParse("50.00"), Asset: "BRLD"},
	})
	require.NoError(t, err)
	assert.Equal(t, "remote-tx-1", id)

	var body struct {
		Source     string          `json:"source"`
		Recipients []creditRequest `json:"recipients"`
	}
	require.NoError(t, json.Unmarshal(fake.lastBody, &body))
	assert.Equal(t, "w-from", body.Source)
	require.Len(t, body.Recipients, 1)
	assert.Equal(t, creditRequest{Destination: "w-to", Amount: "50.00", Asset: "BRLD"}, body.Recipients[0])

	req := fake.lastReq
	assert.Equal(t, "corr-1", req.Header.Get(headerRequestID))
	payload := CanonicalString(http.MethodPost, "/payments", mustParseInt(t, req.Header.Get(headerTimestamp)),
		req.Header.Get(headerNonce), string(fake.lastBody))
	assert.True(t, NewSigner("client-secret").Verify(payload, req.Header.Get(headerSignature)))
}

func TestClient_EmitAsset_SixDecimals(t *testing.T) {
	client, fake := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/BRLD/emit", r.URL.Path)
		writeJSON(w, http.StatusCreated, map[string]string{"id": "emit-1"})
	})

	id, err := client.EmitAsset(context.Background(), "corr-2", "BRLD", money.MustParse("10"), "w-acc")
	require.NoError(t, err)
	assert.Equal(t, "emit-1", id)
	assert.JSONEq(t, `{"amount":"10.000000","destination":"w-acc"}`, string(fake.lastBody))
}

func TestClient_BankSlipLifecycle(t *testing.T) {
	expires := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	client, fake := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments/boleto":
			writeJSON(w, http.StatusOK, map[string]string{"id": "slip-1"})
		case "/payments/boleto/register/slip-1":
			writeJSON(w, http.StatusOK, map[string]string{"id": "slip-1"})
		case "/payments/boleto/slip-1":
			writeJSON(w, http.StatusOK, map[string]any{
				"id": "slip-1", "status": "registered", "amount": "99.90", "registered": true, "expires_at": expires,
			})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "bank slip not found"})
		}
	})
	ctx := context.Background()

	id, err := client.IssueBankSlip(ctx, "corr-3", money.MustParse("99.90"), expires)
	require.NoError(t, err)
	assert.Equal(t, "slip-1", id)
	assert.JSONEq(t, `{"amount":"99.90","expires_at":"2026-11-30T00:00:00Z"}`, string(fake.lastBody))

	_, err = client.RegisterBankSlip(ctx, "corr-4", "slip-1")
	require.NoError(t, err)

	slip, err := client.FindBankSlip(ctx, "slip-1")
	require.NoError(t, err)
	require.NotNil(t, slip)
	assert.True(t, slip.Registered)
	assert.Equal(t, "99.90", slip.Amount.String())

	missing, err := client.FindBankSlip(ctx, "slip-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClient_Withdraw(t *testing.T) {
	client, fake := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/withdraw/bank-9", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"id": "wd-1"})
	})

	id, err := client.Withdraw(context.Background(), "corr-5", "bank-9", money.MustParse("20.00"), "payout")
	require.NoError(t, err)
	assert.Equal(t, "wd-1", id)
	assert.JSONEq(t, `{"amount":"20.00","description":"payout"}`, string(fake.lastBody))
}

func TestClient_Withdraw_BareConfirmation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"JSONString", `"withdraw-confirmed-123"`, "withdraw-confirmed-123"},
		{"PlainText", "wd-ok-77\n", "wd-ok-77"},
		{"ObjectWithoutID", `{"status":"queued"}`, `{"status":"queued"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			})

			conf, err := client.Withdraw(context.Background(), "corr-6", "bank-9", money.MustParse("1"), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, conf)
		})
	}
}

func TestClient_Withdraw_EmptyBodyIsUnreadable(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Withdraw(context.Background(), "corr-6", "bank-9", money.MustParse("1"), "")
	assert.ErrorIs(t, err, domain.ErrUnreadableReply)
}

func TestClient_MutationReplyWithoutID(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"transaction_id": "tx-9"})
	})

	id, err := client.Transfer(context.Background(), "corr-6", "w-from", []domain.RemoteCredit{
		{Destination: "w-to", Amount: money.MustParse("5"), Asset: "BRLD"},
	})
	assert.Empty(t, id)
	require.ErrorIs(t, err, domain.ErrUnreadableReply)
	assert.ErrorContains(t, err, "transaction_id")

	var le *Error
	assert.False(t, errors.As(err, &le), "an accepted mutation is not a ledger rejection")
}

func TestClient_UnreadableRepliesDoNotTripBreaker(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>ok</html>"))
	})

	for i := 0; i < 3; i++ {
		_, err := client.EmitAsset(context.Background(), "corr-6", "BRLD", money.MustParse("1"), "w-1")
		require.ErrorIs(t, err, domain.ErrUnreadableReply)
	}
	assert.Equal(t, gobreaker.StateClosed, client.breaker.State())
}

// ==================== History Tests ====================

func TestClient_FindWalletTransactions(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallets/w-1/transactions", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set(headerDataLength, "42")
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "tx-1", "type": "payment", "status": "executed", "source": "w-1", "created_at": time.Now().UTC()},
		})
	})

	page, err := client.FindWalletTransactions(context.Background(), "w-1", domain.Page{Offset: 10, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(42), page.Total)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, 5, page.Limit)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "tx-1", page.Transactions[0].ID)
}

// ==================== Error Tests ====================

func TestClient_ErrorMapping(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "insufficient balance"})
	})

	_, err := client.Transfer(context.Background(), "corr-7", "w-from", nil)
	var le *Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, http.StatusUnprocessableEntity, le.Status)
	assert.Equal(t, "insufficient balance", le.Message)
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.FindWalletBalance(ctx, "w-1", "BRLD")
		require.Error(t, err)
	}

	_, err := client.FindWalletBalance(ctx, "w-1", "BRLD")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), hits.Load(), "open breaker short-circuits the call")
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
	})

	for i := 0; i < 5; i++ {
		_, err := client.FindWalletBalance(context.Background(), "w-1", "BRLD")
		var le *Error
		require.True(t, errors.As(err, &le))
	}
	assert.Equal(t, gobreaker.StateClosed, client.breaker.State())
}

func TestClient_Timeout(t *testing.T) {
	client, _ := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": "late"})
	})
	client.timeout = 50 * time.Millisecond

	_, err := client.Withdraw(context.Background(), "corr-8", "bank-1", money.MustParse("1"), "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func mustParseInt(t *testing.T, s string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, json.Unmarshal([]byte(s), &n))
	return n
}
