package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"banking-core/config"
	"banking-core/internal/core/domain"
	"banking-core/pkg/money"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

const (
	tokenPath        = "/oauth/token"
	tokenExpirySkew  = 30 * time.Second
	maxErrorBodySize = 4 << 10
	emitDecimals     = 6
	headerDataLength = "X-Data-Length"
	headerRequestID  = "X-Request-ID"
)

// Error is a non-2xx answer from the ledger.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger responded %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a ledger 404.
func IsNotFound(err error) bool {
	var le *Error
	return errors.As(err, &le) && le.Status == http.StatusNotFound
}

// Client implements ports.RemoteLedger over the custodial ledger's HTTP API.
// Mutating calls are never retried.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	timeout      time.Duration
	http         *http.Client
	signer       *Signer
	breaker      *gobreaker.CircuitBreaker
	log          zerolog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	now         func() time.Time
}

// NewClient builds a ledger client with its own circuit breaker.
func NewClient(cfg config.LedgerConfig, log zerolog.Logger) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		timeout:      cfg.Timeout,
		http:         &http.Client{},
		signer:       NewSigner(cfg.ClientSecret),
		log:          log.With().Str("component", "ledger").Logger(),
		now:          time.Now,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "remote-ledger",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.ConsecutiveFailures
		},
		// Client errors are answers, not outages.
		IsSuccessful: func(err error) bool {
			if errors.Is(err, domain.ErrUnreadableReply) {
				return true
			}
			var le *Error
			if errors.As(err, &le) {
				return le.Status < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("ledger circuit breaker changed state")
		},
	})

	return c
}

// call describes one ledger request.
type call struct {
	method        string
	path          string
	query         url.Values
	body          any
	correlationID string
}

type mutationResponse struct {
	ID string `json:"id"`
}

type walletResponse struct {
	ID       string `json:"id"`
	Balances []struct {
		Asset   string       `json:"asset_code"`
		Balance money.Amount `json:"balance"`
	} `json:"balances"`
}

type creditRequest struct {
	Destination string `json:"destination"`
	Amount      string `json:"amount"`
	Asset       string `json:"asset,omitempty"`
}

// FindWalletBalance returns nil when the wallet holds none of asset.
func (c *Client) FindWalletBalance(ctx context.Context, walletID, asset string) (*money.Amount, error) {
	var wallet walletResponse
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/wallets/" + url.PathEscape(walletID)}, &wallet); err != nil {
		return nil, err
	}
	for _, b := range wallet.Balances {
		if b.Asset == asset {
			balance := b.Balance
			return &balance, nil
		}
	}
	return nil, nil
}

func (c *Client) Transfer(ctx context.Context, correlationID, source string, credits []domain.RemoteCredit) (string, error) {
	recipients := make([]creditRequest, 0, len(credits))
	for _, cr := range credits {
		recipients = append(recipients, creditRequest{
			Destination: cr.Destination,
			Amount:      cr.Amount.String(),
			Asset:       cr.Asset,
		})
	}
	body := map[string]any{"source": source, "recipients": recipients}
	return c.mutate(ctx, call{method: http.MethodPost, path: "/payments", body: body, correlationID: correlationID})
}

// EmitAsset mints amount of asset into destination. The ledger expects six
// fractional digits on emission.
func (c *Client) EmitAsset(ctx context.Context, correlationID, asset string, amount money.Amount, destination string) (string, error) {
	body := map[string]any{
		"amount":      amount.StringFixed(emitDecimals),
		"destination": destination,
	}
	return c.mutate(ctx, call{
		method:        http.MethodPost,
		path:          "/assets/" + url.PathEscape(asset) + "/emit",
		body:          body,
		correlationID: correlationID,
	})
}

func (c *Client) IssueBankSlip(ctx context.Context, correlationID string, amount money.Amount, expiresAt time.Time) (string, error) {
	body := map[string]any{
		"amount":     amount.String(),
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	}
	return c.mutate(ctx, call{method: http.MethodPost, path: "/payments/boleto", body: body, correlationID: correlationID})
}

func (c *Client) RegisterBankSlip(ctx context.Context, correlationID, slipID string) (string, error) {
	return c.mutate(ctx, call{
		method:        http.MethodPost,
		path:          "/payments/boleto/register/" + url.PathEscape(slipID),
		correlationID: correlationID,
	})
}

// FindBankSlip returns nil when the ledger does not know the slip.
func (c *Client) FindBankSlip(ctx context.Context, slipID string) (*domain.RemoteBankSlip, error) {
	var slip domain.RemoteBankSlip
	_, err := c.do(ctx, call{method: http.MethodGet, path: "/payments/boleto/" + url.PathEscape(slipID)}, &slip)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

// Withdraw returns the ledger's confirmation as sent: an id, a bare string or
// the raw body.
func (c *Client) Withdraw(ctx context.Context, correlationID, bankAccountID string, amount money.Amount, description string) (string, error) {
	cl := call{
		method:        http.MethodPost,
		path:          "/payments/withdraw/" + url.PathEscape(bankAccountID),
		body:          map[string]any{"amount": amount.String(), "description": description},
		correlationID: correlationID,
	}
	var raw []byte
	if _, err := c.do(ctx, cl, &raw); err != nil {
		return "", err
	}
	if confirmation := withdrawalConfirmation(raw); confirmation != "" {
		return confirmation, nil
	}
	return "", unreadable(cl, raw)
}

func withdrawalConfirmation(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var resp mutationResponse
	if err := json.Unmarshal(raw, &resp); err == nil && resp.ID != "" {
		return resp.ID
	}
	return string(raw)
}

// FindWalletTransactions reads one page of history. The total comes from the
// X-Data-Length header when present.
func (c *Client) FindWalletTransactions(ctx context.Context, walletID string, page domain.Page) (*domain.RemoteTransactionPage, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(page.Offset))
	query.Set("limit", strconv.Itoa(page.Limit))

	var txs []domain.RemoteTransaction
	header, err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/wallets/" + url.PathEscape(walletID) + "/transactions",
		query:  query,
	}, &txs)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []domain.RemoteTransaction{}
	}

	total := int64(len(txs))
	if raw := header.Get(headerDataLength); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			total = n
		}
	}
	return &domain.RemoteTransactionPage{
		Transactions: txs,
		Total:        total,
		Offset:       page.Offset,
		Limit:        page.Limit,
	}, nil
}

// mutate sends a mutation and returns the id the ledger assigned to it.
func (c *Client) mutate(ctx context.Context, cl call) (string, error) {
	var raw []byte
	if _, err := c.do(ctx, cl, &raw); err != nil {
		return "", err
	}
	var resp mutationResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.ID == "" {
		return "", unreadable(cl, raw)
	}
	return resp.ID, nil
}

func unreadable(cl call, raw []byte) error {
	if len(raw) > maxErrorBodySize {
		raw = raw[:maxErrorBodySize]
	}
	return fmt.Errorf("ledger %s %s: %w: %q", cl.method, cl.path, domain.ErrUnreadableReply, raw)
}

// do runs one request through the breaker under the per-call timeout and
// decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, cl call, out any) (http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.roundTrip(ctx, cl, out)
	})
	if err != nil {
		c.log.Debug().
			Err(err).
			Str("method", cl.method).
			Str("path", cl.path).
			Str("correlation_id", cl.correlationID).
			Msg("ledger call failed")
		return nil, fmt.Errorf("ledger %s %s: %w", cl.method, cl.path, err)
	}
	return res.(http.Header), nil
}

func (c *Client) roundTrip(ctx context.Context, cl call, out any) (http.Header, error) {
	var body []byte
	if cl.body != nil {
		encoded, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}
		body = encoded
	}

	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.correlationID != "" {
		req.Header.Set(headerRequestID, cl.correlationID)
	}
	c.signer.SignRequest(req, body)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readError(resp)
	}

	if raw, ok := out.(*[]byte); ok {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableReply, err)
		}
		*raw = body
		return resp.Header, nil
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.Header, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accessToken returns the cached client-credentials token, fetching a new
// one when it is missing or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readError(resp)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decoding token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("token response carried no access_token")
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpirySkew)
	c.log.Debug().Time("expires_at", c.tokenExpiry).Msg("ledger token refreshed")
	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func readError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var payload struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
