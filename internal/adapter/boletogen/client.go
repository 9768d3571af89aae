package boletogen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"banking-core/config"
	"banking-core/internal/core/domain"

	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// Client implements ports.BoletoGenerator against the external renderer.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a renderer client.
func NewClient(cfg config.BoletoConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.RendererURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With().Str("component", "boletogen").Logger(),
	}
}

type issuerPayload struct {
	Bank             string `json:"bank"`
	CompanyName      string `json:"company_name"`
	EIN              string `json:"ein"`
	Branch           string `json:"branch"`
	AccountNumber    string `json:"account_number"`
	CollectionWallet string `json:"collection_wallet"`
	AssignorCode     string `json:"assignor_code"`
}

type renderRequest struct {
	Issuer         issuerPayload `json:"issuer"`
	IssueDate      string        `json:"issue_date"`
	DueDate        string        `json:"due_date"`
	AmountCents    int64         `json:"amount_cents"`
	OurNumber      string        `json:"our_number"`
	DocumentNumber string        `json:"document_number"`
}

func newRenderRequest(issuer domain.BoletoIssuer, boleto *domain.Boleto) renderRequest {
	seq := boleto.SequenceNumber()
	return renderRequest{
		Issuer: issuerPayload{
			Bank:             issuer.Bank,
			CompanyName:      issuer.CompanyName,
			EIN:              issuer.EIN,
			Branch:           issuer.Branch + issuer.BranchDigit,
			AccountNumber:    issuer.AccountNumber,
			CollectionWallet: issuer.CollectionWallet,
			AssignorCode:     issuer.CollectionWallet + issuer.Branch + issuer.AccountNumber,
		},
		IssueDate:      boleto.CreatedAt.UTC().Format(dateLayout),
		DueDate:        boleto.ExpiresAt.UTC().Format(dateLayout),
		AmountCents:    boleto.Amount.Cents(),
		OurNumber:      seq,
		DocumentNumber: seq,
	}
}

// Generate asks the renderer for the digitable line and barcode of boleto.
func (c *Client) Generate(ctx context.Context, issuer domain.BoletoIssuer, boleto *domain.Boleto) (*domain.BoletoLines, error) {
	body, err := json.Marshal(newRenderRequest(issuer, boleto))
	if err != nil {
		return nil, fmt.Errorf("encoding render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/boletos", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling renderer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("renderer responded %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var lines domain.BoletoLines
	if err := json.NewDecoder(resp.Body).Decode(&lines); err != nil {
		return nil, fmt.Errorf("decoding render response: %w", err)
	}
	if lines.DigitableLine == "" || lines.Barcode == "" {
		return nil, fmt.Errorf("renderer returned empty lines")
	}

	c.log.Debug().
		Str("boleto_id", boleto.ID.String()).
		Str("sequence", boleto.SequenceNumber()).
		Dur("took", time.Since(start)).
		Msg("boleto lines rendered")

	return &lines, nil
}
