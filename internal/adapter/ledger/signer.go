package ledger

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	headerSignature = "X-Request-Signature"
	headerTimestamp = "X-Request-Timestamp"
	headerNonce     = "X-Request-Nonce"
)

// Signer signs outgoing ledger requests with HMAC-SHA256 over the client secret.
type Signer struct {
	secret string
	now    func() time.Time
	nonce  func() string
}

// NewSigner creates a Signer keyed by the OAuth client secret.
func NewSigner(secret string) *Signer {
	return &Signer{
		secret: secret,
		now:    time.Now,
		nonce:  func() string { return uuid.NewString() },
	}
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func (s *Signer) Sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (s *Signer) Verify(payload, signature string) bool {
	return hmac.Equal([]byte(s.Sign(payload)), []byte(signature))
}

// CanonicalString builds METHOD|PATH|TIMESTAMP|NONCE|BODY.
func CanonicalString(method, path string, timestamp int64, nonce, body string) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s", method, path, timestamp, nonce, body)
}

// SignRequest sets the signature headers on req. body must be the exact
// bytes that will be sent.
func (s *Signer) SignRequest(req *http.Request, body []byte) {
	ts := s.now().Unix()
	nonce := s.nonce()
	payload := CanonicalString(req.Method, req.URL.Path, ts, nonce, string(body))

	req.Header.Set(headerTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(headerNonce, nonce)
	req.Header.Set(headerSignature, s.Sign(payload))
}
