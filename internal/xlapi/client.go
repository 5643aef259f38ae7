// Package xlapi is the HTTP transport for the carrier subscription API.
// Responses come back as loosely-shaped envelopes; quota and package
// payloads are surfaced as raw documents for the resolver layer rather than
// rigid structs, because their schema differs across accounts and endpoint
// versions.
package xlapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myxl/internal/session"
)

// StatusSuccess is the upstream's success envelope status.
const StatusSuccess = "SUCCESS"

// Client talks to the upstream API. All calls are synchronous and
// request-at-a-time; the client holds no per-call state.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client for the given endpoint.
func New(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CloseIdleConnections releases kept-alive connections.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// envelope is the generic response wrapper every endpoint uses.
type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// post sends a signed JSON request and decodes the response envelope.
// HTTP-level and decode failures are transport errors; an unsuccessful
// envelope status is not, so callers can decide per endpoint.
func (c *Client) post(ctx context.Context, sess *session.Session, path string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Signature", c.sign(ts, path))
	if sess != nil && sess.Tokens.IDToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Tokens.IDToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", path, err)
	}

	c.logger.Debug("api call",
		zap.String("path", path),
		zap.Int("http_status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s: upstream returned HTTP %d", path, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", path, err)
	}
	return &env, nil
}

// sign produces the request signature: hex HMAC-SHA256 over
// "<timestamp>.<path>" keyed by the API key.
func (c *Client) sign(ts, path string) string {
	mac := hmac.New(sha256.New, []byte(c.apiKey))
	mac.Write([]byte(ts + "." + path))
	return hex.EncodeToString(mac.Sum(nil))
}
