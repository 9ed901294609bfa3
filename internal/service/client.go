package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dshills/veil/internal/dlp"
	"github.com/google/uuid"
)

// redactPath is the content:redact method of the v2beta1 API.
const redactPath = "/v2beta1/content:redact"

// Redactor is the remote service boundary: one request in, one response out.
type Redactor interface {
	RedactContent(ctx context.Context, req *dlp.RedactContentRequest) (*dlp.RedactContentResponse, error)
	Close() error
}

// Client implements Redactor over HTTP JSON.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// New creates a Client for the given endpoint. apiKey may be empty for
// endpoints that do not require authentication.
func New(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient creates a Client that sends requests through hc.
func NewWithHTTPClient(endpoint, apiKey string, hc *http.Client) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client:   hc,
	}
}

// RedactContent submits one redaction request and blocks until the response
// arrives or the transport gives up.
func (c *Client) RedactContent(ctx context.Context, req *dlp.RedactContentRequest) (*dlp.RedactContentResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+redactPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	requestID := uuid.New().String()
	httpReq.Header.Set("X-Request-ID", requestID)

	slog.Debug("service: sending redact request",
		"endpoint", c.endpoint, "request_id", requestID, "items", len(req.Items))

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{StatusCode: httpResp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, newRemoteError(httpResp.StatusCode, respBody)
	}

	var out dlp.RedactContentResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	slog.Debug("service: redact response received",
		"request_id", requestID, "items", len(out.Items))
	return &out, nil
}

// Close releases the connection pool. Call it before the process exits,
// on both success and failure paths.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
