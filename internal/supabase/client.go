package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/logger"
)

// ErrNotConfigured is returned when the base URL or API key is missing.
var ErrNotConfigured = errors.New("supabase url or anon key not configured")

// Inserter writes a single row into a hosted table and reports success.
type Inserter interface {
	Insert(ctx context.Context, table string, record any) bool
}

// Client posts lead records to the PostgREST insert endpoint of a hosted
// Supabase project. Every call is a single attempt.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *slog.Logger
}

// NewClient builds a client from the read-only Supabase configuration. A nil
// http.Client means http.DefaultClient; no timeout is imposed beyond the
// caller's context.
func NewClient(cfg config.SupabaseConfig, client *http.Client, log *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		apiKey:  strings.TrimSpace(cfg.AnonKey),
		log:     log.With(logger.Scope("supabase")),
	}
}

// Insert posts record as JSON to {baseURL}/rest/v1/{table}. It returns true
// only for a 2xx response; every other outcome is logged and reported as
// false.
func (c *Client) Insert(ctx context.Context, table string, record any) bool {
	c.log.DebugContext(ctx, "submitting record", "table", table)

	if err := c.Do(ctx, table, record); err != nil {
		c.log.ErrorContext(ctx, "insert failed", "table", table, logger.Error(err))
		return false
	}

	c.log.InfoContext(ctx, "insert succeeded", "table", table)
	return true
}

// Do performs the insert and returns the failure cause, if any.
func (c *Client) Do(ctx context.Context, table string, record any) error {
	req, err := c.NewRequest(ctx, table, record)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: extractError(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// NewRequest builds the insert request without sending it.
func (c *Client) NewRequest(ctx context.Context, table string, record any) (*http.Request, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, errors.New("table must not be empty")
	}

	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	endpoint := c.baseURL + "/rest/v1/" + url.PathEscape(table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Prefer", "return=minimal")
	if rid := RequestIDFromContext(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}
	return req, nil
}

// StatusError reports a non-2xx answer from the REST endpoint.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("supabase responded with %d: %s", e.StatusCode, e.Message)
}

// extractError pulls the PostgREST error message out of a response body,
// falling back to the raw body.
func extractError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(data) == 0 {
		return "supabase returned an error"
	}

	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Hint    string `json:"hint"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		if payload.Code != "" {
			return payload.Code + ": " + payload.Message
		}
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}

var _ Inserter = (*Client)(nil)
