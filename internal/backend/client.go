package backend

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

	"github.com/egabank/egabank_portal/internal/apperrors"
)

// TokenSource provides the bearer token attached to non-auth requests.
// The session store implements it.
type TokenSource interface {
	Token() string
}

// Response is a single backend reply. The bank backend answers some endpoints
// with JSON and others with plain text (deposit/withdraw/transfer and the
// statement endpoint return strings), so both forms are kept available.
type Response struct {
	Status int
	Body   []byte
	JSON   any
}

// IsJSON reports whether the body decoded as JSON.
func (r *Response) IsJSON() bool {
	return r.JSON != nil
}

// Object returns the decoded body as a JSON object, or nil.
func (r *Response) Object() map[string]any {
	obj, _ := r.JSON.(map[string]any)
	return obj
}

// Text returns the body as a plain string. A JSON-encoded string is unquoted
// so callers see the same message either way.
func (r *Response) Text() string {
	if s, ok := r.JSON.(string); ok {
		return s
	}
	return strings.TrimSpace(string(r.Body))
}

// Client is the HTTP gateway to the bank backend. It owns no business logic:
// it attaches the bearer token, decodes responses and translates HTTP failures
// into the portal's error taxonomy.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUnauthorizedHook registers the callback invoked when a non-auth request
// comes back 401/403. The session store hooks its teardown here so an expired
// token forces a logout, mirroring the front-end interceptor behaviour.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a backend gateway rooted at baseURL.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request against the backend.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// isAuthPath reports whether the path targets the auth endpoints. Those are
// sent without a token, and a 401/403 there is left to the caller instead of
// tearing down the session, so the login form can show its own message.
func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/")
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, text/plain")

	authRequest := isAuthPath(path)
	if !authRequest && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request %s %s failed: %w", method, path, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	resp := &Response{Status: httpResp.StatusCode, Body: raw}
	var decoded any
	if len(raw) > 0 && json.Unmarshal(raw, &decoded) == nil {
		resp.JSON = decoded
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return resp, nil
	}

	c.logger.Warn("backend call failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", httpResp.StatusCode),
	)

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden:
		if !authRequest && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return resp, fmt.Errorf("%s %s: %w", method, path, apperrors.ErrUnauthorized)
	case httpResp.StatusCode == http.StatusNotFound:
		return resp, fmt.Errorf("%s %s: %w", method, path, apperrors.ErrNotFound)
	case httpResp.StatusCode >= 400 && httpResp.StatusCode < 500:
		return resp, &apperrors.RejectionError{Msg: resp.Message()}
	default:
		return resp, fmt.Errorf("backend returned status %d for %s %s", httpResp.StatusCode, method, path)
	}
}

// Message extracts a human-readable message from a response, preferring the
// structured {message}/{error} fields over the raw body. Several mutating
// endpoints confirm with a bare string, others with an object.
func (r *Response) Message() string {
	if obj := r.Object(); obj != nil {
		for _, key := range []string{"message", "error", "detail"} {
			if msg, ok := obj[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	if text := r.Text(); text != "" {
		return text
	}
	return "operation refused by the backend"
}
