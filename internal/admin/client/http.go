package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/common"
	"github.com/dmitrijs2005/qradmin/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBytes = 8 << 20

// TokenSource yields the bearer token for the current session, or "" when
// there is none.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context)

	newRequestID func() string
}

// envelope is the wrapper every endpoint responds with.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// New builds a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api". Calls that exceed timeout fail with
// common.ErrNetwork.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL:      u,
		http:         &http.Client{Timeout: timeout},
		tokens:       tokens,
		logger:       logger,
		newRequestID: uuid.NewString,
	}, nil
}

// OnUnauthorized registers the hook run when an authenticated call receives
// a 401. The session store uses it to drop the credential.
func (c *HTTPClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *HTTPClient) unauthorized(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn(ctx)
	}
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()
	return u.String()
}

// call performs one request and decodes envelope.data into out (if non-nil).
// authenticated calls carry the bearer token and trigger the unauthorized
// hook on 401.
func (c *HTTPClient) call(ctx context.Context, method, path string, query url.Values, body any, authenticated bool, out any) error {
	requestID := c.newRequestID()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, requestID)
	if authenticated && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &APIError{Kind: common.ErrNetwork, Message: err.Error(), RequestID: requestID}
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode,
		"duration", time.Since(started), "request_id", requestID)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &APIError{Kind: common.ErrNetwork, Status: resp.StatusCode, Message: err.Error(), RequestID: requestID}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Message: env.Message, RequestID: requestID}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusUnauthorized && authenticated {
			c.unauthorized(ctx)
		}
		return apiErr
	}

	if decodeErr != nil {
		return &APIError{Kind: common.ErrServer, Status: resp.StatusCode, Message: "malformed response", RequestID: requestID}
	}
	if env.Success != nil && !*env.Success {
		return &APIError{Kind: common.ErrServer, Status: resp.StatusCode, Message: env.Message, RequestID: requestID}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &APIError{Kind: common.ErrServer, Status: resp.StatusCode, Message: "response has no data", RequestID: requestID}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Kind: common.ErrServer, Status: resp.StatusCode, Message: "malformed response: " + err.Error(), RequestID: requestID}
	}
	return nil
}
