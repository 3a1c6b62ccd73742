// Package client is a Go consumer of the portfolio API. Reads go through a
// TTL query cache with in-flight deduplication; mutations invalidate the
// affected resource so the next read refetches.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTTL     = 5 * time.Minute
	cleanupEvery   = 10 * time.Minute
	defaultTimeout = 30 * time.Second
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client talks to the portfolio backend.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string

	queries *cache.Cache
	group   singleflight.Group
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token used for protected routes
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		queries:    cache.New(defaultTTL, cleanupEvery),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer token, e.g. after login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// queryKey renders a stable cache key for one read: path plus sorted params.
func queryKey(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(path)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params.Get(k))
	}
	return b.String()
}

// Get fetches path and decodes the envelope's data into out. Responses are
// cached for the TTL; concurrent fetches of the same key share one request.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	key := queryKey(path, params)
	if raw, found := c.queries.Get(key); found {
		return json.Unmarshal(raw.([]byte), out)
	}

	raw, err, _ := c.group.Do(key, func() (any, error) {
		data, err := c.do(ctx, http.MethodGet, path, params, nil)
		if err != nil {
			return nil, err
		}
		// Cache and return plain bytes; callers type-assert what comes out
		// of the cache and the flight group.
		buf := []byte(data)
		c.queries.Set(key, buf, cache.DefaultExpiration)
		return buf, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw.([]byte), out)
}

// GetPage fetches a list route and returns the window the server reported
// alongside the decoded rows.
func (c *Client) GetPage(ctx context.Context, path string, params url.Values, out any) (total, limit, offset int, err error) {
	type page struct {
		Data   json.RawMessage `json:"data"`
		Total  int             `json:"total"`
		Limit  int             `json:"limit"`
		Offset int             `json:"offset"`
	}
	var p page
	key := queryKey(path, params) + "|page"
	if raw, found := c.queries.Get(key); found {
		if err = json.Unmarshal(raw.([]byte), &p); err != nil {
			return 0, 0, 0, err
		}
	} else {
		var raw any
		raw, err, _ = c.group.Do(key, func() (any, error) {
			body, err := c.doRaw(ctx, http.MethodGet, path, params, nil)
			if err != nil {
				return nil, err
			}
			c.queries.Set(key, body, cache.DefaultExpiration)
			return body, nil
		})
		if err != nil {
			return 0, 0, 0, err
		}
		if err = json.Unmarshal(raw.([]byte), &p); err != nil {
			return 0, 0, 0, err
		}
	}
	if out != nil && p.Data != nil {
		if err = json.Unmarshal(p.Data, out); err != nil {
			return 0, 0, 0, err
		}
	}
	return p.Total, p.Limit, p.Offset, nil
}

// Post sends a mutation and invalidates the resource's cached reads.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	c.Invalidate(collectionOf(path))
	if out == nil || data == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Patch sends a partial update and invalidates the resource's cached reads.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	c.Invalidate(collectionOf(path))
	if out == nil || data == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Delete removes a resource and invalidates its cached reads.
func (c *Client) Delete(ctx context.Context, path string) error {
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.Invalidate(collectionOf(path))
	return nil
}

// Invalidate drops every cached read under the given path prefix.
func (c *Client) Invalidate(prefix string) {
	for key := range c.queries.Items() {
		if strings.HasPrefix(key, prefix) {
			c.queries.Delete(key)
		}
	}
}

// collectionOf maps a mutation path to the prefix its reads are cached under.
// Trailing ID segments (prefixed identifiers) are stripped so deleting
// /skills/skl_x invalidates the /skills listing too.
func collectionOf(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i > 0 {
		last := trimmed[i+1:]
		if strings.Contains(last, "_") {
			return trimmed[:i]
		}
	}
	return trimmed
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) (json.RawMessage, error) {
	raw, err := c.doRaw(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return env.Data, nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env struct {
			Message   string `json:"message"`
			ErrorCode string `json:"error_code"`
		}
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
			apiErr.Code = env.ErrorCode
		}
		return nil, apiErr
	}
	return raw, nil
}
