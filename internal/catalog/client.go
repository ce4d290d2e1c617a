package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CatalogStore defines the remote operations the app relies on.
// This interface is implemented by *Client and can be used for testing.
type CatalogStore interface {
	FetchMenu(ctx context.Context) ([]Category, error)
	ReplaceCategory(ctx context.Context, category Category) (*Category, error)
	Login(ctx context.Context, email, password string) (User, error)
}

// Ensure Client implements CatalogStore at compile time.
var _ CatalogStore = (*Client)(nil)

// ErrEmptyResponse is returned when the store answers 2xx with no usable body.
var ErrEmptyResponse = errors.New("empty response body")

// StatusError reports a non-2xx answer from the store.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:7490"
	defaultUserAgent = "orchid/0.1"
	defaultTimeout   = 10 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient swaps the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the given API base address.
func NewClient(apiBase string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved API base.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchMenu retrieves every category with its items.
func (c *Client) FetchMenu(ctx context.Context) ([]Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "menu", nil, &raw); err != nil {
		return nil, err
	}
	// A null body is a failed fetch, not an empty catalog.
	if isFalsy(raw) {
		return nil, ErrEmptyResponse
	}
	var payload []Category
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// ReplaceCategory submits the full item list of one category.
func (c *Client) ReplaceCategory(ctx context.Context, category Category) (*Category, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	id := strings.TrimSpace(category.ID)
	if id == "" {
		return nil, fmt.Errorf("category id required")
	}
	if category.Items == nil {
		category.Items = []Item{}
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "menu/"+id, category, &raw); err != nil {
		return nil, err
	}
	if isFalsy(raw) {
		return nil, ErrEmptyResponse
	}
	var updated Category
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &updated, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and returns the user payload.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	if c == nil {
		return User{}, fmt.Errorf("client is nil")
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "login", loginRequest{Email: email, Password: password}, &raw); err != nil {
		return User{}, err
	}
	user := User{Raw: raw}
	if user.Empty() {
		return User{}, ErrEmptyResponse
	}
	return user, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request %s: %w", requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Method: method, Path: "/" + path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", apiBase)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
