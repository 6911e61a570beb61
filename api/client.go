// Package api is the single outbound HTTP gateway to the LexLink
// marketplace backend. It attaches bearer credentials to every request,
// performs at most one token refresh when a call comes back 401, and
// exposes one typed method per REST endpoint. No business validation
// happens here; endpoint methods are pass-throughs.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexlink/lexlink-cli/internal/errors"
	"github.com/lexlink/lexlink-cli/token"
)

const defaultTimeout = 30 * time.Second

// Client talks to the marketplace backend.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           token.Repo
	logger           zerolog.Logger
	onSessionExpired func()
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger attaches a logger; request and refresh activity is logged at
// debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSessionExpiredHook registers a callback fired when a refresh attempt
// fails and the stored credentials are cleared. The UI layer uses it to
// send the user back to login.
func WithSessionExpiredHook(hook func()) Option {
	return func(c *Client) {
		c.onSessionExpired = hook
	}
}

// New initializes a Client with required dependencies. Optional
// configuration can be provided via options.
func New(baseURL string, tokens token.Repo, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.Wrapf(errors.ErrBadRequest, "[api.New] baseURL is required")
	}
	if tokens == nil {
		return nil, errors.Wrapf(errors.ErrBadRequest, "[api.New] token repo is required")
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     tokens,
		logger:     zerolog.Nop(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
