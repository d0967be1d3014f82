// Package nts is a client for the public NTS Radio web API. It fetches
// live-broadcast and mixtape data and maps the raw JSON payloads into typed
// records. Every failure satisfies errors.Is(err, nts.ErrAPI).
package nts

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/soundfield-hq/nts-radio-client/pkg/httpclient"
)

const (
	// DefaultBaseURL is the public NTS API root.
	DefaultBaseURL = "https://www.nts.live/api/v2"

	// DefaultTimeout bounds a single request when the caller supplies none.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "nts-radio-client/1.0"
)

// Client issues read-only requests against the NTS API. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	http      httpclient.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout bounds each request. Non-positive values fall back to
// DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient injects a transport, replacing the default resty client.
// A transport injected here owns its own timeout handling.
func WithHTTPClient(client httpclient.Client) Option {
	return func(c *Client) { c.http = client }
}

// NewClient builds a Client for the public NTS API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout, httpclient.WithDefaultHeaders(map[string]string{
			"Accept": "application/json",
		}))
	}
	return c
}

// Fetch performs a single GET against the given endpoint (e.g. "live",
// "mixtapes") and returns the raw response body on a 2xx status. No retries
// are attempted.
func (c *Client) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	headers := map[string]string{
		"User-Agent": c.userAgent,
	}

	resp, err := c.http.Get(ctx, url, headers)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	body := resp.Body()
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &ResponseError{StatusCode: code, Body: string(body)}
	}

	return body, nil
}

// LiveData returns the raw live-channels JSON document.
func (c *Client) LiveData(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, "live")
}

// MixtapesData returns the raw mixtapes JSON document.
func (c *Client) MixtapesData(ctx context.Context) ([]byte, error) {
	return c.Fetch(ctx, "mixtapes")
}

// CurrentBroadcasts returns one Broadcast per channel with a current show.
func (c *Client) CurrentBroadcasts(ctx context.Context) ([]Broadcast, error) {
	raw, err := c.LiveData(ctx)
	if err != nil {
		return nil, err
	}
	return MapBroadcasts(raw)
}

// Mixtapes returns the mixtape collection keyed by alias.
func (c *Client) Mixtapes(ctx context.Context) (*MixtapeList, error) {
	raw, err := c.MixtapesData(ctx)
	if err != nil {
		return nil, err
	}
	return MapMixtapes(raw)
}

// CurrentBroadcasts fetches current broadcasts with a one-off client. A
// non-positive timeout means DefaultTimeout.
func CurrentBroadcasts(ctx context.Context, timeout time.Duration) ([]Broadcast, error) {
	return NewClient(WithTimeout(timeout)).CurrentBroadcasts(ctx)
}

// Mixtapes fetches the mixtape collection with a one-off client. A
// non-positive timeout means DefaultTimeout.
func Mixtapes(ctx context.Context, timeout time.Duration) (*MixtapeList, error) {
	return NewClient(WithTimeout(timeout)).Mixtapes(ctx)
}

// classifyTransportError sorts request failures into the error taxonomy:
// deadline expiry becomes a TimeoutError, anything else the base kind.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Err: err}
	}
	return fmt.Errorf("%w: request failed: %v", ErrAPI, err)
}
