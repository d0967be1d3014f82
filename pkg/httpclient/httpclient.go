package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client         *resty.Client
	defaultHeaders map[string]string
}

// RestyOption customizes a RestyClient at construction time.
type RestyOption func(*RestyClient)

// WithDefaultHeaders sets headers applied to every request. Per-request
// headers take precedence on key collisions.
func WithDefaultHeaders(headers map[string]string) RestyOption {
	return func(r *RestyClient) {
		if len(headers) == 0 {
			return
		}
		r.defaultHeaders = make(map[string]string, len(headers))
		for k, v := range headers {
			r.defaultHeaders[k] = v
		}
	}
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration, opts ...RestyOption) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)

	rc := &RestyClient{client: c}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Get performs an HTTP GET request with the specified context, URL, and headers.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(r.defaultHeaders) > 0 {
		req.SetHeaders(r.defaultHeaders)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
