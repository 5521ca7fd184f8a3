// Package httpclient provides the REST client used for the demo's outbound
// calls. The client performs exactly one network call per invocation; the
// forced-retry sequencer in the demo package owns all retry decisions.
package httpclient

import (
	"context"
	"errors"
	"io"
	"net"
	nethttp "net/http"
	"sync/atomic"
	"time"

	"github.com/retracesoftware/retrace-demo-requests/logger"
	"github.com/retracesoftware/retrace-demo-requests/trace"
)

// client implements the Client interface
type client struct {
	httpClient *nethttp.Client
	logger     logger.Logger
	config     *Config
	callCount  int64
}

// NewClient creates a new REST client with default configuration
func NewClient(log logger.Logger) Client {
	return NewBuilder(log).Build()
}

// Builder provides a fluent interface for configuring the REST client
type Builder struct {
	config *Config
	logger logger.Logger
}

// NewBuilder creates a new client builder
func NewBuilder(log logger.Logger) *Builder {
	return &Builder{
		config: &Config{
			Timeout: DefaultTimeout,
			DefaultHeaders: map[string]string{
				"User-Agent": DefaultUserAgent,
			},
		},
		logger: log,
	}
}

// WithTimeout sets the per-request timeout
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// WithUserAgent overrides the default User-Agent header
func (b *Builder) WithUserAgent(userAgent string) *Builder {
	b.config.DefaultHeaders["User-Agent"] = userAgent
	return b
}

// WithDefaultHeader adds a default header that will be sent with all requests
func (b *Builder) WithDefaultHeader(key, value string) *Builder {
	b.config.DefaultHeaders[key] = value
	return b
}

// WithCorrelationID sets the per-run correlation header on all requests
func (b *Builder) WithCorrelationID(id string) *Builder {
	b.config.DefaultHeaders[trace.HeaderCorrelationID] = id
	return b
}

// Build creates the REST client with the configured options
func (b *Builder) Build() Client {
	return &client{
		httpClient: &nethttp.Client{
			Timeout: b.config.Timeout,
		},
		logger: b.logger,
		config: b.config,
	}
}

// Get performs a GET request
func (c *client) Get(ctx context.Context, req *Request) (*Response, error) {
	return c.Do(ctx, nethttp.MethodGet, req)
}

// Do performs a single HTTP request with the specified method. A non-2xx
// status returns both the response and a typed HTTP error so callers can
// inspect the status without unwrapping.
func (c *client) Do(ctx context.Context, method string, req *Request) (*Response, error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	start := time.Now()
	callCount := atomic.AddInt64(&c.callCount, 1)

	c.logRequest(method, req)

	httpReq, err := c.buildRequest(ctx, method, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.isTimeout(err) {
			return nil, NewTimeoutError("request timeout", c.config.Timeout)
		}
		return nil, NewNetworkError("request execution failed", err)
	}

	resp, err := c.buildResponse(start, callCount, httpResp)
	if err != nil {
		return nil, err
	}

	c.logResponse(resp)

	if !IsSuccessStatus(resp.StatusCode) {
		return resp, NewHTTPError(resp.StatusCode, req.URL, resp.Body)
	}
	return resp, nil
}

// validateRequest validates the request before sending
func (c *client) validateRequest(req *Request) error {
	if req == nil {
		return NewValidationError("request cannot be nil", "request")
	}
	if req.URL == "" {
		return NewValidationError("URL cannot be empty", "url")
	}
	return nil
}

// applyHeaders applies default, correlation, and per-request headers
func (c *client) applyHeaders(ctx context.Context, httpReq *nethttp.Request, req *Request) {
	for key, value := range c.config.DefaultHeaders {
		httpReq.Header.Set(key, value)
	}

	// A correlation ID threaded through the context overrides the default
	if id, ok := trace.IDFromContext(ctx); ok {
		httpReq.Header.Set(trace.HeaderCorrelationID, id)
	}

	// Request-specific headers override everything else
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// buildRequest constructs an *http.Request with headers applied
func (c *client) buildRequest(ctx context.Context, method string, req *Request) (*nethttp.Request, error) {
	httpReq, err := nethttp.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create HTTP request", err)
	}

	c.applyHeaders(ctx, httpReq, req)
	return httpReq, nil
}

// buildResponse reads the body and builds a Response
func (c *client) buildResponse(start time.Time, callCount int64, httpResp *nethttp.Response) (*Response, error) {
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
		Stats: Stats{
			ElapsedTime: time.Since(start),
			CallCount:   callCount,
		},
	}, nil
}

func (c *client) isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// logRequest logs the outgoing request
func (c *client) logRequest(method string, req *Request) {
	c.logger.Debug().
		Str("direction", "outbound").
		Str("method", method).
		Str("url", req.URL).
		Msg("REST client request")
}

// logResponse logs the incoming response
func (c *client) logResponse(resp *Response) {
	c.logger.Info().
		Str("direction", "inbound").
		Int("status", resp.StatusCode).
		Dur("elapsed", resp.Stats.ElapsedTime).
		Int64("call_count", resp.Stats.CallCount).
		Msg("REST client response")
}
