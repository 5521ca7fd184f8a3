package httpclient

import (
	"context"
	nethttp "net/http"
	"time"
)

const (
	// DefaultTimeout is the default per-request timeout duration
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies the demo client on every outbound request
	DefaultUserAgent = "retrace-http-demo/1.0"
)

// Client defines the REST client interface for making HTTP requests
type Client interface {
	Get(ctx context.Context, req *Request) (*Response, error)
	Do(ctx context.Context, method string, req *Request) (*Response, error)
}

// Request represents an HTTP request with all necessary data
type Request struct {
	URL     string
	Headers map[string]string
}

// Response represents an HTTP response with tracking information
type Response struct {
	StatusCode int
	Body       []byte
	Headers    nethttp.Header
	Stats      Stats
}

// Stats contains request execution statistics
type Stats struct {
	ElapsedTime time.Duration
	CallCount   int64
}

// Config holds the REST client configuration
type Config struct {
	Timeout        time.Duration
	DefaultHeaders map[string]string
}
