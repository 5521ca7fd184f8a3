package httpclient

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracesoftware/retrace-demo-requests/logger"
	"github.com/retracesoftware/retrace-demo-requests/trace"
)

// createTestLogger creates a quiet logger for tests
func createTestLogger() logger.Logger {
	return logger.New("error", false)
}

func TestNewClient(t *testing.T) {
	client := NewClient(createTestLogger())
	assert.NotNil(t, client)
}

func TestBuilder(t *testing.T) {
	log := createTestLogger()

	t.Run("default configuration", func(t *testing.T) {
		client := NewBuilder(log).Build()
		assert.NotNil(t, client)
	})

	t.Run("with timeout", func(t *testing.T) {
		client := NewBuilder(log).
			WithTimeout(2 * time.Second).
			Build()
		assert.NotNil(t, client)
	})

	t.Run("with correlation ID", func(t *testing.T) {
		client := NewBuilder(log).
			WithCorrelationID("abcd1234").
			Build()
		assert.NotNil(t, client)
	})
}

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := NewClient(createTestLogger())
	resp, err := client.Get(context.Background(), &Request{URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":1}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
	assert.Positive(t, resp.Stats.ElapsedTime)
	assert.EqualValues(t, 1, resp.Stats.CallCount)
}

func TestGetNonSuccessStatusReturnsHTTPError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusServiceUnavailable)
		_, _ = w.Write([]byte("503 Service Unavailable"))
	}))
	defer server.Close()

	client := NewClient(createTestLogger())
	resp, err := client.Get(context.Background(), &Request{URL: server.URL})

	require.Error(t, err)
	assert.True(t, IsErrorType(err, HTTPError))
	assert.True(t, IsHTTPStatusError(err, nethttp.StatusServiceUnavailable))
	assert.Contains(t, err.Error(), server.URL)

	// The response is still returned so callers can inspect it
	require.NotNil(t, resp)
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
}

func TestDefaultHeaders(t *testing.T) {
	var gotUserAgent, gotCorrelation string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotCorrelation = r.Header.Get(trace.HeaderCorrelationID)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewBuilder(createTestLogger()).
		WithCorrelationID("abcd1234").
		Build()

	_, err := client.Get(context.Background(), &Request{URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
	assert.Equal(t, "abcd1234", gotCorrelation)
}

func TestContextCorrelationOverridesDefault(t *testing.T) {
	var gotCorrelation string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotCorrelation = r.Header.Get(trace.HeaderCorrelationID)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewBuilder(createTestLogger()).
		WithCorrelationID("default1").
		Build()

	ctx := trace.WithCorrelationID(context.Background(), "override")
	_, err := client.Get(ctx, &Request{URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, "override", gotCorrelation)
}

func TestRequestHeadersOverrideDefaults(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewClient(createTestLogger())
	_, err := client.Get(context.Background(), &Request{
		URL:     server.URL,
		Headers: map[string]string{"User-Agent": "custom-agent"},
	})

	require.NoError(t, err)
	assert.Equal(t, "custom-agent", gotUserAgent)
}

func TestValidation(t *testing.T) {
	client := NewClient(createTestLogger())

	t.Run("nil request", func(t *testing.T) {
		resp, err := client.Get(context.Background(), nil)
		assert.Nil(t, resp)
		assert.True(t, IsErrorType(err, ValidationError))
	})

	t.Run("empty URL", func(t *testing.T) {
		resp, err := client.Get(context.Background(), &Request{})
		assert.Nil(t, resp)
		assert.True(t, IsErrorType(err, ValidationError))
	})
}

func TestTransportFailureReturnsNetworkError(t *testing.T) {
	// Closed server port makes the dial fail
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	}))
	url := server.URL
	server.Close()

	client := NewClient(createTestLogger())
	resp, err := client.Get(context.Background(), &Request{URL: url})

	assert.Nil(t, resp)
	assert.True(t, IsErrorType(err, NetworkError))
}

func TestTimeoutReturnsTimeoutError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewBuilder(createTestLogger()).
		WithTimeout(20 * time.Millisecond).
		Build()

	resp, err := client.Get(context.Background(), &Request{URL: server.URL})

	assert.Nil(t, resp)
	assert.True(t, IsErrorType(err, TimeoutError))
}

func TestCallCountIncrements(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewClient(createTestLogger())

	first, err := client.Get(context.Background(), &Request{URL: server.URL})
	require.NoError(t, err)
	second, err := client.Get(context.Background(), &Request{URL: server.URL})
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.Stats.CallCount)
	assert.EqualValues(t, 2, second.Stats.CallCount)
}
