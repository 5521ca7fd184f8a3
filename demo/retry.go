package demo

import (
	"context"
	"time"

	"github.com/retracesoftware/retrace-demo-requests/httpclient"
)

// RetryResult reports the outcome of the forced-retry sequence
type RetryResult struct {
	Status   int
	Attempts int
}

// ForcedRetry performs a retry path that is deterministic but real-network:
// the first attempt calls an endpoint guaranteed to return 503, forcing a
// failure; after a backoff sleep scaled by the attempt number, the second
// attempt calls a stable-200 endpoint. If the first attempt unexpectedly
// succeeds, the sequence short-circuits and reports a single attempt.
//
// The failure branch is decided by inspecting the client's typed error, not
// by unwinding. Both HTTP and transport errors on attempt 1 fall through to
// attempt 2; attempt 2 tolerates non-5xx statuses and propagates everything
// else unchanged.
func ForcedRetry(ctx context.Context, client httpclient.Client, forcedURL, successURL string, backoff time.Duration) (RetryResult, error) {
	attempts := 1

	resp, err := client.Get(ctx, &httpclient.Request{URL: forcedURL})
	if err == nil {
		return RetryResult{Status: resp.StatusCode, Attempts: attempts}, nil
	}

	if err := sleep(ctx, backoff*time.Duration(attempts)); err != nil {
		return RetryResult{}, err
	}

	attempts++
	resp, err = client.Get(ctx, &httpclient.Request{URL: successURL})
	if err != nil {
		if status, ok := httpclient.StatusFromError(err); ok && status < 500 {
			return RetryResult{Status: status, Attempts: attempts}, nil
		}
		return RetryResult{}, err
	}
	return RetryResult{Status: resp.StatusCode, Attempts: attempts}, nil
}

// sleep blocks for d or until the context is cancelled
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
