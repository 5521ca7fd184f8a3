// Package demo orchestrates one run of the HTTP demo: a fixed sequence of
// GET requests against public test APIs, a deterministic forced-retry path,
// an optional injected fault for crash-capture tooling, and a structured
// summary of the whole run.
package demo

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/retracesoftware/retrace-demo-requests/config"
	"github.com/retracesoftware/retrace-demo-requests/httpclient"
	"github.com/retracesoftware/retrace-demo-requests/logger"
	"github.com/retracesoftware/retrace-demo-requests/trace"
)

// userName is intentionally a fixed literal, not the fetched user's name
// field. Downstream capture fixtures expect this exact value.
const userName = "user1"

// Options control a single demo run
type Options struct {
	// TriggerBug injects an unrecoverable fault after the retry sequence
	TriggerBug bool
}

// Runner executes demo runs. Progress lines and the summary block go to out;
// structured request logs go through the logger.
type Runner struct {
	cfg    *config.Config
	log    logger.Logger
	client httpclient.Client
	out    io.Writer
}

// NewRunner creates a Runner with a client configured from cfg
func NewRunner(cfg *config.Config, log logger.Logger, out io.Writer) *Runner {
	client := httpclient.NewBuilder(log).
		WithTimeout(cfg.HTTP.Timeout).
		WithUserAgent(cfg.HTTP.UserAgent).
		Build()

	return &Runner{
		cfg:    cfg,
		log:    log,
		client: client,
		out:    out,
	}
}

// Run executes the full demo sequence: correlation tag, three sequential
// fetches, the forced-retry path, a random roll, optional fault injection,
// and summary assembly. Progress is printed incrementally so partial output
// precedes any crash.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	corr := trace.NewCorrelationID()
	ctx = trace.WithCorrelationID(ctx, corr)
	fmt.Fprintf(r.out, "[demo] correlation_id=%s\n", corr)

	log := r.log.WithFields(map[string]any{"correlation_id": corr})
	start := time.Now()

	var user, post, todo map[string]any
	if err := httpclient.GetJSON(ctx, r.client, r.cfg.API.Base+"/users/1", &user); err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if err := httpclient.GetJSON(ctx, r.client, r.cfg.API.Base+"/posts/1", &post); err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}
	if err := httpclient.GetJSON(ctx, r.client, r.cfg.API.Base+"/todos/1", &todo); err != nil {
		return nil, fmt.Errorf("fetch todo: %w", err)
	}

	postTitle := stringField(post, "title")
	todoTitle := stringField(todo, "title")

	fmt.Fprintf(r.out, "[demo] user: %q\n", userName)
	fmt.Fprintf(r.out, "[demo] post title: %q\n", postTitle)
	fmt.Fprintf(r.out, "[demo] todo title: %q, completed=%v\n", todoTitle, todo["completed"])

	retry, err := ForcedRetry(ctx, r.client, r.cfg.API.Forced503, r.cfg.API.Base+"/todos/2", r.cfg.Retry.Backoff)
	if err != nil {
		return nil, fmt.Errorf("forced retry: %w", err)
	}
	fmt.Fprintf(r.out, "[demo] forced-retry final_status=%d attempts=%d\n", retry.Status, retry.Attempts)
	log.Info().
		Int("final_status", retry.Status).
		Int("attempts", retry.Attempts).
		Msg("forced retry complete")

	roll := rand.Float64()

	if opts.TriggerBug {
		fmt.Fprintln(r.out, "[demo] triggering intentional bug (integer divide by zero)")
		InjectFault()
	}

	elapsed := time.Since(start)

	summary := &Summary{
		CorrelationID: corr,
		UserName:      userName,
		PostTitle:     postTitle,
		TodoTitle:     todoTitle,
		RetryStatus:   retry.Status,
		RetryAttempts: retry.Attempts,
		RandomRoll:    roll,
		ElapsedMS:     float64(elapsed.Microseconds()) / 1000.0,
	}

	fmt.Fprintln(r.out, "[demo] summary:")
	fmt.Fprintln(r.out, summary.Render())

	return summary, nil
}

// stringField reads a string value from a decoded JSON object, tolerating
// missing or non-string values
func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
