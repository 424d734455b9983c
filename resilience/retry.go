package resilience

import (
	"context"
	stderrors "errors"
	"math"
	"time"

	"github.com/fmpdata/fmpdata-go/errors"
)

// RetryConfig configures the retry policy.
type RetryConfig struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// BaseDelay seeds the exponential backoff.
	BaseDelay time.Duration
	// MinDelay floors every backoff wait.
	MinDelay time.Duration
	// MaxDelay caps every backoff wait.
	MaxDelay time.Duration
}

// DefaultRetryConfig returns the default retry schedule: three attempts with
// exponential backoff clamped between 4 and 10 seconds.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		MinDelay:    4 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Decision is the policy's verdict on a failed attempt. When Retry is true
// the caller sleeps Wait and tries again; otherwise it returns Err.
type Decision struct {
	Retry bool
	Wait  time.Duration
	Err   error
}

// Policy decides whether failed calls are retried and how long to back off.
// It holds no per-call state, so one policy serves all calls made through a
// client.
type Policy struct {
	cfg RetryConfig
}

// NewPolicy creates a retry policy, applying defaults for unset fields.
func NewPolicy(cfg RetryConfig) *Policy {
	def := DefaultRetryConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = def.MinDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if cfg.MinDelay > cfg.MaxDelay {
		cfg.MinDelay = cfg.MaxDelay
	}
	return &Policy{cfg: cfg}
}

// MaxAttempts returns the configured attempt budget.
func (p *Policy) MaxAttempts() int {
	return p.cfg.MaxAttempts
}

// Decide classifies the error from the given attempt (1-based). Only typed
// errors marked retryable are retried, and only while attempts remain. A
// provider-supplied Retry-After overrides the backoff schedule; it is honored
// as given, never shortened.
//
// A canceled caller is never retried. DeadlineExceeded is deliberately not
// checked here: a typed timeout error wraps it when the per-request timeout
// fires, and that failure is retryable.
func (p *Policy) Decide(attempt int, err error) Decision {
	if err == nil {
		return Decision{}
	}
	if stderrors.Is(err, context.Canceled) {
		return Decision{Err: err}
	}

	var apiErr *errors.Error
	if !stderrors.As(err, &apiErr) || !apiErr.Retryable {
		return Decision{Err: err}
	}
	if attempt >= p.cfg.MaxAttempts {
		return Decision{Err: err}
	}

	if apiErr.RetryAfter > 0 {
		return Decision{Retry: true, Wait: apiErr.RetryAfter}
	}
	return Decision{Retry: true, Wait: p.Backoff(attempt)}
}

// Backoff returns the wait before the attempt following the given one:
// BaseDelay doubled per attempt, clamped to [MinDelay, MaxDelay].
func (p *Policy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := time.Duration(float64(p.cfg.BaseDelay) * math.Pow(2, float64(attempt-1)))
	if d > p.cfg.MaxDelay {
		d = p.cfg.MaxDelay
	}
	if d < p.cfg.MinDelay {
		d = p.cfg.MinDelay
	}
	return d
}
