package resilience

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/fmpdata/fmpdata-go/errors"
)

func TestPolicy_Defaults(t *testing.T) {
	p := NewPolicy(RetryConfig{})

	if p.MaxAttempts() != 3 {
		t.Errorf("expected 3 attempts, got %d", p.MaxAttempts())
	}
}

func TestPolicy_BackoffSchedule(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 4 * time.Second},
		{2, 4 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 10 * time.Second},
		{6, 10 * time.Second},
	}

	for _, tt := range tests {
		if got := p.Backoff(tt.attempt); got != tt.want {
			t.Errorf("Backoff(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestPolicy_MinDelayClampedToMaxDelay(t *testing.T) {
	p := NewPolicy(RetryConfig{MinDelay: 20 * time.Second, MaxDelay: 10 * time.Second})

	if got := p.Backoff(1); got != 10*time.Second {
		t.Errorf("Backoff(1) = %v, want 10s", got)
	}
}

func TestPolicy_RetriesRetryableError(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	d := p.Decide(1, errors.NewServerError(503, nil))
	if !d.Retry {
		t.Fatal("expected a retry on a 503")
	}
	if d.Wait != 4*time.Second {
		t.Errorf("expected backoff of 4s, got %v", d.Wait)
	}
}

func TestPolicy_StopsAtMaxAttempts(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())
	err := errors.NewServerError(500, nil)

	d := p.Decide(3, err)
	if d.Retry {
		t.Error("expected no retry on the final attempt")
	}
	if !stderrors.Is(d.Err, err) {
		t.Errorf("expected the attempt error back, got %v", d.Err)
	}
}

func TestPolicy_DoesNotRetryFatalErrors(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	tests := []struct {
		name string
		err  error
	}{
		{"auth", errors.NewAuthError(401, nil)},
		{"validation", errors.NewValidationError("bad symbol")},
		{"not found", errors.NewNotFoundError(nil)},
		{"invalid response", errors.NewInvalidResponseError("expected object", nil)},
		{"untyped", stderrors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := p.Decide(1, tt.err)
			if d.Retry {
				t.Errorf("expected no retry for %v", tt.err)
			}
			if d.Err == nil {
				t.Error("expected the error to be surfaced")
			}
		})
	}
}

func TestPolicy_HonorsRetryAfter(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	// Provider says 30s: longer than MaxDelay, still honored as given.
	d := p.Decide(1, errors.NewRateLimitError(nil, 30*time.Second))
	if !d.Retry {
		t.Fatal("expected a retry on a 429")
	}
	if d.Wait != 30*time.Second {
		t.Errorf("expected wait of 30s, got %v", d.Wait)
	}
}

func TestPolicy_NilError(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	d := p.Decide(1, nil)
	if d.Retry || d.Err != nil {
		t.Errorf("expected zero decision for nil error, got %+v", d)
	}
}

func TestPolicy_RetriesTypedTimeout(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	// A per-request timeout wraps context.DeadlineExceeded but is still a
	// transient failure.
	err := errors.NewTimeoutError(fmt.Errorf("Get %q: %w", "https://example.com", context.DeadlineExceeded))
	if d := p.Decide(1, err); !d.Retry {
		t.Error("expected a retry for a request timeout")
	}
}

func TestPolicy_DoesNotRetryContextErrors(t *testing.T) {
	p := NewPolicy(DefaultRetryConfig())

	tests := []struct {
		name string
		err  error
	}{
		{"canceled", context.Canceled},
		{"deadline", context.DeadlineExceeded},
		{"wrapped deadline", fmt.Errorf("call failed: %w", context.DeadlineExceeded)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := p.Decide(1, tt.err); d.Retry {
				t.Errorf("expected no retry for %v", tt.err)
			}
		})
	}
}
