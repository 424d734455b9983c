package resilience

import (
	"context"
	"sync"
	"time"
)

// QuotaConfig configures the call quotas enforced by a Tracker. A zero or
// negative value leaves that window unbounded.
type QuotaConfig struct {
	// DailyLimit caps calls per rolling 24 hours.
	DailyLimit int
	// RequestsPerSecond caps calls per rolling second.
	RequestsPerSecond int
	// RequestsPerMinute caps calls per rolling minute.
	RequestsPerMinute int
}

// DefaultQuotaConfig returns the FMP free-tier quotas.
func DefaultQuotaConfig() QuotaConfig {
	return QuotaConfig{
		DailyLimit:        250,
		RequestsPerSecond: 5,
		RequestsPerMinute: 300,
	}
}

// Tracker paces calls against overlapping quota windows. One client instance
// owns one Tracker; all concurrent calls issued through that client share it.
// Counters are incremented only on admission, so a caller that gives up while
// waiting leaves no trace of a call that never happened.
type Tracker struct {
	mu      sync.Mutex
	windows []*window
	clock   func() time.Time
}

// window is one rolling quota window. start advances monotonically: crossing
// a window boundary resets it to now with a zero count.
type window struct {
	name   string
	length time.Duration
	limit  int
	start  time.Time
	count  int
}

// NewTracker creates a tracker for the configured windows.
func NewTracker(cfg QuotaConfig) *Tracker {
	t := &Tracker{clock: time.Now}
	if cfg.RequestsPerSecond > 0 {
		t.windows = append(t.windows, &window{name: "second", length: time.Second, limit: cfg.RequestsPerSecond})
	}
	if cfg.RequestsPerMinute > 0 {
		t.windows = append(t.windows, &window{name: "minute", length: time.Minute, limit: cfg.RequestsPerMinute})
	}
	if cfg.DailyLimit > 0 {
		t.windows = append(t.windows, &window{name: "day", length: 24 * time.Hour, limit: cfg.DailyLimit})
	}
	return t
}

// Admit reports whether a call may proceed now. When it may not, wait is the
// time until the most constrained exhausted window resets. The tracker never
// rejects outright; turning an exhausted quota into a hard failure is the
// executor's decision.
func (t *Tracker) Admit() (ok bool, wait time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for _, w := range t.windows {
		w.roll(now)
	}

	for _, w := range t.windows {
		if w.count >= w.limit {
			if d := w.start.Add(w.length).Sub(now); d > wait {
				wait = d
			}
		}
	}
	if wait > 0 {
		return false, wait
	}

	for _, w := range t.windows {
		w.count++
	}
	return true, 0
}

// Wait blocks until the tracker admits a call or ctx is done. The wait is
// bounded by the longest configured window.
func (t *Tracker) Wait(ctx context.Context) error {
	for {
		ok, wait := t.Admit()
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// WindowUsage is a point-in-time snapshot of one quota window.
type WindowUsage struct {
	// Window names the quota window (second, minute, day).
	Window string
	// Used is the number of calls admitted in the current window.
	Used int
	// Limit is the configured cap for the window.
	Limit int
	// Reset is the time remaining until the window rolls over.
	Reset time.Duration
}

// Usage returns a snapshot of every bounded window, for logging and
// introspection. Windows left unbounded by the config do not appear.
func (t *Tracker) Usage() []WindowUsage {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	usage := make([]WindowUsage, 0, len(t.windows))
	for _, w := range t.windows {
		w.roll(now)
		usage = append(usage, WindowUsage{
			Window: w.name,
			Used:   w.count,
			Limit:  w.limit,
			Reset:  w.start.Add(w.length).Sub(now),
		})
	}
	return usage
}

func (w *window) roll(now time.Time) {
	if w.start.IsZero() || now.Sub(w.start) >= w.length {
		w.start = now
		w.count = 0
	}
}

func (t *Tracker) now() time.Time {
	if t.clock != nil {
		return t.clock()
	}
	return time.Now()
}
