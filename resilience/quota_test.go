package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock advances tracker time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTracker_AdmitsWithinLimit(t *testing.T) {
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 5})

	for i := 0; i < 5; i++ {
		if ok, _ := tr.Admit(); !ok {
			t.Errorf("request %d should be admitted", i)
		}
	}
}

func TestTracker_BlocksWhenWindowExhausted(t *testing.T) {
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 3})

	// Exhaust the second window
	for i := 0; i < 3; i++ {
		tr.Admit()
	}

	ok, wait := tr.Admit()
	if ok {
		t.Error("request over the limit should be blocked")
	}
	if wait <= 0 || wait > time.Second {
		t.Errorf("expected wait within (0, 1s], got %v", wait)
	}
}

func TestTracker_WindowRollsOver(t *testing.T) {
	clk := newFakeClock()
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 2})
	tr.clock = clk.Now

	tr.Admit()
	tr.Admit()

	if ok, _ := tr.Admit(); ok {
		t.Error("third request in the same second should be blocked")
	}

	clk.Advance(time.Second)

	if ok, _ := tr.Admit(); !ok {
		t.Error("request after rollover should be admitted")
	}
}

func TestTracker_WaitIsLongestExhaustedWindow(t *testing.T) {
	clk := newFakeClock()
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 1, RequestsPerMinute: 1})
	tr.clock = clk.Now

	tr.Admit()

	// Both the second and the minute window are now exhausted; the wait
	// must come from the minute window.
	ok, wait := tr.Admit()
	if ok {
		t.Fatal("request should be blocked")
	}
	if wait != time.Minute {
		t.Errorf("expected wait of 1m, got %v", wait)
	}
}

func TestTracker_DeniedRequestDoesNotCount(t *testing.T) {
	clk := newFakeClock()
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 1, DailyLimit: 100})
	tr.clock = clk.Now

	tr.Admit()
	tr.Admit() // blocked by the second window

	for _, u := range tr.Usage() {
		if u.Window == "day" && u.Used != 1 {
			t.Errorf("expected 1 call counted against the day window, got %d", u.Used)
		}
	}
}

func TestTracker_Wait(t *testing.T) {
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 1})

	if err := tr.Wait(context.Background()); err != nil {
		t.Fatalf("first wait should admit immediately: %v", err)
	}

	start := time.Now()
	err := tr.Wait(context.Background())
	elapsed := time.Since(start)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if elapsed < 500*time.Millisecond || elapsed > 2*time.Second {
		t.Errorf("expected wait around 1s, got %v", elapsed)
	}
}

func TestTracker_WaitRespectsContext(t *testing.T) {
	tr := NewTracker(QuotaConfig{RequestsPerSecond: 1})
	tr.Admit()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := tr.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestTracker_UnboundedConfig(t *testing.T) {
	tr := NewTracker(QuotaConfig{})

	for i := 0; i < 1000; i++ {
		if ok, _ := tr.Admit(); !ok {
			t.Fatalf("request %d should be admitted with no quotas configured", i)
		}
	}

	if usage := tr.Usage(); len(usage) != 0 {
		t.Errorf("expected no usage entries, got %d", len(usage))
	}
}

func TestTracker_Usage(t *testing.T) {
	tr := NewTracker(DefaultQuotaConfig())

	tr.Admit()
	tr.Admit()

	usage := tr.Usage()
	if len(usage) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(usage))
	}

	want := map[string]int{"second": 5, "minute": 300, "day": 250}
	for _, u := range usage {
		limit, found := want[u.Window]
		if !found {
			t.Errorf("unexpected window %q", u.Window)
			continue
		}
		if u.Limit != limit {
			t.Errorf("window %s: expected limit %d, got %d", u.Window, limit, u.Limit)
		}
		if u.Used != 2 {
			t.Errorf("window %s: expected 2 used, got %d", u.Window, u.Used)
		}
		if u.Reset <= 0 {
			t.Errorf("window %s: expected positive reset, got %v", u.Window, u.Reset)
		}
	}
}

func TestTracker_ConcurrentAdmit(t *testing.T) {
	tr := NewTracker(QuotaConfig{DailyLimit: 25})

	var admitted int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := tr.Admit(); ok {
				atomic.AddInt32(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	if admitted != 25 {
		t.Errorf("expected exactly 25 admitted, got %d", admitted)
	}
}
