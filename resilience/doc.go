// Package resilience paces and retries calls against the FMP API.
//
// This package includes:
//   - Tracker: Enforces the plan's call quotas across rolling windows
//   - Policy: Classifies failed attempts and schedules backoff
//
// The client's executor combines both:
//
//	tracker := resilience.NewTracker(resilience.DefaultQuotaConfig())
//	policy := resilience.NewPolicy(resilience.DefaultRetryConfig())
//
//	if err := tracker.Wait(ctx); err != nil {
//	    return err
//	}
//	res, err := doOnce(ctx, req)
//	if d := policy.Decide(attempt, err); d.Retry {
//	    sleep(d.Wait) // then try again
//	}
package resilience
