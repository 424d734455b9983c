// Package client executes requests against the Financial Modeling Prep API.
// It validates parameters locally, paces calls against the plan's quota
// windows, retries transient failures with exponential backoff, and
// reconciles the provider's response shapes into typed results.
//
// # Client Creation
//
//	c, err := client.New(client.Config{APIKey: "..."})
//
// or from FMP_* environment variables (a .env file is picked up when
// present):
//
//	c, err := client.FromEnv()
//
// The API key travels as the apikey query parameter on every request.
//
// # Rate Limiting
//
// Every call is admitted through three rolling quota windows (per second,
// per minute, per day; free-tier defaults 5/300/250). When a window is
// exhausted the call waits for the window to reset, or fails immediately
// with a rate-limit error when [Config.FailFast] is set. Waiting calls
// are not counted against any window.
//
// # Retry Behavior
//
// Timeouts, connection failures, HTTP 429, and 5xx responses are retried
// up to [Config.MaxRetries] attempts with exponential backoff clamped
// between 4s and 10s. A Retry-After supplied by the provider is honored in
// full, never shortened. Authentication failures, malformed requests, and
// response-shape mismatches are never retried.
//
// # Error Handling
//
// Every failure surfaces as a typed error; use the predicate helpers to
// branch:
//
//	if fmperrors.IsRateLimit(err) {
//	    // back off
//	}
//
// # Thread Safety
//
// A [Client] is safe for concurrent use. All goroutines share its quota
// tracker, so concurrent calls cannot jointly exceed a window limit.
package client
