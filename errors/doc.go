// Package errors provides the typed error taxonomy for the FMP client.
// Every failure surfaced by the client is an *Error carrying a
// machine-readable code, the provider HTTP status when applicable, the raw
// response body, and a retryable flag. Callers branch on failures with the
// Is* helpers rather than string matching.
package errors
