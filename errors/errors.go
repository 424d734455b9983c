package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Error is a structured FMP client error with classification.
type Error struct {
	// StatusCode is the provider HTTP status code (0 when not applicable).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether the operation can be retried.
	Retryable bool
	// RetryAfter is the wait the caller should honor before retrying.
	// Only populated for rate-limit errors.
	RetryAfter time.Duration
	// Body is the raw response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Code == ErrCodeRateLimit && e.RetryAfter > 0:
		return fmt.Sprintf("fmp: %s: %s (retry after %s)", e.Code, e.Message, e.RetryAfter)
	case e.StatusCode > 0:
		return fmt.Sprintf("fmp: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("fmp: %s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error.
func NewConfigError(msg string) *Error {
	return &Error{
		Code:      ErrCodeConfig,
		Message:   msg,
		Retryable: false,
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:      ErrCodeConnection,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewAuthError creates an authentication error.
func NewAuthError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeAuth,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Retryable:  false,
		Body:       body,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(body []byte) *Error {
	return &Error{
		StatusCode: http.StatusNotFound,
		Code:       ErrCodeNotFound,
		Message:    "HTTP 404",
		Retryable:  false,
		Body:       body,
	}
}

// NewRateLimitError creates a rate-limit error for a remote throttling
// response. retryAfter is the provider-supplied wait, 0 when absent.
func NewRateLimitError(body []byte, retryAfter time.Duration) *Error {
	return &Error{
		StatusCode: http.StatusTooManyRequests,
		Code:       ErrCodeRateLimit,
		Message:    "HTTP 429",
		Retryable:  true,
		RetryAfter: retryAfter,
		Body:       body,
	}
}

// NewQuotaExceededError creates a rate-limit error for local quota
// exhaustion when waiting is disabled.
func NewQuotaExceededError(retryAfter time.Duration) *Error {
	return &Error{
		Code:       ErrCodeRateLimit,
		Message:    "local quota exceeded",
		Retryable:  true,
		RetryAfter: retryAfter,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:      ErrCodeValidation,
		Message:   msg,
		Retryable: false,
	}
}

// NewInvalidResponseError creates an error for a payload whose shape or
// type does not match the expected result type.
func NewInvalidResponseError(msg string, body []byte) *Error {
	return &Error{
		Code:      ErrCodeInvalidResponse,
		Message:   msg,
		Retryable: false,
		Body:      body,
	}
}

// NewDependencyError creates an error for an optional capability invoked
// without its prerequisite installed.
func NewDependencyError(capability, prerequisite string) *Error {
	return &Error{
		Code:      ErrCodeDependency,
		Message:   fmt.Sprintf("%s requires %s", capability, prerequisite),
		Retryable: false,
	}
}

// NewServerError creates a server error.
func NewServerError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeServer,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Retryable:  true,
		Body:       body,
	}
}

// NewAPIError creates a catch-all error for provider-reported failures
// not covered by a more specific code.
func NewAPIError(statusCode int, msg string, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeAPI,
		Message:    msg,
		Retryable:  false,
		Body:       body,
	}
}

// Wrap converts an arbitrary error into a typed *Error. Typed errors are
// returned unchanged; anything else becomes the catch-all API error.
func Wrap(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:      ErrCodeAPI,
		Message:   err.Error(),
		Retryable: false,
		Err:       err,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return NewAuthError(statusCode, body)
	case statusCode == http.StatusNotFound:
		return NewNotFoundError(body)
	case statusCode == http.StatusTooManyRequests:
		return NewRateLimitError(body, 0)
	case statusCode >= 400 && statusCode < 500:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeValidation,
			Message:    fmt.Sprintf("HTTP %d", statusCode),
			Retryable:  false,
			Body:       body,
		}
	case statusCode >= 500:
		return NewServerError(statusCode, body)
	default:
		return NewAPIError(statusCode, fmt.Sprintf("HTTP %d", statusCode), body)
	}
}

// ParseRetryAfter parses a Retry-After header value, either delay seconds
// or an HTTP date. Returns 0 when the value is absent or malformed.
func ParseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConfig
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAuth
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRateLimit
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeValidation
}

// IsInvalidResponse checks if an error is a response-shape error.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidResponse
}

// IsDependency checks if an error is a missing-dependency error.
func IsDependency(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDependency
}

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeServer
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
