package errors

// ErrorCode classifies FMP client errors.
type ErrorCode int

const (
	// ErrCodeConfig indicates invalid or missing client configuration.
	ErrCodeConfig ErrorCode = iota
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeAuth indicates the credential was rejected (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the requested resource or symbol does not exist (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates local quota exhaustion or remote throttling (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates request parameters failed validation (400).
	ErrCodeValidation
	// ErrCodeInvalidResponse indicates the payload shape does not match the expected type.
	ErrCodeInvalidResponse
	// ErrCodeDependency indicates an optional capability is missing its prerequisite.
	ErrCodeDependency
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
	// ErrCodeAPI indicates a provider-reported failure not covered above.
	ErrCodeAPI
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfig:
		return "config"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeInvalidResponse:
		return "invalid_response"
	case ErrCodeDependency:
		return "dependency"
	case ErrCodeServer:
		return "server"
	case ErrCodeAPI:
		return "api"
	default:
		return "unknown"
	}
}
