package errors

import (
	"encoding/json"
	stderrors "errors"
)

// errorPayload matches the bodies FMP uses to report failures inside a
// 2xx response.
type errorPayload struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"Error Message"`
}

// FromPayload inspects a decoded 2xx body for a provider-reported failure.
// FMP returns some errors as {"message": ...} or {"Error Message": ...}
// objects with a 200 status. Returns nil when the body is not error-shaped.
func FromPayload(statusCode int, body []byte) *Error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	msg := payload.Message
	if msg == "" {
		msg = payload.ErrorMessage
	}
	if msg == "" {
		return nil
	}
	return NewAPIError(statusCode, msg, body)
}

// Response returns the decoded JSON body as a map, or nil when the body
// is absent or not a JSON object.
func (e *Error) Response() map[string]any {
	if len(e.Body) == 0 {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(e.Body, &decoded); err != nil {
		return nil
	}
	return decoded
}

// IsError checks if an error is a typed FMP client error.
func IsError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError converts an error to a typed FMP client error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}
