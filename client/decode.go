package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fmpdata/fmpdata-go/errors"
)

// decodeSingle decodes a payload expected to hold one object. The provider
// often wraps single results in a one-element array, so that form is
// unwrapped; an empty list or empty object decodes to the zero value.
func decodeSingle[T any](body []byte) (T, error) {
	var zero T

	payload := bytes.TrimSpace(body)
	if emptyPayload(payload) {
		return zero, nil
	}

	switch payload[0] {
	case '{':
		if apiErr := errors.FromPayload(http.StatusOK, payload); apiErr != nil {
			return zero, apiErr
		}
		var out T
		if err := json.Unmarshal(payload, &out); err != nil {
			return zero, errors.NewInvalidResponseError(fmt.Sprintf("decode object: %v", err), body)
		}
		return out, nil

	case '[':
		var items []T
		if err := json.Unmarshal(payload, &items); err != nil {
			return zero, errors.NewInvalidResponseError(fmt.Sprintf("decode list: %v", err), body)
		}
		switch len(items) {
		case 0:
			return zero, nil
		case 1:
			return items[0], nil
		default:
			return zero, errors.NewInvalidResponseError(
				fmt.Sprintf("expected a single result, got %d", len(items)), body)
		}

	default:
		return zero, errors.NewInvalidResponseError(
			fmt.Sprintf("expected an object, got %s", jsonTypeName(payload)), body)
	}
}

// decodeList decodes a payload expected to hold a homogeneous list. A bare
// object is wrapped into a one-element list; an empty payload decodes to an
// empty list.
func decodeList[T any](body []byte) ([]T, error) {
	payload := bytes.TrimSpace(body)
	if emptyPayload(payload) {
		return []T{}, nil
	}

	switch payload[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, errors.NewInvalidResponseError(fmt.Sprintf("decode list: %v", err), body)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil

	case '{':
		if apiErr := errors.FromPayload(http.StatusOK, payload); apiErr != nil {
			return nil, apiErr
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, errors.NewInvalidResponseError(fmt.Sprintf("decode object: %v", err), body)
		}
		return []T{item}, nil

	default:
		return nil, errors.NewInvalidResponseError(
			fmt.Sprintf("expected a list, got %s", jsonTypeName(payload)), body)
	}
}

// emptyPayload reports whether a payload carries no result at all.
func emptyPayload(payload []byte) bool {
	return len(payload) == 0 ||
		bytes.Equal(payload, []byte("null")) ||
		bytes.Equal(payload, []byte("{}")) ||
		bytes.Equal(payload, []byte("[]"))
}

// jsonTypeName names the JSON type of a payload for error messages.
func jsonTypeName(payload []byte) string {
	switch payload[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
