package client

import (
	"context"

	"github.com/fmpdata/fmpdata-go/endpoint"
)

// Call executes an endpoint that yields a single object and decodes it
// into T. Go does not allow type parameters on methods, so Call takes the
// client as its first argument.
func Call[T any](c *Client, ctx context.Context, ep *endpoint.Endpoint, args map[string]any) (T, error) {
	body, err := c.Execute(ctx, ep, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeSingle[T](body)
}

// CallList executes an endpoint that yields a homogeneous list and decodes
// it into []T.
func CallList[T any](c *Client, ctx context.Context, ep *endpoint.Endpoint, args map[string]any) ([]T, error) {
	body, err := c.Execute(ctx, ep, args)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body)
}
