package bulk

import (
	"context"
	"time"

	"github.com/fmpdata/fmpdata-go/client"
)

// Client exposes the CSV-bodied bulk download endpoints.
type Client struct {
	api *client.Client
}

// New wraps an API client with the bulk endpoint group.
func New(api *client.Client) *Client {
	return &Client{api: api}
}

// Profiles downloads one part of the bulk company profile file.
func (c *Client) Profiles(ctx context.Context, part int) ([]Profile, error) {
	body, err := c.api.Execute(ctx, &profilesEndpoint, map[string]any{"part": part})
	if err != nil {
		return nil, err
	}
	return decodeRows[Profile](body)
}

// EODPrices downloads end-of-day prices for every symbol on one
// trading day.
func (c *Client) EODPrices(ctx context.Context, day time.Time) ([]EODPrice, error) {
	body, err := c.api.Execute(ctx, &eodEndpoint, map[string]any{"date": day})
	if err != nil {
		return nil, err
	}
	return decodeRows[EODPrice](body)
}
