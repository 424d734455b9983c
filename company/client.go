package company

import (
	"context"

	"github.com/fmpdata/fmpdata-go/client"
)

// Client exposes the company information endpoints.
type Client struct {
	api *client.Client
}

// New wraps an API client with the company endpoint group.
func New(api *client.Client) *Client {
	return &Client{api: api}
}

// SearchOptions narrows a symbol search. Zero values are omitted from
// the request.
type SearchOptions struct {
	Limit    int
	Exchange string
}

// FilingsOptions filters SEC filings. Zero values are omitted.
type FilingsOptions struct {
	FormType string
	Page     int
}

// Profile returns the company profile for a symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (Profile, error) {
	return client.Call[Profile](c.api, ctx, &profileEndpoint, map[string]any{"symbol": symbol})
}

// Search looks up companies by name, ticker, or other identifiers.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	args := map[string]any{"query": query}
	if opts.Limit > 0 {
		args["limit"] = opts.Limit
	}
	if opts.Exchange != "" {
		args["exchange"] = opts.Exchange
	}
	return client.CallList[SearchResult](c.api, ctx, &searchEndpoint, args)
}

// Executives returns a company's key executives.
func (c *Client) Executives(ctx context.Context, symbol string) ([]Executive, error) {
	return client.CallList[Executive](c.api, ctx, &executivesEndpoint, map[string]any{"symbol": symbol})
}

// EmployeeCounts returns a company's historical workforce numbers.
func (c *Client) EmployeeCounts(ctx context.Context, symbol string) ([]EmployeeCount, error) {
	return client.CallList[EmployeeCount](c.api, ctx, &employeeCountEndpoint, map[string]any{"symbol": symbol})
}

// Notes returns the financial notes attached to a company's filings.
func (c *Client) Notes(ctx context.Context, symbol string) ([]Note, error) {
	return client.CallList[Note](c.api, ctx, &notesEndpoint, map[string]any{"symbol": symbol})
}

// Filings returns a company's SEC filings, newest first.
func (c *Client) Filings(ctx context.Context, symbol string, opts FilingsOptions) ([]Filing, error) {
	args := map[string]any{"symbol": symbol}
	if opts.FormType != "" {
		args["type"] = opts.FormType
	}
	if opts.Page > 0 {
		args["page"] = opts.Page
	}
	return client.CallList[Filing](c.api, ctx, &filingsEndpoint, args)
}
