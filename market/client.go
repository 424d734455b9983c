package market

import (
	"context"

	"github.com/fmpdata/fmpdata-go/client"
)

// Client exposes the market data endpoints.
type Client struct {
	api *client.Client
}

// New wraps an API client with the market endpoint group.
func New(api *client.Client) *Client {
	return &Client{api: api}
}

// HistoricalOptions bounds a price history request. Dates are
// YYYY-MM-DD; zero values are omitted.
type HistoricalOptions struct {
	From string
	To   string
}

// Quote returns the full real-time quote for a symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (Quote, error) {
	return client.Call[Quote](c.api, ctx, &quoteEndpoint, map[string]any{"symbol": symbol})
}

// SimpleQuote returns the short price snapshot for a symbol.
func (c *Client) SimpleQuote(ctx context.Context, symbol string) (SimpleQuote, error) {
	return client.Call[SimpleQuote](c.api, ctx, &simpleQuoteEndpoint, map[string]any{"symbol": symbol})
}

// HistoricalPrices returns a symbol's daily bars, optionally bounded by
// a date range.
func (c *Client) HistoricalPrices(ctx context.Context, symbol string, opts HistoricalOptions) (HistoricalData, error) {
	args := map[string]any{"symbol": symbol}
	if opts.From != "" {
		args["from"] = opts.From
	}
	if opts.To != "" {
		args["to"] = opts.To
	}
	return client.Call[HistoricalData](c.api, ctx, &historicalEndpoint, args)
}

// Intraday returns intraday bars for a symbol at the given interval
// (1min, 5min, 15min, 30min, 1hour, or 4hour).
func (c *Client) Intraday(ctx context.Context, symbol, interval string) ([]IntradayBar, error) {
	args := map[string]any{"symbol": symbol, "interval": interval}
	return client.CallList[IntradayBar](c.api, ctx, &intradayEndpoint, args)
}

// Gainers returns the day's top gaining stocks.
func (c *Client) Gainers(ctx context.Context) ([]Mover, error) {
	return client.CallList[Mover](c.api, ctx, &gainersEndpoint, nil)
}
