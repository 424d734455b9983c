package fundamental

import (
	"context"

	"github.com/fmpdata/fmpdata-go/client"
)

// Client exposes the financial statement endpoints.
type Client struct {
	api *client.Client
}

// New wraps an API client with the fundamental endpoint group.
func New(api *client.Client) *Client {
	return &Client{api: api}
}

// StatementOptions selects the reporting period and history depth.
// Zero values fall back to the endpoint defaults (annual, 40 periods).
type StatementOptions struct {
	Period string // "annual" or "quarter"
	Limit  int
}

func (o StatementOptions) args(symbol string) map[string]any {
	args := map[string]any{"symbol": symbol}
	if o.Period != "" {
		args["period"] = o.Period
	}
	if o.Limit > 0 {
		args["limit"] = o.Limit
	}
	return args
}

// IncomeStatements returns a company's income statements, newest first.
func (c *Client) IncomeStatements(ctx context.Context, symbol string, opts StatementOptions) ([]IncomeStatement, error) {
	return client.CallList[IncomeStatement](c.api, ctx, &incomeStatementEndpoint, opts.args(symbol))
}

// BalanceSheets returns a company's balance sheets, newest first.
func (c *Client) BalanceSheets(ctx context.Context, symbol string, opts StatementOptions) ([]BalanceSheet, error) {
	return client.CallList[BalanceSheet](c.api, ctx, &balanceSheetEndpoint, opts.args(symbol))
}

// CashFlowStatements returns a company's cash flow statements, newest
// first.
func (c *Client) CashFlowStatements(ctx context.Context, symbol string, opts StatementOptions) ([]CashFlowStatement, error) {
	return client.CallList[CashFlowStatement](c.api, ctx, &cashFlowEndpoint, opts.args(symbol))
}
