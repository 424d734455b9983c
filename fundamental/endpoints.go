package fundamental

import "github.com/fmpdata/fmpdata-go/endpoint"

// statementParams is shared by the three statement endpoints.
func statementParams() []endpoint.Param {
	return []endpoint.Param{
		{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
		{Name: "period", Location: endpoint.Query, Type: endpoint.String, Default: "annual", Enum: []string{"annual", "quarter"}},
		{Name: "limit", Location: endpoint.Query, Type: endpoint.Int, Default: 40},
	}
}

var (
	incomeStatementEndpoint = endpoint.Endpoint{
		Name:    "fundamental.income_statement",
		Path:    "income-statement/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params:  statementParams(),
	}

	balanceSheetEndpoint = endpoint.Endpoint{
		Name:    "fundamental.balance_sheet",
		Path:    "balance-sheet-statement/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params:  statementParams(),
	}

	cashFlowEndpoint = endpoint.Endpoint{
		Name:    "fundamental.cash_flow",
		Path:    "cash-flow-statement/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params:  statementParams(),
	}
)
