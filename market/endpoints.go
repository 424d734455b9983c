package market

import "github.com/fmpdata/fmpdata-go/endpoint"

// Bar intervals accepted by the intraday endpoint.
var intervals = []string{"1min", "5min", "15min", "30min", "1hour", "4hour"}

var (
	quoteEndpoint = endpoint.Endpoint{
		Name:    "market.quote",
		Path:    "quote/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.Object,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
		},
	}

	simpleQuoteEndpoint = endpoint.Endpoint{
		Name:    "market.simple_quote",
		Path:    "quote-short/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.Object,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
		},
	}

	historicalEndpoint = endpoint.Endpoint{
		Name:    "market.historical_price",
		Path:    "historical-price-full/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.Object,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
			{Name: "from", Location: endpoint.Query, Type: endpoint.Date},
			{Name: "to", Location: endpoint.Query, Type: endpoint.Date},
		},
	}

	intradayEndpoint = endpoint.Endpoint{
		Name:    "market.intraday_price",
		Path:    "historical-chart/{interval}/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params: []endpoint.Param{
			{Name: "interval", Location: endpoint.Path, Type: endpoint.String, Required: true, Enum: intervals},
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
		},
	}

	gainersEndpoint = endpoint.Endpoint{
		Name:    "market.gainers",
		Path:    "stock_market/gainers",
		Version: endpoint.V3,
		Shape:   endpoint.List,
	}
)
