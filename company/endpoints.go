package company

import "github.com/fmpdata/fmpdata-go/endpoint"

var (
	profileEndpoint = endpoint.Endpoint{
		Name:    "company.profile",
		Path:    "profile/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.Object,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
		},
	}

	searchEndpoint = endpoint.Endpoint{
		Name:    "company.search",
		Path:    "search",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params: []endpoint.Param{
			{Name: "query", Location: endpoint.Query, Type: endpoint.String, Required: true},
			{Name: "limit", Location: endpoint.Query, Type: endpoint.Int},
			{Name: "exchange", Location: endpoint.Query, Type: endpoint.String},
		},
	}

	executivesEndpoint = endpoint.Endpoint{
		Name:    "company.key_executives",
		Path:    "key-executives/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
		},
	}

	employeeCountEndpoint = endpoint.Endpoint{
		Name:    "company.employee_count",
		Path:    "historical/employee_count",
		Version: endpoint.V4,
		Shape:   endpoint.List,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Query, Type: endpoint.String, Required: true},
		},
	}

	notesEndpoint = endpoint.Endpoint{
		Name:    "company.notes",
		Path:    "company-notes",
		Version: endpoint.V4,
		Shape:   endpoint.List,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Query, Type: endpoint.String, Required: true},
		},
	}

	filingsEndpoint = endpoint.Endpoint{
		Name:    "company.sec_filings",
		Path:    "sec_filings/{symbol}",
		Version: endpoint.V3,
		Shape:   endpoint.List,
		Params: []endpoint.Param{
			{Name: "symbol", Location: endpoint.Path, Type: endpoint.String, Required: true},
			{Name: "type", Location: endpoint.Query, Type: endpoint.String},
			{Name: "page", Location: endpoint.Query, Type: endpoint.Int, Default: 0},
		},
	}
)
