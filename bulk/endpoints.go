package bulk

import "github.com/fmpdata/fmpdata-go/endpoint"

var (
	profilesEndpoint = endpoint.Endpoint{
		Name:    "bulk.company_profiles",
		Path:    "profile-bulk",
		Version: endpoint.Stable,
		Shape:   endpoint.CSV,
		Params: []endpoint.Param{
			{Name: "part", Location: endpoint.Query, Type: endpoint.Int, Required: true},
		},
	}

	eodEndpoint = endpoint.Endpoint{
		Name:    "bulk.batch_eod",
		Path:    "batch-historical-eod",
		Version: endpoint.V4,
		Shape:   endpoint.CSV,
		Params: []endpoint.Param{
			{Name: "date", Location: endpoint.Query, Type: endpoint.Date, Required: true},
		},
	}
)
