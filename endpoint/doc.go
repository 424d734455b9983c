// Package endpoint models FMP API operations as declarative metadata.
//
// An Endpoint records the path template, API version, parameters, and
// response shape of one operation. The endpoint group packages (company,
// market, fundamental, bulk) declare their operations as package-level
// Endpoint values; the client package resolves them into requests:
//
//	u, err := ep.URL(baseURL, map[string]any{"symbol": "AAPL"})
//
// Parameter validation happens locally, before any network call, and
// produces typed validation errors.
package endpoint
