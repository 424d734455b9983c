package endpoint

import (
	"testing"
	"time"

	"github.com/fmpdata/fmpdata-go/errors"
)

var quoteEndpoint = Endpoint{
	Name:    "quote",
	Path:    "quote/{symbol}",
	Version: V3,
	Shape:   Object,
	Params: []Param{
		{Name: "symbol", Location: Path, Type: String, Required: true},
	},
}

var statementEndpoint = Endpoint{
	Name:    "income-statement",
	Path:    "income-statement/{symbol}",
	Version: V3,
	Params: []Param{
		{Name: "symbol", Location: Path, Type: String, Required: true},
		{Name: "period", Location: Query, Type: String, Default: "annual", Enum: []string{"annual", "quarter"}},
		{Name: "limit", Location: Query, Type: Int, Default: 40},
	},
}

func TestEndpoint_Resolve(t *testing.T) {
	path, query, err := statementEndpoint.Resolve(map[string]any{
		"symbol": "AAPL",
		"period": "quarter",
		"limit":  10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "income-statement/AAPL" {
		t.Errorf("path = %q, want income-statement/AAPL", path)
	}
	if got := query.Get("period"); got != "quarter" {
		t.Errorf("period = %q, want quarter", got)
	}
	if got := query.Get("limit"); got != "10" {
		t.Errorf("limit = %q, want 10", got)
	}
}

func TestEndpoint_Resolve_AppliesDefaults(t *testing.T) {
	_, query, err := statementEndpoint.Resolve(map[string]any{"symbol": "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := query.Get("period"); got != "annual" {
		t.Errorf("period = %q, want annual", got)
	}
	if got := query.Get("limit"); got != "40" {
		t.Errorf("limit = %q, want 40", got)
	}
}

func TestEndpoint_Resolve_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing required", map[string]any{}},
		{"blank symbol", map[string]any{"symbol": "  "}},
		{"unknown parameter", map[string]any{"symbol": "AAPL", "country": "US"}},
		{"enum violation", map[string]any{"symbol": "AAPL", "period": "monthly"}},
		{"wrong type", map[string]any{"symbol": 42}},
		{"bad int", map[string]any{"symbol": "AAPL", "limit": "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := statementEndpoint.Resolve(tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestEndpoint_Resolve_BlankOptionalSkipped(t *testing.T) {
	ep := Endpoint{
		Name: "search",
		Path: "search",
		Params: []Param{
			{Name: "query", Location: Query, Type: String, Required: true},
			{Name: "exchange", Location: Query, Type: String},
		},
	}

	_, query, err := ep.Resolve(map[string]any{"query": "apple", "exchange": ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := query["exchange"]; present {
		t.Error("blank optional parameter should not be sent")
	}
}

func TestEndpoint_URL(t *testing.T) {
	base := "https://financialmodelingprep.com/api"

	tests := []struct {
		name string
		ep   Endpoint
		args map[string]any
		want string
	}{
		{
			name: "v3 path param",
			ep:   quoteEndpoint,
			args: map[string]any{"symbol": "AAPL"},
			want: "https://financialmodelingprep.com/api/v3/quote/AAPL",
		},
		{
			name: "v4 query param",
			ep: Endpoint{
				Name:    "employee-count",
				Path:    "employee_count",
				Version: V4,
				Params:  []Param{{Name: "symbol", Location: Query, Type: String, Required: true}},
			},
			args: map[string]any{"symbol": "AAPL"},
			want: "https://financialmodelingprep.com/api/v4/employee_count?symbol=AAPL",
		},
		{
			name: "stable leaves the api tree",
			ep: Endpoint{
				Name:    "profile-bulk",
				Path:    "profile-bulk",
				Version: Stable,
				Params:  []Param{{Name: "part", Location: Query, Type: Int, Required: true}},
			},
			args: map[string]any{"part": 0},
			want: "https://financialmodelingprep.com/stable/profile-bulk?part=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.ep.URL(base, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.String() != tt.want {
				t.Errorf("URL = %q, want %q", u.String(), tt.want)
			}
		})
	}
}

func TestEndpoint_URL_TrailingSlashBase(t *testing.T) {
	u, err := quoteEndpoint.URL("https://financialmodelingprep.com/api/", map[string]any{"symbol": "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "https://financialmodelingprep.com/api/v3/quote/AAPL"; u.String() != want {
		t.Errorf("URL = %q, want %q", u.String(), want)
	}
}

func TestParam_DateCoercion(t *testing.T) {
	p := Param{Name: "date", Location: Query, Type: Date, Required: true}

	got, err := p.resolve(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-15" {
		t.Errorf("resolve(time.Time) = %q, want 2024-03-15", got)
	}

	got, err = p.resolve("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-15" {
		t.Errorf("resolve(string) = %q, want 2024-03-15", got)
	}

	if _, err := p.resolve("15/03/2024"); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestParam_BoolCoercion(t *testing.T) {
	p := Param{Name: "active", Location: Query, Type: Bool}

	got, err := p.resolve(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "true" {
		t.Errorf("resolve(true) = %q, want true", got)
	}

	if _, err := p.resolve("yes"); err == nil {
		t.Error("expected an error for a non-boolean string")
	}
}

func TestEndpoint_HTTPMethod(t *testing.T) {
	ep := Endpoint{Name: "quote"}
	if got := ep.HTTPMethod(); got != "GET" {
		t.Errorf("HTTPMethod() = %q, want GET", got)
	}
}
