package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fmpdata/fmpdata-go/errors"
)

// Version selects the API generation an endpoint belongs to.
type Version string

const (
	V3     Version = "v3"
	V4     Version = "v4"
	Stable Version = "stable"
)

// Shape describes the payload an endpoint returns.
type Shape int

const (
	// List endpoints return a JSON array of records.
	List Shape = iota
	// Object endpoints return a single JSON object. The provider often
	// wraps these in a one-element array; the decode layer unwraps it.
	Object
	// CSV endpoints return raw CSV rows (bulk downloads).
	CSV
)

// String returns the shape name for logs and trace attributes.
func (s Shape) String() string {
	switch s {
	case Object:
		return "object"
	case CSV:
		return "csv"
	default:
		return "list"
	}
}

// Endpoint describes one FMP API operation: where it lives, what parameters
// it takes, and what payload shape it returns. The endpoint group packages
// declare these as package-level metadata.
type Endpoint struct {
	Name    string
	Method  string
	Path    string // may contain {name} placeholders for path parameters
	Version Version
	Shape   Shape
	Params  []Param
	// Deprecated carries a migration note when the provider has marked the
	// operation deprecated. Executing it still works; the client logs a
	// warning.
	Deprecated string
}

// HTTPMethod returns the endpoint's method, defaulting to GET.
func (e *Endpoint) HTTPMethod() string {
	if e.Method == "" {
		return http.MethodGet
	}
	return e.Method
}

// Resolve validates args against the endpoint's parameters and returns the
// expanded path and encoded query values. Missing required parameters,
// unknown arguments, type mismatches, and enum violations all produce a
// ValidationError. Optional parameters resolving to a blank value are treated
// as unset.
func (e *Endpoint) Resolve(args map[string]any) (string, url.Values, error) {
	known := make(map[string]struct{}, len(e.Params))
	path := e.Path
	query := url.Values{}

	for i := range e.Params {
		p := &e.Params[i]
		known[p.Name] = struct{}{}

		value, supplied := args[p.Name]
		if !supplied || value == nil {
			if p.Required {
				return "", nil, errors.NewValidationError(
					fmt.Sprintf("missing required parameter %q for %s", p.Name, e.Name))
			}
			if p.Default == nil {
				continue
			}
			value = p.Default
		}

		s, err := p.resolve(value)
		if err != nil {
			return "", nil, errors.NewValidationError(err.Error())
		}
		if s == "" {
			continue
		}

		switch p.Location {
		case Path:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(s))
		default:
			query.Set(p.Name, s)
		}
	}

	for name := range args {
		if _, ok := known[name]; !ok {
			return "", nil, errors.NewValidationError(
				fmt.Sprintf("unknown parameter %q for %s", name, e.Name))
		}
	}

	if strings.ContainsRune(path, '{') {
		return "", nil, errors.NewValidationError(
			fmt.Sprintf("unresolved path placeholder in %s: %s", e.Name, path))
	}

	return path, query, nil
}

// URL joins the API base with the endpoint's version prefix and resolved
// path. Stable endpoints live under the site root rather than the /api tree.
func (e *Endpoint) URL(base string, args map[string]any) (*url.URL, error) {
	path, query, err := e.Resolve(args)
	if err != nil {
		return nil, err
	}

	root := strings.TrimRight(base, "/")
	if e.Version == Stable {
		root = strings.TrimSuffix(root, "/api")
	}
	u, err := url.Parse(fmt.Sprintf("%s/%s/%s", root, e.Version, path))
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid URL for %s: %v", e.Name, err))
	}
	u.RawQuery = query.Encode()
	return u, nil
}
