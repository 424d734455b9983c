package endpoint

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fmpdata/fmpdata-go/util"
)

// Location says where a parameter travels in the request.
type Location int

const (
	// Query parameters are encoded into the query string.
	Query Location = iota
	// Path parameters replace a {name} placeholder in the endpoint path.
	Path
)

// Type is the value type a parameter accepts.
type Type int

const (
	String Type = iota
	Int
	Float
	Bool
	// Date accepts a time.Time or a YYYY-MM-DD string.
	Date
)

// DateLayout is the wire format for Date parameters.
const DateLayout = "2006-01-02"

// Param describes one endpoint parameter.
type Param struct {
	Name     string
	Location Location
	Type     Type
	Required bool
	// Default is applied when an optional parameter is not supplied.
	Default any
	// Enum restricts the resolved value to a fixed set.
	Enum []string
}

// resolve coerces a supplied value to its wire string and checks it against
// the parameter's constraints.
func (p *Param) resolve(value any) (string, error) {
	s, err := p.coerce(value)
	if err != nil {
		return "", err
	}
	if p.Required && s == "" {
		return "", fmt.Errorf("parameter %q must not be blank", p.Name)
	}
	if len(p.Enum) > 0 && !util.Contains(p.Enum, s) {
		return "", fmt.Errorf("invalid value %q for parameter %q (valid: %s)",
			s, p.Name, strings.Join(p.Enum, ", "))
	}
	return s, nil
}

func (p *Param) coerce(value any) (string, error) {
	switch p.Type {
	case String:
		s, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("parameter %q expects a string, got %T", p.Name, value)
		}
		return strings.TrimSpace(s), nil

	case Int:
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case string:
			if _, err := strconv.Atoi(v); err != nil {
				return "", fmt.Errorf("parameter %q expects an integer, got %q", p.Name, v)
			}
			return v, nil
		default:
			return "", fmt.Errorf("parameter %q expects an integer, got %T", p.Name, value)
		}

	case Float:
		switch v := value.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
		case int:
			return strconv.Itoa(v), nil
		case string:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return "", fmt.Errorf("parameter %q expects a number, got %q", p.Name, v)
			}
			return v, nil
		default:
			return "", fmt.Errorf("parameter %q expects a number, got %T", p.Name, value)
		}

	case Bool:
		switch v := value.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case string:
			if v != "true" && v != "false" {
				return "", fmt.Errorf("parameter %q expects true or false, got %q", p.Name, v)
			}
			return v, nil
		default:
			return "", fmt.Errorf("parameter %q expects a boolean, got %T", p.Name, value)
		}

	case Date:
		switch v := value.(type) {
		case time.Time:
			return v.Format(DateLayout), nil
		case string:
			if _, err := time.Parse(DateLayout, v); err != nil {
				return "", fmt.Errorf("parameter %q expects a %s date, got %q", p.Name, DateLayout, v)
			}
			return v, nil
		default:
			return "", fmt.Errorf("parameter %q expects a date, got %T", p.Name, value)
		}
	}
	return "", fmt.Errorf("parameter %q has unknown type %d", p.Name, p.Type)
}
