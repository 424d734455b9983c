package bulk

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/fmpdata/fmpdata-go/errors"
)

// decodeRows parses a CSV body into typed rows. Column headers are
// matched against the row type's json tags; unknown columns are
// ignored, blank cells leave their field at the zero value, and
// all-blank records are skipped.
func decodeRows[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	// Bulk failures come back as a JSON object even on CSV routes.
	if trimmed[0] == '{' {
		if apiErr := errors.FromPayload(http.StatusOK, trimmed); apiErr != nil {
			return nil, apiErr
		}
		return nil, errors.NewInvalidResponseError("expected CSV, got a JSON object", trimmed)
	}

	reader := csv.NewReader(bytes.NewReader(trimmed))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewInvalidResponseError(fmt.Sprintf("read CSV header: %v", err), nil)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	fields := fieldsByTag(reflect.TypeOf((*T)(nil)).Elem())

	var rows []T
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInvalidResponseError(fmt.Sprintf("read CSV record: %v", err), nil)
		}
		if blankRecord(record) {
			continue
		}

		var row T
		rv := reflect.ValueOf(&row).Elem()
		for i, name := range header {
			if i >= len(record) {
				break
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			idx, ok := fields[name]
			if !ok {
				continue
			}
			if err := setField(rv.Field(idx), value); err != nil {
				return nil, errors.NewInvalidResponseError(fmt.Sprintf("column %q: %v", name, err), nil)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fieldsByTag maps json tag names to struct field indices.
func fieldsByTag(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if comma := strings.Index(tag, ","); comma >= 0 {
			tag = tag[:comma]
		}
		fields[tag] = i
	}
	return fields
}

func blankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// setField converts one CSV cell into the field's type. Pointer fields
// are allocated on demand.
func setField(v reflect.Value, value string) error {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			// Some integer columns arrive with a decimal point.
			f, ferr := strconv.ParseFloat(value, 64)
			if ferr != nil {
				return err
			}
			n = int64(f)
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", v.Kind())
	}
	return nil
}
