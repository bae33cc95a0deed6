package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/rectools/recerrors"
)

// Decode parses input into the canonical record sequence.
//
// Empty or whitespace-only input fails with recerrors.EmptyInputError before
// any format-specific parsing is attempted. Decoding is all-or-nothing: on
// error no partial sequence is returned.
func Decode(input string, f Format) ([]Record, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &recerrors.EmptyInputError{Format: f.String()}
	}

	switch f {
	case FormatJSON:
		return decodeJSON(input)
	case FormatYAML:
		return decodeYAML(input)
	case FormatCSV:
		return decodeCSV(input)
	case FormatTOML:
		return decodeTOML(input)
	default:
		return nil, &recerrors.UnsupportedRepresentationError{Format: f.String()}
	}
}

// decodeJSON expects an array of objects, each matching the record schema
// exactly. Numbers are decoded as json.Number so ids above 2^53 survive
// without float64 rounding.
func decodeJSON(input string) ([]Record, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &recerrors.JSONError{Message: "decoding record array", Cause: err}
	}
	if dec.More() {
		return nil, &recerrors.JSONError{Message: "trailing data after record array"}
	}

	recs := make([]Record, 0, len(raw))
	for i, m := range raw {
		rec, err := recordFromMap(m)
		if err != nil {
			return nil, &recerrors.JSONError{Message: fmt.Sprintf("record %d", i), Cause: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// decodeYAML expects a block or flow sequence of mappings matching the
// record schema.
func decodeYAML(input string) ([]Record, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal([]byte(input), &raw); err != nil {
		return nil, &recerrors.YAMLError{Message: "decoding record sequence", Cause: err}
	}

	recs := make([]Record, 0, len(raw))
	for i, m := range raw {
		rec, err := recordFromMap(m)
		if err != nil {
			return nil, &recerrors.YAMLError{Message: fmt.Sprintf("record %d", i), Cause: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// decodeCSV expects a header row naming the four schema fields, then one row
// per record. Columns bind to fields by header name, never by position, so a
// reordered header still round-trips.
func decodeCSV(input string) ([]Record, error) {
	rows, err := csv.NewReader(strings.NewReader(input)).ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &recerrors.CSVError{Line: pe.Line, Message: "reading rows", Cause: err}
		}
		return nil, &recerrors.CSVError{Message: "reading rows", Cause: err}
	}
	if len(rows) == 0 {
		return nil, &recerrors.CSVError{Message: "missing header row"}
	}

	// Bind columns by header name.
	header := rows[0]
	if len(header) != len(recordFields) {
		return nil, &recerrors.CSVError{Line: 1,
			Message: fmt.Sprintf("header has %d columns, schema has %d fields", len(header), len(recordFields))}
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, fs := range recordFields {
		if _, ok := cols[fs.name]; !ok {
			return nil, &recerrors.CSVError{Line: 1, Message: fmt.Sprintf("header missing %q column", fs.name)}
		}
	}

	recs := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		var rec Record
		for _, fs := range recordFields {
			if err := assignFieldText(&rec, fs, row[cols[fs.name]]); err != nil {
				return nil, &recerrors.CSVError{Line: n + 2, Message: fmt.Sprintf("column %q", fs.name), Cause: err}
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// decodeTOML expects a top-level table whose only key is WrapperKey, bound to
// an array of tables matching the record schema.
func decodeTOML(input string) ([]Record, error) {
	var root map[string]any
	if err := toml.Unmarshal([]byte(input), &root); err != nil {
		return nil, &recerrors.TOMLDecodeError{Message: "decoding document", Cause: err}
	}

	wrapped, ok := root[WrapperKey]
	if !ok {
		return nil, &recerrors.TOMLDecodeError{Message: fmt.Sprintf("missing top-level %q key", WrapperKey)}
	}
	for key := range root {
		if key != WrapperKey {
			return nil, &recerrors.TOMLDecodeError{Message: fmt.Sprintf("unexpected top-level key %q", key)}
		}
	}

	items, err := tableArray(wrapped)
	if err != nil {
		return nil, &recerrors.TOMLDecodeError{Message: fmt.Sprintf("key %q", WrapperKey), Cause: err}
	}

	recs := make([]Record, 0, len(items))
	for i, m := range items {
		rec, err := recordFromMap(m)
		if err != nil {
			return nil, &recerrors.TOMLDecodeError{Message: fmt.Sprintf("record %d", i), Cause: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// tableArray normalizes the decoded wrapper value to a slice of tables.
// go-toml yields []map[string]any for an array of tables and []any for a
// mixed or inline array, so both shapes are accepted.
func tableArray(v any) ([]map[string]any, error) {
	switch arr := v.(type) {
	case []map[string]any:
		return arr, nil
	case []any:
		items := make([]map[string]any, 0, len(arr))
		for i, e := range arr {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("element %d is not a table", i)
			}
			items = append(items, m)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("value is not an array of tables")
	}
}

// recordFromMap builds a Record from a generic mapping, validating shape
// against the declared field table: every schema field present, no extra
// keys, values of the declared kind.
func recordFromMap(m map[string]any) (Record, error) {
	for key := range m {
		if !isRecordField(key) {
			return Record{}, fmt.Errorf("unexpected field %q", key)
		}
	}

	var rec Record
	for _, fs := range recordFields {
		v, ok := m[fs.name]
		if !ok {
			return Record{}, fmt.Errorf("missing field %q", fs.name)
		}
		if err := assignField(&rec, fs, v); err != nil {
			return Record{}, fmt.Errorf("field %q: %w", fs.name, err)
		}
	}
	return rec, nil
}

// assignField coerces a decoded scalar into the record field declared by fs.
func assignField(rec *Record, fs fieldSpec, v any) error {
	switch fs.name {
	case fieldID:
		u, err := toUint(v)
		if err != nil {
			return err
		}
		rec.ID = u
	case fieldName:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		rec.Name = s
	case fieldValue:
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		rec.Value = f
	case fieldActive:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", v)
		}
		rec.Active = b
	default:
		return fmt.Errorf("unknown schema field %q", fs.name)
	}
	return nil
}

// assignFieldText coerces CSV column text into the record field declared by fs.
func assignFieldText(rec *Record, fs fieldSpec, text string) error {
	switch fs.name {
	case fieldID:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return err
		}
		rec.ID = u
	case fieldName:
		rec.Name = text
	case fieldValue:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		rec.Value = f
	case fieldActive:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		rec.Active = b
	default:
		return fmt.Errorf("unknown schema field %q", fs.name)
	}
	return nil
}

// toUint accepts the integer representations the three structured codecs
// produce (YAML ints, TOML int64, JSON json.Number) and rejects negative or
// fractional values.
func toUint(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("negative value %d", n)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	case json.Number:
		// Plain integer literals cover the full uint64 range exactly.
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return u, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", n.String())
		}
		return floatToUint(f)
	case float64:
		return floatToUint(n)
	default:
		return 0, fmt.Errorf("expected unsigned integer, got %T", v)
	}
}

// floatToUint converts a float-form id, rejecting negative, fractional, and
// values past 2^53 where float64 can no longer represent every integer.
func floatToUint(n float64) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative value %v", n)
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("fractional value %v", n)
	}
	if n >= 1<<53 {
		return 0, fmt.Errorf("value %v exceeds exact float precision", n)
	}
	return uint64(n), nil
}

// toFloat accepts any numeric scalar. Integer values are allowed because
// every format renders whole floats without a fraction.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", n.String())
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
