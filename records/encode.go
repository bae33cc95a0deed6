package records

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/rectools/recerrors"
)

// tomlDocument wraps the record array under the fixed key TOML requires.
// Only the TOML codec uses a wrapper; see WrapperKey.
type tomlDocument struct {
	Records []Record `toml:"records"`
}

// Encode renders the canonical record sequence as text in the requested
// format. Encoding is all-or-nothing: either every record encodes
// successfully or the call fails with no output produced.
func Encode(recs []Record, f Format) (string, error) {
	if recs == nil {
		recs = []Record{}
	}

	switch f {
	case FormatJSON:
		return encodeJSON(recs)
	case FormatYAML:
		return encodeYAML(recs)
	case FormatCSV:
		return encodeCSV(recs)
	case FormatTOML:
		return encodeTOML(recs)
	default:
		return "", &recerrors.UnsupportedRepresentationError{Format: f.String()}
	}
}

// encodeJSON emits a pretty-printed array of objects with two-space
// indentation, fields in declared order.
func encodeJSON(recs []Record) (string, error) {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", &recerrors.JSONError{Message: "encoding record array", Cause: err}
	}
	return string(data), nil
}

// encodeYAML emits a block-style sequence of mappings, fields in declared
// order.
func encodeYAML(recs []Record) (string, error) {
	data, err := yaml.Marshal(recs)
	if err != nil {
		return "", &recerrors.YAMLError{Message: "encoding record sequence", Cause: err}
	}
	return string(data), nil
}

// encodeCSV emits the header row followed by one row per record. The output
// is built in an in-memory buffer that is released when the call returns;
// storage is never touched. The buffer must validate as UTF-8 before it is
// interpreted as text.
func encodeCSV(recs []Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(fieldNames()); err != nil {
		return "", &recerrors.CSVError{Line: 1, Message: "writing header", Cause: err}
	}
	for i, rec := range recs {
		if err := w.Write(recordRow(rec)); err != nil {
			return "", &recerrors.CSVError{Line: i + 2, Message: "writing record", Cause: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", &recerrors.CSVError{Message: "flushing buffer", Cause: err}
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", &recerrors.TextEncodingError{Message: "CSV buffer is not valid UTF-8"}
	}
	return buf.String(), nil
}

// encodeTOML emits a table with the record array nested under WrapperKey as
// an array of tables.
func encodeTOML(recs []Record) (string, error) {
	data, err := toml.Marshal(tomlDocument{Records: recs})
	if err != nil {
		return "", &recerrors.TOMLEncodeError{Message: "encoding document", Cause: err}
	}
	return string(data), nil
}

// recordRow renders one record as CSV column text in declared field order.
// Booleans render as literal true/false; floats use the shortest
// representation that round-trips at full precision.
func recordRow(rec Record) []string {
	row := make([]string, 0, len(recordFields))
	for _, fs := range recordFields {
		switch fs.name {
		case fieldID:
			row = append(row, strconv.FormatUint(rec.ID, 10))
		case fieldName:
			row = append(row, rec.Name)
		case fieldValue:
			row = append(row, strconv.FormatFloat(rec.Value, 'g', -1, 64))
		case fieldActive:
			row = append(row, strconv.FormatBool(rec.Active))
		}
	}
	return row
}
