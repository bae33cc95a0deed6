package records

import "strings"

// Format represents one of the supported text encodings.
// The set is closed: exactly the four constants below are valid values.
type Format string

const (
	// FormatJSON indicates a pretty-printed JSON array of record objects
	FormatJSON Format = "json"
	// FormatYAML indicates a block-style YAML sequence of record mappings
	FormatYAML Format = "yaml"
	// FormatCSV indicates header-first CSV with columns bound by header name
	FormatCSV Format = "csv"
	// FormatTOML indicates a TOML table holding the record array under the
	// fixed wrapper key
	FormatTOML Format = "toml"
)

// String returns the canonical display name used in diagnostics and error
// messages.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	case FormatCSV:
		return "CSV"
	case FormatTOML:
		return "TOML"
	default:
		return "unknown"
	}
}

// Formats returns the closed set of supported formats in catalog order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV, FormatTOML}
}

// ParseFormat maps a user-supplied format name to a Format.
// Matching is case-insensitive and accepts "yml" as an alias for YAML.
// The second return value reports whether the name was recognized.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "csv":
		return FormatCSV, true
	case "toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// WrapperKey is the fixed top-level key under which the record array is
// nested when serialized to TOML, and from which it is unwrapped when parsed.
// No other format uses a wrapper. This is a schema rule, not an encoding
// convenience: TOML requires a top-level table rather than a bare array.
const WrapperKey = "records"

// Record is the canonical schema unit that all four encodings convert
// through. All four fields are mandatory in every encoding; a record missing
// any of them is invalid, and so is a record carrying any other field.
//
// The struct tag order mirrors recordFields, which is the declared schema
// consulted by every decoder and encoder branch.
type Record struct {
	// ID is an unsigned record identifier
	ID uint64 `json:"id" yaml:"id" toml:"id"`
	// Name is free text
	Name string `json:"name" yaml:"name" toml:"name"`
	// Value is a floating point measurement
	Value float64 `json:"value" yaml:"value" toml:"value"`
	// Active is a boolean flag
	Active bool `json:"active" yaml:"active" toml:"active"`
}

// Field names of the record schema, shared by every codec branch.
const (
	fieldID     = "id"
	fieldName   = "name"
	fieldValue  = "value"
	fieldActive = "active"
)

// fieldKind classifies a record field for text and scalar coercion.
type fieldKind int

const (
	kindUint fieldKind = iota
	kindString
	kindFloat
	kindBool
)

// fieldSpec declares one record field: its wire name and its kind.
type fieldSpec struct {
	name string
	kind fieldKind
}

// recordFields is the declared record schema in field order. Every decoder
// validates shape against this table and every encoder emits fields in this
// order; no codec branch carries its own field list.
var recordFields = []fieldSpec{
	{fieldID, kindUint},
	{fieldName, kindString},
	{fieldValue, kindFloat},
	{fieldActive, kindBool},
}

// fieldNames returns the schema field names in declared order.
// This is the CSV header row.
func fieldNames() []string {
	names := make([]string, len(recordFields))
	for i, fs := range recordFields {
		names[i] = fs.name
	}
	return names
}

// isRecordField reports whether key names a schema field.
func isRecordField(key string) bool {
	for _, fs := range recordFields {
		if fs.name == key {
			return true
		}
	}
	return false
}
