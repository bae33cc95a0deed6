// Package recerrors provides structured error types for rectools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the failure categories
// of the conversion pipeline: per-format decode/encode failures, empty input,
// invalid text encoding, and unrepresentable record sequences.
package recerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrJSON indicates a JSON parse or serialize failure.
	ErrJSON = errors.New("JSON error")

	// ErrYAML indicates a YAML parse or serialize failure.
	ErrYAML = errors.New("YAML error")

	// ErrCSV indicates a CSV row, column, or header failure.
	ErrCSV = errors.New("CSV error")

	// ErrTOMLDecode indicates a TOML parse failure.
	ErrTOMLDecode = errors.New("TOML decode error")

	// ErrTOMLEncode indicates a TOML serialize failure.
	ErrTOMLEncode = errors.New("TOML encode error")

	// ErrTextEncoding indicates encoder output that is not valid UTF-8.
	ErrTextEncoding = errors.New("text encoding error")

	// ErrEmptyInput indicates empty or whitespace-only decoder input.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedRepresentation indicates a record sequence that cannot
	// be rendered in the requested format.
	ErrUnsupportedRepresentation = errors.New("unsupported representation")
)

// JSONError represents a failure to parse or serialize a JSON record array.
// This includes syntax errors from the JSON codec and shape violations such
// as missing or unexpected record fields.
type JSONError struct {
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *JSONError) Error() string {
	msg := "JSON error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *JSONError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *JSONError) Is(target error) bool {
	return target == ErrJSON
}

// YAMLError represents a failure to parse or serialize a YAML record sequence.
type YAMLError struct {
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *YAMLError) Error() string {
	msg := "YAML error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *YAMLError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *YAMLError) Is(target error) bool {
	return target == ErrYAML
}

// CSVError represents a failure to read or write CSV records.
// This includes header mismatches, rows whose column count differs from the
// header, and per-column value coercion failures.
type CSVError struct {
	// Line is the 1-based line number where the error occurred (0 if unknown)
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CSVError) Error() string {
	msg := "CSV error"
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CSVError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CSVError) Is(target error) bool {
	return target == ErrCSV
}

// TOMLDecodeError represents a failure to parse a TOML document.
// This includes syntax errors, a missing top-level wrapper key, and shape
// violations inside the record tables.
type TOMLDecodeError struct {
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TOMLDecodeError) Error() string {
	msg := "TOML decode error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TOMLDecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TOMLDecodeError) Is(target error) bool {
	return target == ErrTOMLDecode
}

// TOMLEncodeError represents a failure to serialize records as a TOML document.
type TOMLEncodeError struct {
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TOMLEncodeError) Error() string {
	msg := "TOML encode error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TOMLEncodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TOMLEncodeError) Is(target error) bool {
	return target == ErrTOMLEncode
}

// TextEncodingError represents encoder output that cannot be interpreted as
// valid UTF-8 text. It applies to the in-memory buffer path of the CSV encoder.
type TextEncodingError struct {
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TextEncodingError) Error() string {
	msg := "text encoding error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TextEncodingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TextEncodingError) Is(target error) bool {
	return target == ErrTextEncoding
}

// EmptyInputError indicates that decoder input was empty or whitespace-only.
// It is returned before any format-specific parsing is attempted.
type EmptyInputError struct {
	// Format is the display name of the format the input was declared as
	Format string
}

// Error returns a human-readable error message.
func (e *EmptyInputError) Error() string {
	msg := "empty input"
	if e.Format != "" {
		msg += " for " + e.Format + " format"
	}
	return msg
}

// Unwrap returns nil as EmptyInputError has no underlying cause.
func (e *EmptyInputError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// UnsupportedRepresentationError indicates that a canonical record sequence
// cannot be faithfully rendered in the requested format. The four supported
// formats never trigger it under the current schema; it is reserved for
// future schema extensions and for Format values outside the catalog.
type UnsupportedRepresentationError struct {
	// Format is the display name of the requested format
	Format string
}

// Error returns a human-readable error message.
func (e *UnsupportedRepresentationError) Error() string {
	msg := "unsupported representation"
	if e.Format != "" {
		msg += " in " + e.Format + " format"
	}
	return msg
}

// Unwrap returns nil as UnsupportedRepresentationError has no underlying cause.
func (e *UnsupportedRepresentationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedRepresentationError) Is(target error) bool {
	return target == ErrUnsupportedRepresentation
}
