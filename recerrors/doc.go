// Package recerrors provides structured error types for the rectools library.
//
// Import path: github.com/erraggy/rectools/recerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of conversion
// failures and react to them without string matching.
//
// # Error Types
//
// The package provides one error type per failure category:
//
//   - [JSONError]: JSON parse or serialize failures, including shape violations
//   - [YAMLError]: YAML parse or serialize failures, including shape violations
//   - [CSVError]: CSV row, column, or header failures
//   - [TOMLDecodeError]: TOML parse failures, including a missing wrapper key
//   - [TOMLEncodeError]: TOML serialize failures
//   - [TextEncodingError]: encoder output that is not valid UTF-8 text
//   - [EmptyInputError]: empty or whitespace-only decoder input
//   - [UnsupportedRepresentationError]: a record sequence that cannot be
//     rendered in the requested format
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrJSON]: Matches any [JSONError]
//   - [ErrYAML]: Matches any [YAMLError]
//   - [ErrCSV]: Matches any [CSVError]
//   - [ErrTOMLDecode]: Matches any [TOMLDecodeError]
//   - [ErrTOMLEncode]: Matches any [TOMLEncodeError]
//   - [ErrTextEncoding]: Matches any [TextEncodingError]
//   - [ErrEmptyInput]: Matches any [EmptyInputError]
//   - [ErrUnsupportedRepresentation]: Matches any [UnsupportedRepresentationError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	_, err := records.Decode(input, records.FormatCSV)
//	if errors.Is(err, recerrors.ErrEmptyInput) {
//	    // caller passed an empty document
//	}
//
// Extract error details with errors.As():
//
//	var csvErr *recerrors.CSVError
//	if errors.As(err, &csvErr) {
//	    fmt.Printf("bad row at line %d: %s\n", csvErr.Line, csvErr.Message)
//	}
//
// # Error Chaining
//
// Error types carrying an underlying library diagnostic expose it through the
// Cause field and Unwrap() method, so root causes remain reachable through the
// standard error chain.
package recerrors
