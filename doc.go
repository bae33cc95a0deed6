// Package rectools provides conversion of uniform record collections between
// JSON, YAML, CSV, and TOML text encodings.
//
// All four encodings convert through one canonical in-memory representation,
// an ordered sequence of records, so round-tripping a collection through any
// pair of formats preserves every field value and the record order.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - records: the canonical record schema, the format catalog, and the
//     per-format decode/encode functions
//   - converter: the conversion orchestrator composing decode and encode
//   - recerrors: structured error types shared by the codec layer
//
// A synthetic-data package rounds out the module:
//
//   - generator: bulk fake-record and fake-CSV generation for fixtures and
//     load testing
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/rectools
//
// # Quick Start
//
// Convert a JSON collection to YAML:
//
//	import "github.com/erraggy/rectools/converter"
//	import "github.com/erraggy/rectools/records"
//
//	out, err := converter.Convert(input, records.FormatJSON, records.FormatYAML)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Decode and inspect the canonical sequence directly:
//
//	import "github.com/erraggy/rectools/records"
//
//	recs, err := records.Decode(input, records.FormatCSV)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("decoded %d records\n", len(recs))
//
// # Error Handling
//
// All failures are returned as typed errors from the recerrors package,
// usable with errors.Is and errors.As:
//
//	_, err := records.Decode("", records.FormatJSON)
//	if errors.Is(err, recerrors.ErrEmptyInput) {
//		// input was empty or whitespace-only
//	}
//
// # Command Line
//
// The cmd/rectools binary wraps the library for file and stdin conversion,
// bulk CSV generation, and an MCP server exposing the same operations.
// The library itself performs no file or network I/O.
package rectools
