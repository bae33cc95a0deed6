// Package records defines the canonical record schema and the per-format
// decode and encode functions of rectools.
//
// Import path: github.com/erraggy/rectools/records
//
// # Canonical Representation
//
// A collection is an ordered []Record. Order is significant: it is preserved
// across every decode/encode pair (insertion order equals file order). The
// canonical sequence is the only intermediate state between formats; no
// format decodes or encodes through another format directly.
//
// # Formats
//
// Four encodings are supported, enumerated by [Format]:
//
//   - [FormatJSON]: array of record objects, pretty-printed on encode
//   - [FormatYAML]: block-style sequence of record mappings
//   - [FormatCSV]: header row naming the four fields, columns bound by
//     header name (never by position)
//   - [FormatTOML]: top-level table with the record array nested under the
//     fixed [WrapperKey]
//
// # Strictness
//
// Decoding is all-or-nothing. Every record must carry exactly the four
// schema fields; missing fields, extra fields (including nested structures),
// and mistyped values fail the whole decode with a typed error from the
// recerrors package. Empty or whitespace-only input fails with
// recerrors.EmptyInputError before any parsing is attempted.
//
// # Example
//
//	recs, err := records.Decode("id,name,value,active\n1,Alice,12.34,true\n", records.FormatCSV)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := records.Encode(recs, records.FormatJSON)
package records
