// Package generator produces synthetic record data for fixtures, demos, and
// bulk load testing.
//
// Import path: github.com/erraggy/rectools/generator
//
// Two kinds of output are supported:
//
//   - Records: canonical record sequences suitable for feeding the
//     conversion core (the generator is an external caller of the core, not
//     part of it)
//   - WriteCSV: bulk wide-row fake-person CSV streamed to a caller-supplied
//     io.Writer in chunks, with periodic progress logging for multi-gigabyte
//     runs
//
// Generation is deterministic for a fixed Seed, which keeps fixtures stable
// across runs.
//
// Example:
//
//	g := generator.New()
//	g.Seed = 42
//	recs := g.Records(100)
//	out, err := records.Encode(recs, records.FormatTOML)
package generator
