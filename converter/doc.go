// Package converter provides the conversion orchestrator of rectools.
//
// A conversion is exactly two sequential stages: decode the input text into
// the canonical record sequence, then encode that sequence in the target
// format. There is no loop, no retry, and no intermediate persisted state;
// the canonical sequence is constructed fresh inside the call and discarded
// when it returns. A decode failure short-circuits the call, so encoding is
// never attempted on a failed decode.
//
// # Quick Start
//
// Convert with the plain function:
//
//	out, err := converter.Convert(input, records.FormatJSON, records.FormatYAML)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Or use functional options when you need a reader input, a logger, or the
// detailed result:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithReader(os.Stdin),
//		converter.WithSourceFormat(records.FormatCSV),
//		converter.WithTargetFormat(records.FormatTOML),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("converted %d records\n", result.RecordCount)
//
// # Errors
//
// Failures surface as typed errors from the recerrors package. The
// orchestrator attempts no recovery: every failed conversion yields exactly
// one tagged error and no output text.
//
// # Concurrency
//
// Conversions are fully synchronous and share no state. A Converter may be
// used from multiple goroutines as long as its fields are not mutated
// concurrently.
package converter
