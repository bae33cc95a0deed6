package converter

import (
	"github.com/erraggy/rectools/records"
)

// ConversionResult contains the results of converting a record collection
// between two formats.
type ConversionResult struct {
	// Output is the converted text in the target format
	Output string
	// SourceFormat is the format the input was decoded from
	SourceFormat records.Format
	// TargetFormat is the format the output was encoded to
	TargetFormat records.Format
	// Records is the decoded canonical sequence the output was encoded from.
	// Callers should treat it as read-only.
	Records []records.Record
	// RecordCount is the number of records converted
	RecordCount int
}

// Converter orchestrates record collection conversion.
// The zero value is ready to use; New applies the defaults explicitly.
type Converter struct {
	// Logger is the structured logger for diagnostic trace output.
	// If nil, logging is disabled (default).
	Logger records.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Converter) log() records.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return records.NopLogger{}
}

// Convert is a convenience function that converts input text from one format
// to another. It's equivalent to creating a Converter with New() and calling
// Convert().
//
// Example:
//
//	out, err := converter.Convert(input, records.FormatJSON, records.FormatCSV)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Convert(input string, from, to records.Format) (string, error) {
	return New().Convert(input, from, to)
}

// Convert decodes input as the from format and encodes the canonical
// sequence in the to format, returning the converted text.
//
// Decode errors take priority over encode errors: encoding is never
// attempted when decoding failed. Both stages are all-or-nothing, so a
// failed conversion produces no output text.
func (c *Converter) Convert(input string, from, to records.Format) (string, error) {
	result, err := c.ConvertDetailed(input, from, to)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// ConvertDetailed performs the same conversion as Convert and returns the
// detailed result, including the decoded canonical sequence.
func (c *Converter) ConvertDetailed(input string, from, to records.Format) (*ConversionResult, error) {
	log := c.log().With("source", from.String(), "target", to.String())
	log.Debug("converting record collection")

	recs, err := records.Decode(input, from)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded canonical sequence", "records", len(recs))

	output, err := records.Encode(recs, to)
	if err != nil {
		return nil, err
	}
	log.Debug("encoded output", "bytes", len(output))

	return &ConversionResult{
		Output:       output,
		SourceFormat: from,
		TargetFormat: to,
		Records:      recs,
		RecordCount:  len(recs),
	}, nil
}
