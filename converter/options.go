package converter

import (
	"fmt"
	"io"

	"github.com/erraggy/rectools/internal/options"
	"github.com/erraggy/rectools/records"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	input  *string
	reader io.Reader
	bytes  []byte

	// Formats (both required)
	source *records.Format
	target *records.Format

	// Configuration options
	logger records.Logger
}

// ConvertWithOptions converts a record collection using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithInput(text),
//	    converter.WithSourceFormat(records.FormatCSV),
//	    converter.WithTargetFormat(records.FormatJSON),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	// Resolve the input source to text. The conversion core itself never
	// performs I/O; draining a caller-supplied reader happens here.
	var input string
	switch {
	case cfg.input != nil:
		input = *cfg.input
	case cfg.bytes != nil:
		input = string(cfg.bytes)
	case cfg.reader != nil:
		data, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, fmt.Errorf("converter: reading input: %w", err)
		}
		input = string(data)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("converter: no input source specified")
	}

	c := &Converter{Logger: cfg.logger}
	return c.ConvertDetailed(input, *cfg.source, *cfg.target)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"converter: must specify an input source (use WithInput, WithBytes, or WithReader)",
		"converter: must specify exactly one input source",
		cfg.input != nil, cfg.bytes != nil, cfg.reader != nil,
	); err != nil {
		return nil, err
	}

	if cfg.source == nil {
		return nil, fmt.Errorf("converter: source format is required (use WithSourceFormat)")
	}
	if cfg.target == nil {
		return nil, fmt.Errorf("converter: target format is required (use WithTargetFormat)")
	}

	return cfg, nil
}

// WithInput specifies a string as the input source
func WithInput(input string) Option {
	return func(cfg *convertConfig) error {
		cfg.input = &input
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return fmt.Errorf("converter: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithReader specifies an io.Reader as the input source.
// The reader is drained before conversion begins.
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return fmt.Errorf("converter: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithSourceFormat sets the format the input text is decoded from
func WithSourceFormat(f records.Format) Option {
	return func(cfg *convertConfig) error {
		cfg.source = &f
		return nil
	}
}

// WithTargetFormat sets the format the output text is encoded to
func WithTargetFormat(f records.Format) Option {
	return func(cfg *convertConfig) error {
		cfg.target = &f
		return nil
	}
}

// WithLogger sets the structured logger for diagnostic trace output
// Default: logging disabled
func WithLogger(logger records.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = logger
		return nil
	}
}
