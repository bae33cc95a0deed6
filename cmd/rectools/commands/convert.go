package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/rectools"
	"github.com/erraggy/rectools/converter"
	"github.com/erraggy/rectools/internal/cliutil"
	"github.com/erraggy/rectools/records"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	From   string
	To     string
	Output string
	Quiet  bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.From, "f", "", "source format (json, yaml, csv, toml) (required)")
	fs.StringVar(&flags.From, "from", "", "source format (json, yaml, csv, toml) (required)")
	fs.StringVar(&flags.To, "t", "", "target format (json, yaml, csv, toml) (required)")
	fs.StringVar(&flags.To, "to", "", "target format (json, yaml, csv, toml) (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the converted text, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the converted text, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rectools convert [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a record collection from one format to another.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nSupported Formats:\n")
		cliutil.Writef(fs.Output(), "  json    Array of record objects\n")
		cliutil.Writef(fs.Output(), "  yaml    Sequence of record mappings\n")
		cliutil.Writef(fs.Output(), "  csv     Header row plus one row per record\n")
		cliutil.Writef(fs.Output(), "  toml    Array of tables under the 'records' key\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  rectools convert -f json -t yaml records.json\n")
		cliutil.Writef(fs.Output(), "  rectools convert -f csv -t toml -o records.toml records.csv\n")
		cliutil.Writef(fs.Output(), "  cat records.json | rectools convert -q -f json -t csv - > records.csv\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Conversion is all-or-nothing: a malformed record fails the whole input\n")
		cliutil.Writef(fs.Output(), "  - Records must carry exactly the fields id, name, value, and active\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or '-' for stdin")
	}

	inputPath := fs.Arg(0)

	if flags.From == "" {
		fs.Usage()
		return fmt.Errorf("source format is required (use -f or --from)")
	}
	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target format is required (use -t or --to)")
	}

	from, ok := records.ParseFormat(flags.From)
	if !ok {
		return fmt.Errorf("unknown source format %q (supported: json, yaml, csv, toml)", flags.From)
	}
	to, ok := records.ParseFormat(flags.To)
	if !ok {
		return fmt.Errorf("unknown target format %q (supported: json, yaml, csv, toml)", flags.To)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{inputPath}); err != nil {
			return err
		}
	}

	input, err := ReadInput(inputPath)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result, err := converter.ConvertWithOptions(
		converter.WithInput(input),
		converter.WithSourceFormat(from),
		converter.WithTargetFormat(to),
	)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatInputPath(inputPath), err)
	}

	// Print results (diagnostics always go to stderr, output owns stdout)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Record Collection Converter\n")
		cliutil.Writef(os.Stderr, "===========================\n\n")
		cliutil.Writef(os.Stderr, "rectools version: %s\n", rectools.Version())
		cliutil.Writef(os.Stderr, "Input: %s\n", FormatInputPath(inputPath))
		cliutil.Writef(os.Stderr, "Source Format: %s\n", result.SourceFormat)
		cliutil.Writef(os.Stderr, "Target Format: %s\n", result.TargetFormat)
		cliutil.Writef(os.Stderr, "Records: %d\n", result.RecordCount)
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, []byte(result.Output), 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
	} else {
		if _, err := os.Stdout.WriteString(result.Output); err != nil {
			return fmt.Errorf("writing converted text to stdout: %w", err)
		}
	}

	return nil
}
