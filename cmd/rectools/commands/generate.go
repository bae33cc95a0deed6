package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/rectools"
	"github.com/erraggy/rectools/generator"
	"github.com/erraggy/rectools/internal/cliutil"
	"github.com/erraggy/rectools/records"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Rows   int
	Chunk  int
	Seed   uint64
	Output string
	Quiet  bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.IntVar(&flags.Rows, "rows", 0, "number of fake rows to generate (required)")
	fs.IntVar(&flags.Chunk, "chunk", generator.DefaultChunkSize, "rows generated per batch")
	fs.Uint64Var(&flags.Seed, "seed", 0, "seed for deterministic output (0 seeds from entropy)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no progress or diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no progress or diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rectools generate [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate a CSV file of wide fake-person rows for load testing.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  rectools generate -rows 1000\n")
		cliutil.Writef(fs.Output(), "  rectools generate -rows 1000000 -o fake.csv\n")
		cliutil.Writef(fs.Output(), "  rectools generate -rows 100 -seed 42 -o sample.csv\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Rows are generated in batches; large files stream without buffering\n")
		cliutil.Writef(fs.Output(), "  - The same seed always produces the same output\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no positional arguments")
	}

	if flags.Rows < 1 {
		fs.Usage()
		return fmt.Errorf("row count is required (use -rows)")
	}

	g := generator.New()
	g.Seed = flags.Seed
	g.ChunkSize = flags.Chunk
	if !flags.Quiet {
		// Progress goes to stderr so stdout stays clean for piped CSV.
		g.Logger = records.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	var out *bufio.Writer
	if flags.Output != "" {
		f, err := os.OpenFile(flags.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = bufio.NewWriter(f)
	} else {
		out = bufio.NewWriter(os.Stdout)
	}

	startTime := time.Now()
	if err := g.WriteCSV(out, flags.Rows); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "\nrectools version: %s\n", rectools.Version())
		cliutil.Writef(os.Stderr, "Rows: %d\n", flags.Rows)
		if flags.Output != "" {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
		cliutil.Writef(os.Stderr, "Total Time: %v\n", totalTime)
	}

	return nil
}
