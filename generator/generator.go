package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/rectools/records"
)

// Defaults for bulk CSV generation.
const (
	// DefaultChunkSize is the number of rows generated per batch
	DefaultChunkSize = 1000
	// DefaultLogInterval is the approximate number of bytes written between
	// progress log lines
	DefaultLogInterval = 250 * 1024 * 1024
)

// fakeColumns are the wire names of the wide fake-person row, in column
// order. These are unrelated to the canonical record schema; the bulk CSV
// is load-test ballast, not convertible input.
var fakeColumns = []string{"name", "email", "uuid", "phone", "company", "buzzword", "sentence", "date"}

// Generator produces synthetic records and bulk fake CSV.
type Generator struct {
	// Seed drives all fake value generation. A fixed seed makes output
	// deterministic; 0 seeds from entropy.
	Seed uint64
	// ChunkSize is the number of rows generated per batch during bulk
	// CSV generation. Default: DefaultChunkSize.
	ChunkSize int
	// LogInterval is the approximate byte interval between progress logs
	// during bulk CSV generation. 0 uses DefaultLogInterval; negative
	// disables progress logging.
	LogInterval int
	// Logger is the structured logger for progress output
	// If nil, logging is disabled (default)
	Logger records.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		ChunkSize:   DefaultChunkSize,
		LogInterval: DefaultLogInterval,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (g *Generator) log() records.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return records.NopLogger{}
}

// Header returns the display header row for the wide fake CSV, derived from
// the column names by English title casing.
func Header() []string {
	titler := cases.Title(language.English)
	header := make([]string, len(fakeColumns))
	for i, col := range fakeColumns {
		header[i] = titler.String(col)
	}
	return header
}

// Records returns n synthetic canonical records with sequential ids,
// suitable for feeding the conversion core.
func (g *Generator) Records(n int) []records.Record {
	f := gofakeit.New(g.Seed)
	recs := make([]records.Record, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, records.Record{
			ID:     uint64(i + 1),
			Name:   f.Name(),
			Value:  f.Float64Range(0, 1000),
			Active: f.Bool(),
		})
	}
	return recs
}

// WriteCSV streams rows wide fake-person rows to w as CSV, generating in
// chunks of ChunkSize and logging progress roughly every LogInterval bytes.
// The writer is typically a buffered file handle; the generator itself never
// opens files.
func (g *Generator) WriteCSV(w io.Writer, rows int) error {
	if rows < 0 {
		return fmt.Errorf("generator: rows must be non-negative, got %d", rows)
	}

	chunk := g.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	logInterval := g.LogInterval
	if logInterval == 0 {
		logInterval = DefaultLogInterval
	}

	f := gofakeit.New(g.Seed)
	counter := &countingWriter{w: w}
	cw := csv.NewWriter(counter)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("generator: writing header: %w", err)
	}

	start := time.Now()
	written := 0
	var lastLog int64
	for written < rows {
		n := chunk
		if rest := rows - written; rest < n {
			n = rest
		}
		for i := 0; i < n; i++ {
			if err := cw.Write(fakeRow(f)); err != nil {
				return fmt.Errorf("generator: writing row %d: %w", written+i+1, err)
			}
		}
		written += n

		// Flush per chunk so the byte count reflects actual output, not
		// rows still buffered inside the CSV writer.
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("generator: writing chunk: %w", err)
		}

		if logInterval > 0 && counter.written-lastLog >= int64(logInterval) {
			g.log().Info("generated chunk",
				"rows", written,
				"mb", counter.written/(1024*1024))
			lastLog = counter.written
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("generator: flushing output: %w", err)
	}

	g.log().Debug("bulk CSV generation finished",
		"rows", rows,
		"bytes", counter.written,
		"elapsed", time.Since(start))
	return nil
}

// countingWriter tracks the number of bytes written through it so progress
// logging can report actual output volume.
type countingWriter struct {
	w       io.Writer
	written int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.written += int64(n)
	return n, err
}

// fakeRow renders one wide fake-person row in column order. Newlines inside
// fake values are flattened to spaces so every record stays on one line.
func fakeRow(f *gofakeit.Faker) []string {
	row := make([]string, 0, len(fakeColumns))
	for _, col := range fakeColumns {
		var v string
		switch col {
		case "name":
			v = f.Name()
		case "email":
			v = f.Email()
		case "uuid":
			v = f.UUID()
		case "phone":
			v = f.Phone()
		case "company":
			v = f.Company()
		case "buzzword":
			v = f.BuzzWord()
		case "sentence":
			v = f.Sentence(7)
		case "date":
			v = f.Date().Format(time.DateOnly)
		}
		row = append(row, sanitize(v))
	}
	return row
}

var newlineReplacer = strings.NewReplacer("\n", " ", "\r", " ")

func sanitize(s string) string {
	return newlineReplacer.Replace(s)
}
