package converter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/rectools/recerrors"
	"github.com/erraggy/rectools/records"
)

const sampleJSON = `[
  { "id": 1, "name": "Alice", "value": 12.34, "active": true },
  { "id": 2, "name": "Bob", "value": 56.78, "active": false }
]`

func TestConvertJSONToYAML(t *testing.T) {
	out, err := Convert(sampleJSON, records.FormatJSON, records.FormatYAML)
	require.NoError(t, err)

	assert.Contains(t, out, "- id: 1")
	assert.Contains(t, out, "name: Alice")
	assert.Contains(t, out, "name: Bob")

	// The output must decode back to the same sequence.
	recs, err := records.Decode(out, records.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []records.Record{
		{ID: 1, Name: "Alice", Value: 12.34, Active: true},
		{ID: 2, Name: "Bob", Value: 56.78, Active: false},
	}, recs)
}

func TestConvertAllFormatPairs(t *testing.T) {
	want := []records.Record{
		{ID: 1, Name: "Alice", Value: 12.34, Active: true},
		{ID: 2, Name: "Bob", Value: 56.78, Active: false},
	}

	for _, from := range records.Formats() {
		input, err := records.Encode(want, from)
		require.NoError(t, err)

		for _, to := range records.Formats() {
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				out, err := Convert(input, from, to)
				require.NoError(t, err)

				recs, err := records.Decode(out, to)
				require.NoError(t, err)
				assert.Equal(t, want, recs)
			})
		}
	}
}

func TestConvertSameFormatIsIdempotent(t *testing.T) {
	first, err := Convert(sampleJSON, records.FormatJSON, records.FormatJSON)
	require.NoError(t, err)

	second, err := Convert(first, records.FormatJSON, records.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvertDecodeErrorShortCircuits(t *testing.T) {
	// Broken input with a target format that could never encode it: the
	// decode error must surface, proving encode was not attempted.
	out, err := Convert("id,name\n1,Alice\n", records.FormatCSV, records.FormatTOML)
	assert.Empty(t, out, "no output on failed conversion")
	require.Error(t, err)
	assert.True(t, errors.Is(err, recerrors.ErrCSV), "decode error should surface, got %v", err)
}

func TestConvertEmptyInput(t *testing.T) {
	out, err := Convert("   ", records.FormatYAML, records.FormatJSON)
	assert.Empty(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recerrors.ErrEmptyInput))
}

func TestConvertDetailed(t *testing.T) {
	c := New()
	result, err := c.ConvertDetailed(sampleJSON, records.FormatJSON, records.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, records.FormatJSON, result.SourceFormat)
	assert.Equal(t, records.FormatCSV, result.TargetFormat)
	assert.Equal(t, 2, result.RecordCount)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Alice", result.Records[0].Name)
	assert.Equal(t, "id,name,value,active\n1,Alice,12.34,true\n2,Bob,56.78,false\n", result.Output)
}

func TestConvertDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	c := New()
	c.Logger = records.NewSlogAdapter(slog.New(handler))
	_, err := c.Convert(sampleJSON, records.FormatJSON, records.FormatYAML)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "source=JSON")
	assert.Contains(t, out, "target=YAML")
	assert.Contains(t, out, "records=2")
}

func TestConvertWithOptions(t *testing.T) {
	t.Run("string input", func(t *testing.T) {
		result, err := ConvertWithOptions(
			WithInput(sampleJSON),
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatYAML),
		)
		require.NoError(t, err)
		assert.Contains(t, result.Output, "name: Alice")
	})

	t.Run("reader input", func(t *testing.T) {
		result, err := ConvertWithOptions(
			WithReader(strings.NewReader(sampleJSON)),
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatCSV),
		)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Output, "id,name,value,active\n"))
	})

	t.Run("bytes input", func(t *testing.T) {
		result, err := ConvertWithOptions(
			WithBytes([]byte(sampleJSON)),
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatTOML),
		)
		require.NoError(t, err)
		assert.Contains(t, result.Output, "[[records]]")
	})
}

func TestConvertWithOptionsValidation(t *testing.T) {
	t.Run("no input source", func(t *testing.T) {
		_, err := ConvertWithOptions(
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatYAML),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("multiple input sources", func(t *testing.T) {
		_, err := ConvertWithOptions(
			WithInput(sampleJSON),
			WithBytes([]byte(sampleJSON)),
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatYAML),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one input source")
	})

	t.Run("missing source format", func(t *testing.T) {
		_, err := ConvertWithOptions(
			WithInput(sampleJSON),
			WithTargetFormat(records.FormatYAML),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source format is required")
	})

	t.Run("missing target format", func(t *testing.T) {
		_, err := ConvertWithOptions(
			WithInput(sampleJSON),
			WithSourceFormat(records.FormatJSON),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target format is required")
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ConvertWithOptions(
			WithReader(nil),
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatYAML),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reader cannot be nil")
	})

	t.Run("nil bytes", func(t *testing.T) {
		_, err := ConvertWithOptions(
			WithBytes(nil),
			WithSourceFormat(records.FormatJSON),
			WithTargetFormat(records.FormatYAML),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bytes cannot be nil")
	})
}
