package records

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/rectools/recerrors"
)

func TestEncodeJSON(t *testing.T) {
	out, err := Encode([]Record{{ID: 1, Name: "Alice", Value: 12.34, Active: true}}, FormatJSON)
	require.NoError(t, err)

	want := `[
  {
    "id": 1,
    "name": "Alice",
    "value": 12.34,
    "active": true
  }
]`
	assert.Equal(t, want, out)
}

func TestEncodeYAML(t *testing.T) {
	out, err := Encode([]Record{
		{ID: 1, Name: "Alice", Value: 12.34, Active: true},
		{ID: 2, Name: "Bob", Value: 56.78, Active: false},
	}, FormatYAML)
	require.NoError(t, err)

	// Block-style sequence of mappings, fields in declared order.
	assert.Contains(t, out, "- id: 1\n")
	assert.Contains(t, out, "name: Alice\n")
	assert.Contains(t, out, "- id: 2\n")
	assert.Contains(t, out, "active: false\n")
	assert.NotContains(t, out, "[", "output should be block style, not flow style")

	// Field order within each mapping follows the declared schema.
	idIdx := strings.Index(out, "id:")
	nameIdx := strings.Index(out, "name:")
	valueIdx := strings.Index(out, "value:")
	activeIdx := strings.Index(out, "active:")
	assert.True(t, idIdx < nameIdx && nameIdx < valueIdx && valueIdx < activeIdx,
		"fields should appear in declared order, got:\n%s", out)
}

func TestEncodeCSV(t *testing.T) {
	out, err := Encode([]Record{
		{ID: 1, Name: "Alice", Value: 12.34, Active: true},
		{ID: 2, Name: "Bob", Value: 56.78, Active: false},
	}, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "id,name,value,active\n1,Alice,12.34,true\n2,Bob,56.78,false\n", out)
	assert.True(t, utf8.ValidString(out))
}

func TestEncodeCSVQuoting(t *testing.T) {
	out, err := Encode([]Record{{ID: 1, Name: "Smith, Jane", Value: 1.5, Active: true}}, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "id,name,value,active\n1,\"Smith, Jane\",1.5,true\n", out)
}

func TestEncodeCSVHeaderOnly(t *testing.T) {
	out, err := Encode(nil, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "id,name,value,active\n", out)
}

func TestEncodeTOML(t *testing.T) {
	out, err := Encode([]Record{
		{ID: 1, Name: "Alice", Value: 12.34, Active: true},
		{ID: 2, Name: "Bob", Value: 56.78, Active: false},
	}, FormatTOML)
	require.NoError(t, err)

	// The record array nests under the fixed wrapper key as an array of
	// tables; no other format wraps.
	assert.Equal(t, 2, strings.Count(out, "[["+WrapperKey+"]]"), "got:\n%s", out)
	assert.Contains(t, out, "id = 1\n")
	assert.Contains(t, out, "value = 12.34\n")
	assert.Contains(t, out, "active = false\n")
}

func TestEncodeWholeFloatSurvivesCSV(t *testing.T) {
	// 99.0 textualizes without a fraction and must re-parse to the same value.
	out, err := Encode([]Record{{ID: 3, Name: "Charlie", Value: 99.0, Active: true}}, FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "3,Charlie,99,true\n")

	recs, err := Decode(out, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 99.0, recs[0].Value)
}

func TestEncodeUnknownFormat(t *testing.T) {
	out, err := Encode(sampleRecords, Format("xml"))
	assert.Empty(t, out, "no output on error")
	require.Error(t, err)

	assert.True(t, errors.Is(err, recerrors.ErrUnsupportedRepresentation))
	var unsupErr *recerrors.UnsupportedRepresentationError
	require.True(t, errors.As(err, &unsupErr))
	assert.Equal(t, "unknown", unsupErr.Format)
}
