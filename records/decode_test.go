package records

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/rectools/recerrors"
)

var sampleRecords = []Record{
	{ID: 1, Name: "Alice", Value: 12.34, Active: true},
	{ID: 2, Name: "Bob", Value: 56.78, Active: false},
	{ID: 3, Name: "Charlie", Value: 99.0, Active: true},
}

const sampleJSON = `[
  { "id": 1, "name": "Alice", "value": 12.34, "active": true },
  { "id": 2, "name": "Bob", "value": 56.78, "active": false },
  { "id": 3, "name": "Charlie", "value": 99.0, "active": true }
]`

const sampleYAML = `- id: 1
  name: Alice
  value: 12.34
  active: true
- id: 2
  name: Bob
  value: 56.78
  active: false
- id: 3
  name: Charlie
  value: 99.0
  active: true
`

const sampleCSV = "id,name,value,active\n1,Alice,12.34,true\n2,Bob,56.78,false\n3,Charlie,99,true\n"

const sampleTOML = `[[records]]
id = 1
name = "Alice"
value = 12.34
active = true

[[records]]
id = 2
name = "Bob"
value = 56.78
active = false

[[records]]
id = 3
name = "Charlie"
value = 99.0
active = true
`

func TestDecode(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatJSON, sampleJSON},
		{FormatYAML, sampleYAML},
		{FormatCSV, sampleCSV},
		{FormatTOML, sampleTOML},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			recs, err := Decode(tt.input, tt.format)
			require.NoError(t, err)
			assert.Equal(t, sampleRecords, recs)
		})
	}
}

// The concrete example from the conversion contract: one CSV row binds to
// one fully-populated record.
func TestDecodeCSVSingleRecord(t *testing.T) {
	recs, err := Decode("id,name,value,active\n1,Alice,12.34,true\n", FormatCSV)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, Record{ID: 1, Name: "Alice", Value: 12.34, Active: true}, recs[0])
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			for _, input := range []string{"", "   ", "\n\t  \n"} {
				recs, err := Decode(input, f)
				assert.Nil(t, recs)
				require.Error(t, err)

				// Must be the empty-input error, never a format-specific
				// parse error.
				assert.True(t, errors.Is(err, recerrors.ErrEmptyInput), "got %v", err)
				var emptyErr *recerrors.EmptyInputError
				require.True(t, errors.As(err, &emptyErr))
				assert.Equal(t, f.String(), emptyErr.Format)
			}
		})
	}
}

func TestDecodeCSVColumnOrderIndependent(t *testing.T) {
	// Columns bind by header name, so a reordered header decodes to the
	// same records.
	input := "active,value,name,id\ntrue,12.34,Alice,1\n"
	recs, err := Decode(input, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: 1, Name: "Alice", Value: 12.34, Active: true}}, recs)
}

func TestDecodeCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"row with too few columns", "id,name,value,active\n1,Alice,12.34\n"},
		{"row with too many columns", "id,name,value,active\n1,Alice,12.34,true,extra\n"},
		{"header missing field", "id,name,value\n1,Alice,12.34\n"},
		{"header with extra column", "id,name,value,active,notes\n1,Alice,12.34,true,hi\n"},
		{"header with unknown name", "id,name,value,enabled\n1,Alice,12.34,true\n"},
		{"bad id", "id,name,value,active\nx,Alice,12.34,true\n"},
		{"negative id", "id,name,value,active\n-1,Alice,12.34,true\n"},
		{"bad value", "id,name,value,active\n1,Alice,twelve,true\n"},
		{"bad active", "id,name,value,active\n1,Alice,12.34,yes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Decode(tt.input, FormatCSV)
			assert.Nil(t, recs, "no partial sequence on error")
			require.Error(t, err)
			assert.True(t, errors.Is(err, recerrors.ErrCSV), "got %v", err)
		})
	}
}

func TestDecodeCSVRowErrorCarriesLine(t *testing.T) {
	_, err := Decode("id,name,value,active\n1,Alice,12.34,true\n2,Bob,oops,false\n", FormatCSV)
	require.Error(t, err)

	var csvErr *recerrors.CSVError
	require.True(t, errors.As(err, &csvErr))
	assert.Equal(t, 3, csvErr.Line)
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `{"id": 1, "name": "Alice", "value": 12.34, "active": true}`},
		{"invalid syntax", `[{"id": 1,]`},
		{"missing field", `[{"id": 1, "name": "Alice", "value": 12.34}]`},
		{"extra field", `[{"id": 1, "name": "Alice", "value": 12.34, "active": true, "notes": "x"}]`},
		{"nested child list", `[{"id": 1, "name": "Alice", "value": 12.34, "active": true, "child": [{"id": 2, "name": "Bob", "value": 56.78, "active": false}]}]`},
		{"fractional id", `[{"id": 1.5, "name": "Alice", "value": 12.34, "active": true}]`},
		{"negative id", `[{"id": -1, "name": "Alice", "value": 12.34, "active": true}]`},
		{"name not a string", `[{"id": 1, "name": 7, "value": 12.34, "active": true}]`},
		{"active not a bool", `[{"id": 1, "name": "Alice", "value": 12.34, "active": "true"}]`},
		{"float id past exact precision", `[{"id": 9.2e18, "name": "Alice", "value": 12.34, "active": true}]`},
		{"trailing data", `[{"id": 1, "name": "Alice", "value": 12.34, "active": true}] true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Decode(tt.input, FormatJSON)
			assert.Nil(t, recs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, recerrors.ErrJSON), "got %v", err)
		})
	}
}

// Ids above 2^53 must decode exactly; a float64 path would round
// 9007199254740993 down to 9007199254740992.
func TestDecodeJSONLargeID(t *testing.T) {
	tests := []struct {
		name string
		id   uint64
	}{
		{"first value float64 cannot hold", 9007199254740993},
		{"max uint64", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := fmt.Sprintf(`[{"id": %d, "name": "big", "value": 1.5, "active": true}]`, tt.id)
			recs, err := Decode(input, FormatJSON)
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, tt.id, recs[0].ID)
		})
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a sequence", "id: 1\nname: Alice\n"},
		{"missing field", "- id: 1\n  name: Alice\n  value: 12.34\n"},
		{"extra field", "- id: 1\n  name: Alice\n  value: 12.34\n  active: true\n  notes: x\n"},
		{"nested child list", "- id: 1\n  name: Alice\n  value: 12.34\n  active: true\n  child:\n    - id: 2\n      name: Bob\n      value: 56.78\n      active: false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Decode(tt.input, FormatYAML)
			assert.Nil(t, recs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, recerrors.ErrYAML), "got %v", err)
		})
	}
}

func TestDecodeYAMLFlowSequence(t *testing.T) {
	input := `[{id: 1, name: Alice, value: 12.34, active: true}]`
	recs, err := Decode(input, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: 1, Name: "Alice", Value: 12.34, Active: true}}, recs)
}

func TestDecodeTOMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing records key", "[[rows]]\nid = 1\nname = \"Alice\"\nvalue = 12.34\nactive = true\n"},
		{"scalar document", "title = \"not a record set\"\n"},
		{"records not an array", "records = 7\n"},
		{"extra top-level key", "title = \"x\"\n\n[[records]]\nid = 1\nname = \"Alice\"\nvalue = 12.34\nactive = true\n"},
		{"missing field", "[[records]]\nid = 1\nname = \"Alice\"\nvalue = 12.34\n"},
		{"extra field", "[[records]]\nid = 1\nname = \"Alice\"\nvalue = 12.34\nactive = true\nnotes = \"x\"\n"},
		{"invalid syntax", "[[records]\nid = 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Decode(tt.input, FormatTOML)
			assert.Nil(t, recs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, recerrors.ErrTOMLDecode), "got %v", err)
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	recs, err := Decode("whatever", Format("xml"))
	assert.Nil(t, recs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recerrors.ErrUnsupportedRepresentation))
}
