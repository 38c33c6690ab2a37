//nolint:testpackage // Need access to internal types
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

func TestParseQueryArgs(t *testing.T) {
	t.Parallel()

	t.Run("keeps order and empty values", func(t *testing.T) {
		t.Parallel()

		query, err := parseQueryArgs([]string{"id=5f1", "slide=s1", "note=a=b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "slide", "note"}, query.Keys())

		value, ok := query.Get("note")
		require.True(t, ok)
		assert.Equal(t, "a=b", value)
	})

	t.Run("no args", func(t *testing.T) {
		t.Parallel()

		query, err := parseQueryArgs(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, query.Len())
	})

	for _, arg := range []string{"id", "=value"} {
		t.Run("invalid "+arg, func(t *testing.T) {
			t.Parallel()

			_, err := parseQueryArgs([]string{arg})
			require.ErrorIs(t, err, constants.ErrInvalidQueryArg)
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "nil", value: nil, want: NotAvailable},
		{name: "string", value: "slide-1", want: "slide-1"},
		{name: "bool", value: true, want: "true"},
		{name: "integral float", value: float64(12), want: "12"},
		{name: "fraction", value: 0.25, want: "0.25"},
		{name: "object", value: map[string]interface{}{"a": 1.0}, want: `{"a":1}`},
		{name: "list", value: []interface{}{"x", "y"}, want: `["x","y"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, formatCell(tt.value))
		})
	}

	t.Run("truncates long values", func(t *testing.T) {
		t.Parallel()

		cell := formatCell(strings.Repeat("x", constants.MaxCellWidth*2))
		assert.Len(t, cell, constants.MaxCellWidth)
		assert.True(t, strings.HasSuffix(cell, "..."))
	})
}

func TestRecordColumns(t *testing.T) {
	t.Parallel()

	records := []castore.Record{
		{"name": "a", "_id": "1"},
		{"slide": "s1", "footprint": 4.0},
	}

	assert.Equal(t, []string{"_id", "footprint", "name", "slide"}, recordColumns(records))
	assert.Equal(t, []string{"name"}, recordColumns([]castore.Record{{"name": "a"}}))
}

func TestColumnTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ID", columnTitle("_id"))
	assert.Equal(t, "Execution Id", columnTitle("execution_id"))
	assert.Equal(t, "Footprint", columnTitle("footprint"))
}

func TestOutputData(t *testing.T) {
	t.Parallel()

	records := []interface{}{
		map[string]interface{}{"_id": "m1", "name": "tumor"},
		map[string]interface{}{"_id": "m2", "name": "stroma"},
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, records, OutputFormatJSON))
		assert.JSONEq(t, `[{"_id":"m1","name":"tumor"},{"_id":"m2","name":"stroma"}]`, buf.String())
		assert.Contains(t, buf.String(), "\n  {")
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, records, OutputFormatYAML))
		assert.Contains(t, buf.String(), "- _id: m1")
		assert.Contains(t, buf.String(), "name: stroma")
	})

	t.Run("table of records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, records, OutputFormatTable))
		assert.Contains(t, buf.String(), "m1")
		assert.Contains(t, buf.String(), "stroma")
	})

	t.Run("table of scalars", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, []interface{}{"human", "computer"}, OutputFormatTable))
		assert.Contains(t, buf.String(), "human")
		assert.Contains(t, buf.String(), "computer")
	})

	t.Run("table of a single record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, map[string]interface{}{"_id": "c1"}, OutputFormatTable))
		assert.Contains(t, buf.String(), "c1")
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, []interface{}{}, OutputFormatTable))
		assert.Equal(t, "No records found\n", buf.String())

		buf.Reset()
		require.NoError(t, outputData(&buf, nil, OutputFormatTable))
		assert.Equal(t, "No records found\n", buf.String())
	})

	t.Run("scalar table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputData(&buf, "ok", OutputFormatTable))
		assert.Equal(t, "ok\n", buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		err := outputData(&bytes.Buffer{}, records, "xml")
		require.ErrorIs(t, err, ErrUnknownOutput)
	})
}

func TestOutputResult(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputResult(&buf, &castore.Result{Data: []interface{}{"a"}}, OutputFormatJSON))
		assert.JSONEq(t, `["a"]`, buf.String())
	})

	t.Run("failure envelope", func(t *testing.T) {
		t.Parallel()

		res := &castore.Result{Failure: &castore.Failure{StatusCode: 404, Text: "Not Found", URL: "http://h/data/Mark/get?id=x"}}

		var buf bytes.Buffer
		err := outputResult(&buf, res, OutputFormatTable)
		require.ErrorIs(t, err, constants.ErrRequestFailed)
		assert.Equal(t, 404, castore.StatusCode(err))
		assert.JSONEq(t, `{"error":true,"text":"Not Found","url":"http://h/data/Mark/get?id=x"}`, buf.String())
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, outputResult(&buf, nil, OutputFormatJSON))
		assert.Equal(t, "null\n", buf.String())
	})
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		record, err := parseRecord([]byte(`{"provenance":{"image":{"slide":"s1"}},"footprint":12}`))
		require.NoError(t, err)
		assert.Equal(t, 12.0, record["footprint"])
		assert.Equal(t, map[string]interface{}{"image": map[string]interface{}{"slide": "s1"}}, record["provenance"])
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		record, err := parseRecord([]byte("name: tumor\ncount: 3\ntags:\n  - a\n  - 2\n"))
		require.NoError(t, err)
		assert.Equal(t, "tumor", record["name"])
		assert.Equal(t, 3.0, record["count"])
		assert.Equal(t, []interface{}{"a", 2.0}, record["tags"])
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		_, err := parseRecord([]byte(`[1, 2]`))
		require.ErrorIs(t, err, constants.ErrNotAnObject)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := parseRecord([]byte(`{"a": [`))
		require.Error(t, err)
	})
}

func TestParseRecords(t *testing.T) {
	t.Parallel()

	records, err := parseRecords([]byte(`[{"_id":"a"},{"_id":"b"}]`))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = parseRecords([]byte("_id: a\n"))
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = parseRecords([]byte(`[]`))
	require.ErrorIs(t, err, ErrEmptyRecordSet)

	_, err = parseRecords([]byte(`[{"_id":"a"}, 3]`))
	require.ErrorIs(t, err, constants.ErrNotAnObject)
	assert.Contains(t, err.Error(), "item 1")

	_, err = parseRecords([]byte(`"text"`))
	require.ErrorIs(t, err, constants.ErrNotAnObject)
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("inline data wins", func(t *testing.T) {
		t.Parallel()

		raw, err := readInput(strings.NewReader(`{"ignored":true}`), `{"a":1}`, "")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(raw))
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mark.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"_id":"m1"}`), 0o600))

		raw, err := readInput(nil, "", path)
		require.NoError(t, err)
		assert.Equal(t, `{"_id":"m1"}`, string(raw))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := readInput(nil, "", filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("dash reads the reader", func(t *testing.T) {
		t.Parallel()

		raw, err := readInput(strings.NewReader("name: x\n"), "", "-")
		require.NoError(t, err)
		assert.Equal(t, "name: x\n", string(raw))
	})

	t.Run("reader", func(t *testing.T) {
		t.Parallel()

		raw, err := readInput(strings.NewReader(`{"b":2}`), "", "")
		require.NoError(t, err)
		assert.Equal(t, `{"b":2}`, string(raw))
	})

	t.Run("blank reader", func(t *testing.T) {
		t.Parallel()

		_, err := readInput(strings.NewReader("  \n"), "", "")
		require.ErrorIs(t, err, constants.ErrRecordRequired)
	})
}

func TestJSONFlag(t *testing.T) {
	t.Parallel()

	assert.Nil(t, jsonFlag(""))
	assert.Equal(t, []interface{}{1.0, 2.0}, jsonFlag("[1,2]"))
	assert.Equal(t, map[string]interface{}{"mode": "gradient"}, jsonFlag(`{"mode":"gradient"}`))
	assert.Equal(t, "plain", jsonFlag("plain"))
}
