package io_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/io"
	"github.com/paveg/zebras/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReader(t *testing.T) {
	t.Run("reads JSON array", func(t *testing.T) {
		jsonData := `[
			{"name": "Alice", "age": 25, "active": true, "note": null},
			{"name": "Bob", "age": 30.5, "active": false}
		]`

		ds, err := io.NewJSONReader(strings.NewReader(jsonData), io.DefaultJSONOptions()).Read()
		require.NoError(t, err)
		require.Equal(t, 2, ds.Len())

		assert.Equal(t, []string{"name", "age", "active", "note"}, ds[0].Keys())
		assert.True(t, ds[0].Value("age").Equal(value.Number(25)))
		assert.True(t, ds[0].Value("active").Equal(value.Bool(true)))
		assert.True(t, ds[0].Has("note"))
		assert.True(t, ds[0].Value("note").IsMissing())
		assert.True(t, ds[1].Value("age").Equal(value.Number(30.5)))
		assert.False(t, ds[1].Has("note"))
	})

	t.Run("keeps key order", func(t *testing.T) {
		ds, err := io.NewJSONReader(strings.NewReader(`[{"z": 1, "a": 2, "m": 3}]`), io.DefaultJSONOptions()).Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, ds.Columns())
	})

	t.Run("reads JSON lines", func(t *testing.T) {
		jsonData := "{\"id\": 1}\n\n{\"id\": 2}\n{\"id\": 3}\n"

		options := io.DefaultJSONOptions()
		options.Format = io.JSONLines

		ds, err := io.NewJSONReader(strings.NewReader(jsonData), options).Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, dataset.GetCol("id", ds).Keys())
	})

	t.Run("max records", func(t *testing.T) {
		options := io.DefaultJSONOptions()
		options.MaxRecords = 2

		ds, err := io.NewJSONReader(strings.NewReader(`[{"id":1},{"id":2},{"id":3}]`), options).Read()
		require.NoError(t, err)
		assert.Equal(t, 2, ds.Len())
	})

	t.Run("empty array", func(t *testing.T) {
		ds, err := io.NewJSONReader(strings.NewReader(`[]`), io.DefaultJSONOptions()).Read()
		require.NoError(t, err)
		assert.Empty(t, ds)
	})

	t.Run("rejects nested values", func(t *testing.T) {
		_, err := io.NewJSONReader(strings.NewReader(`[{"tags": ["a"]}]`), io.DefaultJSONOptions()).Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `column "tags"`)
	})

	t.Run("rejects non-object records", func(t *testing.T) {
		_, err := io.NewJSONReader(strings.NewReader(`[1, 2]`), io.DefaultJSONOptions()).Read()
		assert.Error(t, err)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := io.NewJSONReader(strings.NewReader(`[{"a": }]`), io.DefaultJSONOptions()).Read()
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		options := io.DefaultJSONOptions()
		options.Format = io.JSONFormat(99)

		_, err := io.NewJSONReader(strings.NewReader(`[]`), options).Read()
		assert.EqualError(t, err, "unsupported JSON format: 99")
	})
}

func TestJSONWriter(t *testing.T) {
	ds := dataset.New(
		dataset.RecordOf("group", "Mon", "mean", 8.5, "ok", true),
		dataset.RecordOf("group", "Tue", "mean", math.NaN(), "ok", nil),
	)

	t.Run("writes JSON array in key order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, io.NewJSONWriter(&buf, io.DefaultJSONOptions()).Write(ds))

		assert.Equal(t,
			`[{"group":"Mon","mean":8.5,"ok":true},{"group":"Tue","mean":null,"ok":null}]`,
			buf.String())
	})

	t.Run("writes JSON lines", func(t *testing.T) {
		options := io.DefaultJSONOptions()
		options.Format = io.JSONLines

		var buf bytes.Buffer
		require.NoError(t, io.NewJSONWriter(&buf, options).Write(ds[:1]))

		assert.Equal(t, "{\"group\":\"Mon\",\"mean\":8.5,\"ok\":true}\n", buf.String())
	})

	t.Run("empty dataset", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, io.NewJSONWriter(&buf, io.DefaultJSONOptions()).Write(nil))
		assert.Equal(t, "[]", buf.String())
	})

	t.Run("round trip", func(t *testing.T) {
		in := dataset.New(
			dataset.RecordOf("day", "Mon", "v", 10, "flag", false),
			dataset.RecordOf("day", "Tue", "v", -2.25, "flag", nil),
		)

		var buf bytes.Buffer
		require.NoError(t, io.NewJSONWriter(&buf, io.DefaultJSONOptions()).Write(in))

		out, err := io.NewJSONReader(&buf, io.DefaultJSONOptions()).Read()
		require.NoError(t, err)
		assert.True(t, in.Equal(out), "got %v", out)
	})
}
