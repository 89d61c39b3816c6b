package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/goccy/go-json"
	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/value"
)

// Read reads JSON data and returns a Dataset. Objects keep their key
// order; numbers, strings and booleans map to the matching value kinds
// and null to the missing marker. Nested objects and arrays are rejected.
func (r *JSONReader) Read() (dataset.Dataset, error) {
	dec := json.NewDecoder(r.reader)

	var (
		ds  dataset.Dataset
		err error
	)
	switch r.options.Format {
	case JSONArray:
		ds, err = r.readJSONArray(dec)
	case JSONLines:
		ds, err = r.readJSONLines(dec)
	default:
		return nil, fmt.Errorf("unsupported JSON format: %d", r.options.Format)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("read json", "rows", len(ds), "columns", ds.Width())
	return ds, nil
}

func (r *JSONReader) limitReached(n int) bool {
	return r.options.MaxRecords > 0 && n >= r.options.MaxRecords
}

// readJSONArray reads JSON array format.
func (r *JSONReader) readJSONArray(dec *json.Decoder) (dataset.Dataset, error) {
	if err := expectDelim(dec, "["); err != nil {
		return nil, fmt.Errorf("reading JSON array: %w", err)
	}

	ds := dataset.Dataset{}
	for dec.More() && !r.limitReached(len(ds)) {
		if err := expectDelim(dec, "{"); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(ds), err)
		}
		rec, err := readObject(dec)
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(ds), err)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// readJSONLines reads JSON Lines format.
func (r *JSONReader) readJSONLines(dec *json.Decoder) (dataset.Dataset, error) {
	ds := dataset.Dataset{}
	for !r.limitReached(len(ds)) {
		err := expectDelim(dec, "{")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading JSON line %d: %w", len(ds)+1, err)
		}
		rec, err := readObject(dec)
		if err != nil {
			return nil, fmt.Errorf("reading JSON line %d: %w", len(ds)+1, err)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

func expectDelim(dec *json.Decoder, delim string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(fmt.Stringer); !ok || d.String() != delim {
		return fmt.Errorf("expected %q, got %v", delim, tok)
	}
	return nil
}

// readObject reads the members of an object whose opening brace has
// already been consumed.
func readObject(dec *json.Decoder) (dataset.Record, error) {
	rec := dataset.Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return dataset.Record{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return dataset.Record{}, fmt.Errorf("expected object key, got %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return dataset.Record{}, err
		}
		v, err := tokenValue(tok)
		if err != nil {
			return dataset.Record{}, fmt.Errorf("column %q: %w", key, err)
		}
		rec = rec.With(key, v)
	}
	if err := expectDelim(dec, "}"); err != nil {
		return dataset.Record{}, err
	}
	return rec, nil
}

func tokenValue(tok any) (value.Value, error) {
	switch t := tok.(type) {
	case nil:
		return value.Missing(), nil
	case string:
		return value.Text(t), nil
	case bool:
		return value.Bool(t), nil
	case float64:
		return value.Number(t), nil
	case fmt.Stringer:
		return value.Value{}, fmt.Errorf("nested %s values are not supported", t)
	default:
		return value.FromAny(t), nil
	}
}

// Write writes the Dataset to JSON format. Objects keep the record's key
// order; missing values and non-finite numbers are written as null.
func (w *JSONWriter) Write(ds dataset.Dataset) error {
	var buf bytes.Buffer

	switch w.options.Format {
	case JSONArray:
		buf.WriteByte('[')
		for i, rec := range ds {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeObject(&buf, rec); err != nil {
				return fmt.Errorf("marshaling record %d: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case JSONLines:
		for i, rec := range ds {
			if err := writeObject(&buf, rec); err != nil {
				return fmt.Errorf("marshaling record %d: %w", i, err)
			}
			buf.WriteByte('\n')
		}
	default:
		return fmt.Errorf("unsupported JSON format: %d", w.options.Format)
	}

	if _, err := w.writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}

	slog.Debug("wrote json", "rows", len(ds))
	return nil
}

func writeObject(buf *bytes.Buffer, rec dataset.Record) error {
	buf.WriteByte('{')
	for i, key := range rec.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(jsonValue(rec.Value(key)))
		if err != nil {
			return fmt.Errorf("column %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return nil
}

func jsonValue(v value.Value) any {
	if f, ok := v.Num(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v.Interface()
}
