package io

import (
	"encoding/csv"
	"fmt"
	"log/slog"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/value"
	"github.com/samber/lo"
)

// Read reads CSV data and returns a Dataset. Every cell becomes a text
// value; rows shorter than the header are padded with the missing marker
// and extra cells are dropped.
func (r *CSVReader) Read() (dataset.Dataset, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment
	csvReader.TrimLeadingSpace = r.options.SkipInitialSpace
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	// Handle empty CSV
	if len(records) == 0 {
		return dataset.Dataset{}, nil
	}

	var headers []string
	dataRows := records

	if r.options.Header {
		headers = records[0]
		dataRows = records[1:]
	} else {
		// Generate default column names
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
	}

	ds := make(dataset.Dataset, 0, len(dataRows))
	for _, row := range dataRows {
		values := lo.Map(row, func(cell string, _ int) value.Value {
			return value.Text(cell)
		})
		ds = append(ds, dataset.RecordFromValues(headers, values))
	}

	slog.Debug("read csv", "rows", len(ds), "columns", len(headers))
	return ds, nil
}

// Write writes the Dataset to CSV format. The header is the union of the
// dataset's columns; missing values are written as empty cells.
func (w *CSVWriter) Write(ds dataset.Dataset) error {
	csvWriter := csv.NewWriter(w.writer)
	csvWriter.Comma = w.options.Delimiter

	columns := ds.Columns()

	// Write headers if required
	if w.options.Header {
		if err := csvWriter.Write(columns); err != nil {
			return fmt.Errorf("writing headers: %w", err)
		}
	}

	// Write data rows
	row := make([]string, len(columns))
	for i, rec := range ds {
		for j, col := range columns {
			row[j] = rec.Value(col).Format(w.options.FloatPrecision, "")
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	slog.Debug("wrote csv", "rows", len(ds), "columns", len(columns))
	return nil
}
