package io

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/series"
	"github.com/paveg/zebras/internal/value"
)

// ToArrowRecord converts ds into an Arrow record with one nullable field
// per column. Column types are inferred from the values: float64 for
// numbers, boolean for booleans and utf8 for anything else. The caller
// must Release the record.
func ToArrowRecord(ds dataset.Dataset, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	columns := ds.Columns()
	fields := make([]arrow.Field, 0, len(columns))
	arrays := make([]arrow.Array, 0, len(columns))
	defer func() {
		for _, arr := range arrays {
			arr.Release()
		}
	}()

	for _, col := range columns {
		s := dataset.GetCol(col, ds)
		dt := series.InferArrowType(s)
		arr, err := series.ToArrow(s, dt, mem)
		if err != nil {
			return nil, fmt.Errorf("converting column %s: %w", col, err)
		}
		arrays = append(arrays, arr)
		fields = append(fields, arrow.Field{Name: col, Type: dt, Nullable: true})
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrays, int64(len(ds))), nil
}

// FromArrowTable converts an Arrow table into a Dataset. Nulls become the
// missing marker.
func FromArrowTable(table arrow.Table) (dataset.Dataset, error) {
	rows := int(table.NumRows())
	names := make([]string, table.NumCols())
	columns := make([]series.Series, table.NumCols())

	for i := range names {
		col := table.Column(i)
		names[i] = col.Name()
		s := make(series.Series, 0, rows)
		for _, chunk := range col.Data().Chunks() {
			part, err := series.FromArrow(chunk)
			if err != nil {
				return nil, fmt.Errorf("converting column %s: %w", col.Name(), err)
			}
			s = append(s, part...)
		}
		columns[i] = s
	}

	ds := make(dataset.Dataset, rows)
	values := make([]value.Value, len(names))
	for row := range ds {
		for i := range columns {
			values[i] = columns[i][row]
		}
		ds[row] = dataset.RecordFromValues(names, values)
	}
	return ds, nil
}
