// Package dataset provides the record-oriented table model: a Dataset is
// an ordered sequence of Records that normally share one column set.
//
// Column uniformity is not enforced. Functions that need a column set use
// Columns, the union of every record's columns in first-seen order, and
// read absent fields as the missing marker.
//
// Every function returns a new Dataset; inputs are never modified.
package dataset

import (
	"github.com/paveg/zebras/internal/series"
	"github.com/paveg/zebras/internal/value"
	"github.com/samber/lo"
)

// Dataset is an ordered sequence of records.
type Dataset []Record

// New collects records into a Dataset.
func New(records ...Record) Dataset {
	return append(Dataset(nil), records...)
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d)
}

// Columns returns the union of column names in first-seen order.
func (d Dataset) Columns() []string {
	seen := make(map[string]struct{})
	cols := make([]string, 0)
	for _, r := range d {
		for _, k := range r.keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// HasColumn reports whether any record carries the column.
func (d Dataset) HasColumn(name string) bool {
	return lo.ContainsBy(d, func(r Record) bool {
		return r.Has(name)
	})
}

// Width returns the number of distinct columns.
func (d Dataset) Width() int {
	return len(d.Columns())
}

// Equal reports whether both datasets hold equal records in the same order.
func (d Dataset) Equal(o Dataset) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !d[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// GetCol extracts one column as a Series aligned with the rows. Records
// without the column contribute the missing marker.
func GetCol(column string, ds Dataset) series.Series {
	return lo.Map(ds, func(r Record, _ int) value.Value {
		return r.Value(column)
	})
}
