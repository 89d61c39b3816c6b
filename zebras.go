// Package zebras provides record-oriented tabular data wrangling.
// This package is the sole public API for the library.
//
// A Dataset is an ordered slice of Records. Every function returns a new
// value and leaves its inputs untouched:
//
//	idx := zebras.GroupByCol("day", ds)
//	summary, err := zebras.GbDescribe("v", idx)
package zebras

import (
	"github.com/paveg/zebras/internal/aggregate"
	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/groupby"
	"github.com/paveg/zebras/internal/merge"
	"github.com/paveg/zebras/internal/series"
	"github.com/paveg/zebras/internal/value"
)

type (
	// Value is a single cell: a number, text, boolean or the missing marker.
	Value = value.Value
	// Record is one row, an ordered mapping from column name to Value.
	Record = dataset.Record
	// Dataset is an ordered sequence of records.
	Dataset = dataset.Dataset
	// Series is one column, aligned with the rows it was taken from.
	Series = series.Series
	// GroupIndex partitions a dataset by key in first-seen order.
	GroupIndex = groupby.Index
	// Group pairs a key with its records.
	Group = groupby.Group
	// KeyFunc extracts the grouping value of a record.
	KeyFunc = groupby.KeyFunc
	// Step is one stage of a Pipe.
	Step = dataset.Step
	// Direction selects ascending or descending order for SortByCol.
	Direction = dataset.Direction
	// Summary holds the statistics returned by Describe.
	Summary = series.Summary
)

const (
	Ascending  = dataset.Ascending
	Descending = dataset.Descending
)

// Value constructors

// Missing returns the missing marker.
func Missing() Value { return value.Missing() }

// Number wraps a float64.
func Number(f float64) Value { return value.Number(f) }

// Text wraps a string.
func Text(s string) Value { return value.Text(s) }

// Bool wraps a bool.
func Bool(b bool) Value { return value.Bool(b) }

// Rec builds a record from alternating column names and Go scalars.
func Rec(pairs ...any) Record { return dataset.RecordOf(pairs...) }

// NewDataset collects records into a Dataset.
func NewDataset(records ...Record) Dataset { return dataset.New(records...) }

// Grouping and aggregation

// GroupBy partitions ds by the stringified result of keyFn.
func GroupBy(keyFn KeyFunc, ds Dataset) *GroupIndex {
	return groupby.Build(ds, keyFn)
}

// GroupByCol partitions ds by the value of one column.
func GroupByCol(column string, ds Dataset) *GroupIndex {
	return groupby.Build(ds, groupby.ByColumn(column))
}

// GbSum returns {group, sum} per group.
func GbSum(column string, idx *GroupIndex) Dataset { return aggregate.Sum(column, idx) }

// GbMean returns {group, mean} per group; the mean divides by the full
// group size.
func GbMean(column string, idx *GroupIndex) Dataset { return aggregate.Mean(column, idx) }

// GbCount returns {group, count} per group.
func GbCount(column string, idx *GroupIndex) Dataset { return aggregate.Count(column, idx) }

// GbMin returns {group, min} per group.
func GbMin(column string, idx *GroupIndex) Dataset { return aggregate.Min(column, idx) }

// GbMax returns {group, max} per group.
func GbMax(column string, idx *GroupIndex) Dataset { return aggregate.Max(column, idx) }

// GbStd returns {group, std} per group.
func GbStd(column string, idx *GroupIndex) Dataset { return aggregate.Std(column, idx) }

// GbDescribe returns min, max, count, sum, mean and std per group.
func GbDescribe(column string, idx *GroupIndex) (Dataset, error) {
	return aggregate.GroupDescribe(column, idx)
}

// Merge joins left and right on leftOn/rightOn, one row per distinct left
// key. Colliding non-key columns get leftSuffix and rightSuffix.
func Merge(left, right Dataset, leftOn, rightOn, leftSuffix, rightSuffix string) (Dataset, error) {
	return merge.Merge(left, right, leftOn, rightOn, leftSuffix, rightSuffix)
}

// Transformations

// GetCol extracts one column.
func GetCol(column string, ds Dataset) Series { return dataset.GetCol(column, ds) }

// Filter keeps the records for which pred returns true.
func Filter(pred func(Record) bool, ds Dataset) Dataset { return dataset.Filter(pred, ds) }

// Sort returns a stably sorted copy using cmp.
func Sort(cmp func(a, b Record) int, ds Dataset) Dataset { return dataset.Sort(cmp, ds) }

// SortByCol sorts on one column.
func SortByCol(column string, dir Direction, ds Dataset) Dataset {
	return dataset.SortByCol(column, dir, ds)
}

// ParseNums converts columns to numbers.
func ParseNums(columns []string, ds Dataset) Dataset { return dataset.ParseNums(columns, ds) }

// ParseDates converts columns to epoch milliseconds.
func ParseDates(columns []string, ds Dataset) Dataset { return dataset.ParseDates(columns, ds) }

// PickCols keeps only the named columns.
func PickCols(columns []string, ds Dataset) Dataset { return dataset.PickCols(columns, ds) }

// DropCol removes a column.
func DropCol(column string, ds Dataset) Dataset { return dataset.DropCol(column, ds) }

// Concat appends b to a.
func Concat(a, b Dataset) Dataset { return dataset.Concat(a, b) }

// Slice returns records [start, end); negative indices count from the end.
func Slice(start, end int, ds Dataset) Dataset { return dataset.Slice(start, end, ds) }

// Head returns the first n records.
func Head(n int, ds Dataset) Dataset { return dataset.Head(n, ds) }

// Tail returns the last n records.
func Tail(n int, ds Dataset) Dataset { return dataset.Tail(n, ds) }

// AddCol sets a column from aligned values.
func AddCol(column string, values Series, ds Dataset) (Dataset, error) {
	return dataset.AddCol(column, values, ds)
}

// DeriveCol maps every record through fn.
func DeriveCol(fn func(Record) Record, ds Dataset) Dataset { return dataset.DeriveCol(fn, ds) }

// Pipe threads ds through steps, stopping at the first error.
func Pipe(ds Dataset, steps ...Step) (Dataset, error) { return dataset.Pipe(ds, steps...) }

// Pipe steps

// FilterStep keeps the records matching pred.
func FilterStep(pred func(Record) bool) Step { return dataset.FilterStep(pred) }

// SortStep sorts stably with cmp.
func SortStep(cmp func(a, b Record) int) Step { return dataset.SortStep(cmp) }

// SortByColStep sorts on one column.
func SortByColStep(column string, dir Direction) Step { return dataset.SortByColStep(column, dir) }

// ParseNumsStep converts columns to numbers.
func ParseNumsStep(columns ...string) Step { return dataset.ParseNumsStep(columns...) }

// ParseDatesStep converts columns to epoch milliseconds.
func ParseDatesStep(columns ...string) Step { return dataset.ParseDatesStep(columns...) }

// PickColsStep keeps only the named columns.
func PickColsStep(columns ...string) Step { return dataset.PickColsStep(columns...) }

// DropColStep removes a column.
func DropColStep(column string) Step { return dataset.DropColStep(column) }

// SliceStep keeps records [start, end).
func SliceStep(start, end int) Step { return dataset.SliceStep(start, end) }

// HeadStep keeps the first n records.
func HeadStep(n int) Step { return dataset.HeadStep(n) }

// TailStep keeps the last n records.
func TailStep(n int) Step { return dataset.TailStep(n) }

// DeriveColStep maps every record through fn.
func DeriveColStep(fn func(Record) Record) Step { return dataset.DeriveColStep(fn) }

// AddColStep sets column from values computed on the dataset reaching the
// step.
func AddColStep(column string, values func(Dataset) Series) Step {
	return dataset.AddColStep(column, values)
}
