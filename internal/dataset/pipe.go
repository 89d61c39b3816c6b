package dataset

import (
	"fmt"

	"github.com/paveg/zebras/internal/series"
)

// Step is one stage of a Pipe.
type Step func(Dataset) (Dataset, error)

// Pipe threads ds through steps in order and stops at the first error,
// reporting the index of the failing step.
func Pipe(ds Dataset, steps ...Step) (Dataset, error) {
	out := ds
	for i, step := range steps {
		next, err := step(out)
		if err != nil {
			return nil, fmt.Errorf("pipe step %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// lift adapts an infallible transform to a Step.
func lift(fn func(Dataset) Dataset) Step {
	return func(ds Dataset) (Dataset, error) {
		return fn(ds), nil
	}
}

// FilterStep keeps the records matching pred.
func FilterStep(pred func(Record) bool) Step {
	return lift(func(ds Dataset) Dataset { return Filter(pred, ds) })
}

// SortStep sorts stably with cmp.
func SortStep(cmp func(a, b Record) int) Step {
	return lift(func(ds Dataset) Dataset { return Sort(cmp, ds) })
}

// SortByColStep sorts on column in direction dir.
func SortByColStep(column string, dir Direction) Step {
	return lift(func(ds Dataset) Dataset { return SortByCol(column, dir, ds) })
}

// ParseNumsStep converts the columns to numbers.
func ParseNumsStep(columns ...string) Step {
	return lift(func(ds Dataset) Dataset { return ParseNums(columns, ds) })
}

// ParseDatesStep converts the columns to epoch milliseconds.
func ParseDatesStep(columns ...string) Step {
	return lift(func(ds Dataset) Dataset { return ParseDates(columns, ds) })
}

// PickColsStep keeps only the columns.
func PickColsStep(columns ...string) Step {
	return lift(func(ds Dataset) Dataset { return PickCols(columns, ds) })
}

// DropColStep removes column.
func DropColStep(column string) Step {
	return lift(func(ds Dataset) Dataset { return DropCol(column, ds) })
}

// SliceStep keeps records [start, end).
func SliceStep(start, end int) Step {
	return lift(func(ds Dataset) Dataset { return Slice(start, end, ds) })
}

// HeadStep keeps the first n records.
func HeadStep(n int) Step {
	return lift(func(ds Dataset) Dataset { return Head(n, ds) })
}

// TailStep keeps the last n records.
func TailStep(n int) Step {
	return lift(func(ds Dataset) Dataset { return Tail(n, ds) })
}

// DeriveColStep maps every record through fn.
func DeriveColStep(fn func(Record) Record) Step {
	return lift(func(ds Dataset) Dataset { return DeriveCol(fn, ds) })
}

// AddColStep computes the column values from the dataset reaching the step.
func AddColStep(column string, values func(Dataset) series.Series) Step {
	return func(ds Dataset) (Dataset, error) {
		return AddCol(column, values(ds), ds)
	}
}
