// Package aggregate computes per-group metrics over a groupby.Index.
//
// Every function returns one row per group, in index key order, shaped
// {group: key, <metric>: value}. Numeric metrics coerce each value first
// and reduce over the values that coerce; the rest are skipped.
package aggregate

import (
	"math"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/groupby"
	"github.com/paveg/zebras/internal/series"
	"github.com/paveg/zebras/internal/value"
)

// Output field names.
const (
	FieldGroup = "group"
	FieldSum   = "sum"
	FieldMean  = "mean"
	FieldCount = "count"
	FieldMin   = "min"
	FieldMax   = "max"
	FieldStd   = "std"
)

// metric reduces the column of one group.
type metric func(col series.Series, group dataset.Dataset) value.Value

func byGroup(column string, idx *groupby.Index, field string, fn metric) dataset.Dataset {
	out := make(dataset.Dataset, 0, idx.Len())
	for _, g := range idx.Groups() {
		col := dataset.GetCol(column, g.Records)
		out = append(out, dataset.RecordOf(FieldGroup, g.Key).With(field, fn(col, g.Records)))
	}
	return out
}

// Sum adds the numeric values of column in each group.
func Sum(column string, idx *groupby.Index) dataset.Dataset {
	return byGroup(column, idx, FieldSum, func(col series.Series, _ dataset.Dataset) value.Value {
		return value.Number(series.Sum(col))
	})
}

// Mean divides each group's sum by its total row count, so rows whose
// value is not numeric still count towards the denominator.
func Mean(column string, idx *groupby.Index) dataset.Dataset {
	return byGroup(column, idx, FieldMean, func(col series.Series, g dataset.Dataset) value.Value {
		return value.Number(series.Sum(col) / float64(len(g)))
	})
}

// Count returns the number of rows in each group, whatever their values.
func Count(column string, idx *groupby.Index) dataset.Dataset {
	return byGroup(column, idx, FieldCount, func(_ series.Series, g dataset.Dataset) value.Value {
		return value.Int(len(g))
	})
}

// Min reduces the raw values of each group starting from +Inf. A value
// replaces the running minimum only when it compares lower numerically,
// so non-numeric values never win and a winning numeric text is returned
// unchanged as text.
func Min(column string, idx *groupby.Index) dataset.Dataset {
	return byGroup(column, idx, FieldMin, func(col series.Series, _ dataset.Dataset) value.Value {
		return extreme(col, math.Inf(1), value.Less)
	})
}

// Max mirrors Min, starting from -Inf.
func Max(column string, idx *groupby.Index) dataset.Dataset {
	return byGroup(column, idx, FieldMax, func(col series.Series, _ dataset.Dataset) value.Value {
		return extreme(col, math.Inf(-1), func(a, b value.Value) bool { return value.Less(b, a) })
	})
}

func extreme(col series.Series, seed float64, better func(candidate, current value.Value) bool) value.Value {
	acc := value.Number(seed)
	for _, v := range col {
		if better(v, acc) {
			acc = v
		}
	}
	return acc
}

// Std returns the sample standard deviation of the numeric values in
// each group; groups with fewer than two numeric values yield NaN.
func Std(column string, idx *groupby.Index) dataset.Dataset {
	return byGroup(column, idx, FieldStd, func(col series.Series, _ dataset.Dataset) value.Value {
		return value.Number(series.Std(col))
	})
}
