package dataset

import (
	"math"
	"slices"

	"github.com/paveg/zebras/internal/dates"
	"github.com/paveg/zebras/internal/series"
	"github.com/paveg/zebras/internal/validation"
	"github.com/paveg/zebras/internal/value"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Direction selects the order used by SortByCol.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter keeps the records for which pred returns true.
func Filter(pred func(Record) bool, ds Dataset) Dataset {
	return lo.Filter(ds, func(r Record, _ int) bool {
		return pred(r)
	})
}

// Sort returns a stably sorted copy. cmp follows the slices.SortFunc
// convention: negative when a sorts before b.
func Sort(cmp func(a, b Record) int, ds Dataset) Dataset {
	out := New(ds...)
	slices.SortStableFunc(out, cmp)
	return out
}

// SortByCol sorts by one column. Any direction other than Ascending sorts
// descending. Numeric values order before non-numeric ones, which order
// by their text; the missing marker always sorts last.
func SortByCol(column string, dir Direction, ds Dataset) Dataset {
	sign := -1
	if dir == Ascending {
		sign = 1
	}
	return Sort(func(a, b Record) int {
		av, bv := a.Value(column), b.Value(column)
		switch {
		case av.IsMissing() && bv.IsMissing():
			return 0
		case av.IsMissing():
			return 1
		case bv.IsMissing():
			return -1
		}
		return sign * compareValues(av, bv)
	}, ds)
}

func compareValues(a, b value.Value) int {
	af, aok := a.Float()
	bf, bok := b.Float()
	switch {
	case aok && bok:
		return compareOrdered(af, bf)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return compareOrdered(a.Key(), b.Key())
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseNums converts the named columns to numbers. Values that cannot be
// read as numbers, blank text included, become NaN; missing values stay
// missing.
func ParseNums(columns []string, ds Dataset) Dataset {
	return convertColumns(columns, ds, func(v value.Value) value.Value {
		if s, ok := v.Str(); ok {
			if f, ok := value.ParseNumber(s); ok {
				return value.Number(f)
			}
			return value.Number(math.NaN())
		}
		if f, ok := v.Float(); ok {
			return value.Number(f)
		}
		return value.Number(math.NaN())
	})
}

// ParseDates converts the named columns to epoch milliseconds. Values
// that cannot be parsed become NaN; missing values stay missing.
func ParseDates(columns []string, ds Dataset) Dataset {
	return convertColumns(columns, ds, func(v value.Value) value.Value {
		if n, ok := v.Num(); ok {
			return value.Number(n)
		}
		ms, err := dates.Parse(v.Key())
		if err != nil {
			return value.Number(math.NaN())
		}
		return value.Number(float64(ms))
	})
}

func convertColumns(columns []string, ds Dataset, convert func(value.Value) value.Value) Dataset {
	return lo.Map(ds, func(r Record, _ int) Record {
		out := r
		for _, col := range columns {
			v, ok := r.Get(col)
			if !ok || v.IsMissing() {
				continue
			}
			out = out.With(col, convert(v))
		}
		return out
	})
}

// PickCols keeps only the named columns, in the order given.
func PickCols(columns []string, ds Dataset) Dataset {
	return lo.Map(ds, func(r Record, _ int) Record {
		return r.Pick(columns...)
	})
}

// DropCol removes a column from every record.
func DropCol(column string, ds Dataset) Dataset {
	return lo.Map(ds, func(r Record, _ int) Record {
		return r.Without(column)
	})
}

// Concat appends the records of b after those of a.
func Concat(a, b Dataset) Dataset {
	out := make(Dataset, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Slice returns records [start, end). Negative indices count from the
// end; out-of-range bounds are clamped.
func Slice(start, end int, ds Dataset) Dataset {
	n := len(ds)
	start, end = clampIndex(start, n), clampIndex(end, n)
	if start >= end {
		return Dataset{}
	}
	return New(ds[start:end]...)
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// Head returns the first n records.
func Head(n int, ds Dataset) Dataset {
	return Slice(0, max(n, 0), ds)
}

// Tail returns the last n records.
func Tail(n int, ds Dataset) Dataset {
	if n <= 0 {
		return Dataset{}
	}
	return Slice(len(ds)-min(n, len(ds)), len(ds), ds)
}

// AddCol sets column to the positionally aligned values. A length mismatch
// is reported as a validation error instead of a partial result.
func AddCol(column string, values series.Series, ds Dataset) (Dataset, error) {
	if err := validation.NewCompoundValidator(
		validation.NewNameValidator(column, "column", "AddCol"),
		validation.NewLengthValidator(len(ds), len(values), "AddCol", "column values"),
	).Validate(); err != nil {
		return nil, err
	}
	return lo.Map(ds, func(r Record, i int) Record {
		return r.With(column, values[i])
	}), nil
}

// DeriveCol maps every record through fn.
func DeriveCol(fn func(Record) Record, ds Dataset) Dataset {
	return lo.Map(ds, func(r Record, _ int) Record {
		return fn(r)
	})
}
