// Package series provides single-column sequences extracted from a dataset
// and the descriptive statistics computed over them.
//
// A Series is positionally aligned with the rows it was extracted from.
// Every numeric reduction first keeps only the values that coerce to a
// number (see value.Value.Float) and then reduces over that subset.
package series

import (
	"github.com/paveg/zebras/internal/value"
	"github.com/samber/lo"
)

// Series is an ordered column of values.
type Series []value.Value

// New creates a Series from arbitrary Go scalars.
func New(values ...any) Series {
	return lo.Map(values, func(v any, _ int) value.Value {
		return value.FromAny(v)
	})
}

// FromFloats creates a numeric Series.
func FromFloats(values []float64) Series {
	return lo.Map(values, func(f float64, _ int) value.Value {
		return value.Number(f)
	})
}

// FromStrings creates a text Series.
func FromStrings(values []string) Series {
	return lo.Map(values, func(s string, _ int) value.Value {
		return value.Text(s)
	})
}

// Len returns the number of values.
func (s Series) Len() int {
	return len(s)
}

// Floats returns the numerically valid values in order, dropping the rest.
func (s Series) Floats() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// Keys returns the key rendering of every value.
func (s Series) Keys() []string {
	return lo.Map(s, func(v value.Value, _ int) string {
		return v.Key()
	})
}

// Interfaces returns the Go representation of every value.
func (s Series) Interfaces() []any {
	return lo.Map(s, func(v value.Value, _ int) any {
		return v.Interface()
	})
}
