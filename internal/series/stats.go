package series

import (
	"math"
	"sort"

	"github.com/paveg/zebras/internal/validation"
	"github.com/paveg/zebras/internal/value"
	"github.com/samber/lo"
)

// Reducer collapses a series into one number. Rolling and Cumulative accept any Reducer.
type Reducer func(Series) float64

// Summary holds the output of Describe.
type Summary struct {
	Count       int
	CountUnique int
	Min         float64
	Max         float64
	Median      float64
	Mean        float64
	Std         float64
}

// Sum adds the numeric values. An empty series sums to 0.
func Sum(s Series) float64 {
	return sumFloats(s.Floats())
}

// Prod multiplies the numeric values. An empty series yields 1.
func Prod(s Series) float64 {
	p := 1.0
	for _, f := range s.Floats() {
		p *= f
	}
	return p
}

// Mean averages the numeric values; NaN when there are none.
func Mean(s Series) float64 {
	return meanFloats(s.Floats())
}

// Median returns the middle numeric value, averaging the two central values
// for even counts; NaN when there are none.
func Median(s Series) float64 {
	fs := s.Floats()
	if len(fs) == 0 {
		return math.NaN()
	}
	sort.Float64s(fs)
	mid := len(fs) / 2
	if len(fs)%2 == 1 {
		return fs[mid]
	}
	return (fs[mid-1] + fs[mid]) / 2
}

// Std returns the sample standard deviation (divisor n-1) of the numeric
// values. Fewer than two numeric values yield NaN.
func Std(s Series) float64 {
	return stdFloats(s.Floats())
}

// Skew returns the sample skewness: the mean cubed deviation divided by
// the cubed sample standard deviation.
func Skew(s Series) float64 {
	return moment(s.Floats(), 3)
}

// Kurt returns the excess kurtosis: the mean fourth-power deviation divided
// by the fourth power of the sample standard deviation, minus 3.
func Kurt(s Series) float64 {
	return moment(s.Floats(), 4) - 3
}

// Min returns the smallest numeric value; +Inf when there are none.
func Min(s Series) float64 {
	m := math.Inf(1)
	for _, f := range s.Floats() {
		m = math.Min(m, f)
	}
	return m
}

// Max returns the largest numeric value; -Inf when there are none.
func Max(s Series) float64 {
	m := math.Inf(-1)
	for _, f := range s.Floats() {
		m = math.Max(m, f)
	}
	return m
}

// Range returns [Min, Max].
func Range(s Series) [2]float64 {
	return [2]float64{Min(s), Max(s)}
}

// Unique returns the distinct values in first-seen order.
func Unique(s Series) Series {
	return lo.Uniq(s)
}

// CountUnique returns the number of distinct values.
func CountUnique(s Series) int {
	return len(Unique(s))
}

// ValueCounts counts occurrences of each value, keyed by its key rendering.
func ValueCounts(s Series) map[string]int {
	return lo.CountValues(s.Keys())
}

// PctChange returns the relative change between consecutive values. The
// first position, and any position touching a non-numeric value, is NaN.
func PctChange(s Series) Series {
	return pairwise(s, func(prev, cur float64) float64 {
		return cur/prev - 1
	})
}

// Diff returns the difference between consecutive values, NaN first.
func Diff(s Series) Series {
	return pairwise(s, func(prev, cur float64) float64 {
		return cur - prev
	})
}

// Rolling applies fn over a trailing window of n values. Positions without
// a full window hold the missing marker.
func Rolling(fn Reducer, n int, s Series) Series {
	out := make(Series, len(s))
	for i := range s {
		if n <= 0 || i+1 < n {
			out[i] = value.Missing()
			continue
		}
		out[i] = value.Number(fn(s[i-n+1 : i+1]))
	}
	return out
}

// Cumulative applies fn over every prefix of s.
func Cumulative(fn Reducer, s Series) Series {
	out := make(Series, len(s))
	for i := range s {
		out[i] = value.Number(fn(s[:i+1]))
	}
	return out
}

// Corr returns the Pearson correlation of two equally long series,
// computed over the positions where both values are numeric.
func Corr(a, b Series) (float64, error) {
	if err := validation.ValidateLength(len(a), len(b), "Corr", "series"); err != nil {
		return math.NaN(), err
	}

	xs := make([]float64, 0, len(a))
	ys := make([]float64, 0, len(b))
	for i := range a {
		x, xok := a[i].Float()
		y, yok := b[i].Float()
		if xok && yok {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	mx, my := meanFloats(xs), meanFloats(ys)
	var products float64
	for i := range xs {
		products += (xs[i] - mx) * (ys[i] - my)
	}
	return products / (float64(len(xs)-1) * stdFloats(xs) * stdFloats(ys)), nil
}

// Describe summarizes a series. Count covers every value, numeric or not.
func Describe(s Series) Summary {
	return Summary{
		Count:       len(s),
		CountUnique: CountUnique(s),
		Min:         Min(s),
		Max:         Max(s),
		Median:      Median(s),
		Mean:        Mean(s),
		Std:         Std(s),
	}
}

func pairwise(s Series, fn func(prev, cur float64) float64) Series {
	out := make(Series, len(s))
	for i := range s {
		if i == 0 {
			out[i] = value.Number(math.NaN())
			continue
		}
		prev, pok := s[i-1].Float()
		cur, cok := s[i].Float()
		if !pok || !cok {
			out[i] = value.Number(math.NaN())
			continue
		}
		out[i] = value.Number(fn(prev, cur))
	}
	return out
}

func sumFloats(fs []float64) float64 {
	var total float64
	for _, f := range fs {
		total += f
	}
	return total
}

func meanFloats(fs []float64) float64 {
	if len(fs) == 0 {
		return math.NaN()
	}
	return sumFloats(fs) / float64(len(fs))
}

func stdFloats(fs []float64) float64 {
	n := len(fs)
	if n < 2 {
		return math.NaN()
	}
	m := meanFloats(fs)
	var squares float64
	for _, f := range fs {
		d := f - m
		squares += d * d
	}
	return math.Sqrt(squares / float64(n-1))
}

// moment returns sum((x-mean)^k)/n divided by std^k.
func moment(fs []float64, k float64) float64 {
	sd := stdFloats(fs)
	m := meanFloats(fs)
	var total float64
	for _, f := range fs {
		total += math.Pow(f-m, k)
	}
	return total / float64(len(fs)) / math.Pow(sd, k)
}
