package dataset

import (
	"math"
	"testing"

	"github.com/paveg/zebras/internal/errors"
	"github.com/paveg/zebras/internal/series"
	"github.com/paveg/zebras/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(ds Dataset, column string) []float64 {
	out := make([]float64, 0, len(ds))
	for _, r := range ds {
		f, _ := r.Value(column).Float()
		out = append(out, f)
	}
	return out
}

func sample() Dataset {
	return New(
		RecordOf("day", "Mon", "v", "10"),
		RecordOf("day", "Tue", "v", "5"),
		RecordOf("day", "Mon", "v", "7"),
	)
}

func TestFilter(t *testing.T) {
	ds := sample()

	got := Filter(func(r Record) bool { return r.Value("day").Key() == "Mon" }, ds)

	assert.Equal(t, []float64{10, 7}, numbers(got, "v"))
	assert.Len(t, ds, 3)
}

func TestSortByCol(t *testing.T) {
	ds := New(
		RecordOf("v", 3),
		RecordOf("v", "b"),
		RecordOf("v", nil),
		RecordOf("v", 1),
		RecordOf("v", "a"),
		RecordOf("v", "2"),
	)

	asc := SortByCol("v", Ascending, ds)
	keys := GetCol("v", asc).Keys()
	assert.Equal(t, []string{"1", "2", "3", "a", "b", "NA"}, keys)

	desc := SortByCol("v", Descending, ds)
	assert.Equal(t, []string{"b", "a", "3", "2", "1", "NA"}, GetCol("v", desc).Keys())

	other := SortByCol("v", Direction("sideways"), ds)
	assert.True(t, desc.Equal(other))

	assert.Equal(t, "3", GetCol("v", ds).Keys()[0])
}

func TestSortIsStable(t *testing.T) {
	ds := New(
		RecordOf("k", 1, "id", "a"),
		RecordOf("k", 0, "id", "b"),
		RecordOf("k", 1, "id", "c"),
	)

	got := SortByCol("k", Ascending, ds)

	assert.Equal(t, []string{"b", "a", "c"}, GetCol("id", got).Keys())
}

func TestParseNums(t *testing.T) {
	ds := New(
		RecordOf("v", "10", "w", "x"),
		RecordOf("v", "abc", "w", "y"),
		RecordOf("v", nil, "w", "z"),
		RecordOf("v", " ", "w", "blank"),
	)

	got := ParseNums([]string{"v", "absent"}, ds)

	n, ok := got[0].Value("v").Num()
	require.True(t, ok)
	assert.Equal(t, 10.0, n)

	n, ok = got[1].Value("v").Num()
	require.True(t, ok)
	assert.True(t, math.IsNaN(n))

	assert.True(t, got[2].Value("v").IsMissing())

	n, ok = got[3].Value("v").Num()
	require.True(t, ok)
	assert.True(t, math.IsNaN(n))

	assert.False(t, got[0].Has("absent"))
	assert.Equal(t, value.KindText, ds[0].Value("v").Kind())
}

func TestParseDates(t *testing.T) {
	ds := New(
		RecordOf("d", "2010-12-13"),
		RecordOf("d", "not a date"),
		RecordOf("d", 42),
	)

	got := ParseDates([]string{"d"}, ds)

	assert.True(t, got[0].Value("d").Equal(value.Number(1292198400000)))
	n, _ := got[1].Value("d").Num()
	assert.True(t, math.IsNaN(n))
	assert.True(t, got[2].Value("d").Equal(value.Number(42)))
}

func TestPickAndDrop(t *testing.T) {
	ds := New(RecordOf("a", 1, "b", 2, "c", 3))

	assert.Equal(t, []string{"c", "a"}, PickCols([]string{"c", "a"}, ds).Columns())
	assert.Equal(t, []string{"a", "c"}, DropCol("b", ds).Columns())
	assert.Equal(t, []string{"a", "b", "c"}, ds.Columns())
}

func TestConcat(t *testing.T) {
	a := New(RecordOf("v", 1))
	b := New(RecordOf("v", 2), RecordOf("v", 3))

	assert.Equal(t, []float64{1, 2, 3}, numbers(Concat(a, b), "v"))
	assert.Len(t, Concat(nil, nil), 0)
}

func TestSliceHeadTail(t *testing.T) {
	ds := New(RecordOf("v", 0), RecordOf("v", 1), RecordOf("v", 2), RecordOf("v", 3))

	tests := []struct {
		name string
		got  Dataset
		want []float64
	}{
		{"slice middle", Slice(1, 3, ds), []float64{1, 2}},
		{"slice negative start", Slice(-2, 10, ds), []float64{2, 3}},
		{"slice negative end", Slice(0, -1, ds), []float64{0, 1, 2}},
		{"slice inverted", Slice(3, 1, ds), []float64{}},
		{"head", Head(2, ds), []float64{0, 1}},
		{"head beyond length", Head(10, ds), []float64{0, 1, 2, 3}},
		{"head negative", Head(-1, ds), []float64{}},
		{"tail", Tail(2, ds), []float64{2, 3}},
		{"tail beyond length", Tail(9, ds), []float64{0, 1, 2, 3}},
		{"tail zero", Tail(0, ds), []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(tt.got, "v"))
		})
	}
}

func TestAddCol(t *testing.T) {
	ds := sample()

	got, err := AddCol("w", series.New(1, 2, 3), ds)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, numbers(got, "w"))
	assert.False(t, ds.HasColumn("w"))

	_, err = AddCol("w", series.New(1, 2), ds)
	require.Error(t, err)
	var dsErr *errors.DatasetError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "AddCol", dsErr.Op)
	assert.ErrorIs(t, err, errors.ErrMismatchedLength)

	_, err = AddCol("", series.New(1, 2, 3), ds)
	assert.Error(t, err)
}

func TestDeriveCol(t *testing.T) {
	got := DeriveCol(func(r Record) Record {
		f, _ := r.Value("v").Float()
		return r.With("double", value.Number(f*2))
	}, sample())

	assert.Equal(t, []float64{20, 10, 14}, numbers(got, "double"))
}

func TestPipe(t *testing.T) {
	got, err := Pipe(sample(),
		ParseNumsStep("v"),
		FilterStep(func(r Record) bool { return r.Value("day").Key() == "Mon" }),
		SortByColStep("v", Ascending),
		AddColStep("rank", func(ds Dataset) series.Series {
			s := make(series.Series, len(ds))
			for i := range ds {
				s[i] = value.Int(i + 1)
			}
			return s
		}),
		DropColStep("day"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"v", "rank"}, got.Columns())
	assert.Equal(t, []float64{7, 10}, numbers(got, "v"))
	assert.Equal(t, []float64{1, 2}, numbers(got, "rank"))
}

func TestPipeStopsOnError(t *testing.T) {
	called := false
	_, err := Pipe(sample(),
		AddColStep("bad", func(Dataset) series.Series { return series.New(1) }),
		func(ds Dataset) (Dataset, error) {
			called = true
			return ds, nil
		},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe step 0")
	assert.False(t, called)
}
