package zebras

import "github.com/paveg/zebras/internal/series"

// Reducer folds a series into one number.
type Reducer = series.Reducer

// Series statistics. Values that do not coerce to numbers are skipped.
var (
	Sum         = series.Sum
	Prod        = series.Prod
	Mean        = series.Mean
	Median      = series.Median
	Std         = series.Std
	Skew        = series.Skew
	Kurt        = series.Kurt
	Min         = series.Min
	Max         = series.Max
	Range       = series.Range
	Unique      = series.Unique
	CountUnique = series.CountUnique
	ValueCounts = series.ValueCounts
	PctChange   = series.PctChange
	Diff        = series.Diff
	Rolling     = series.Rolling
	Cumulative  = series.Cumulative
	Corr        = series.Corr
	Describe    = series.Describe
)

// NewSeries builds a series from Go scalars.
func NewSeries(values ...any) Series { return series.New(values...) }
