package aggregate

import (
	"fmt"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/groupby"
	"github.com/paveg/zebras/internal/merge"
)

// Func is the common shape of the per-group metrics.
type Func func(column string, idx *groupby.Index) dataset.Dataset

// describeChain is the order in which metrics are joined onto the result.
var describeChain = []Func{Min, Max, Count, Sum, Mean, Std}

// GroupDescribe joins min, max, count, sum, mean and std of column into
// one row per group with columns group, min, max, count, sum, mean, std.
func GroupDescribe(column string, idx *groupby.Index) (dataset.Dataset, error) {
	out := describeChain[0](column, idx)
	for _, fn := range describeChain[1:] {
		next, err := merge.Merge(out, fn(column, idx), FieldGroup, FieldGroup, "", "")
		if err != nil {
			return nil, fmt.Errorf("describe %q: %w", column, err)
		}
		out = next
	}
	return out, nil
}
