// Package merge joins two datasets on key columns.
//
// The join is left-restricted and first-match: one output row per distinct
// left key, in first-seen order, built from the first left record and the
// first right record of that key. Left keys without a right match keep
// their left fields and are back-filled with the missing marker.
package merge

import (
	"log/slog"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/groupby"
	"github.com/paveg/zebras/internal/validation"
)

const opName = "Merge"

// Merge joins left and right where left[leftOn] and right[rightOn] share
// a key. Columns present on both sides, other than the key columns, are
// renamed with leftSuffix and rightSuffix. Right fields override left
// fields in the combined row except leftOn, which keeps the left value.
// Every output row carries the full column union in first-seen order.
func Merge(left, right dataset.Dataset, leftOn, rightOn, leftSuffix, rightSuffix string) (dataset.Dataset, error) {
	if err := validation.NewCompoundValidator(
		validation.NewNameValidator(leftOn, "left key column", opName),
		validation.NewNameValidator(rightOn, "right key column", opName),
	).Validate(); err != nil {
		return nil, err
	}
	if len(left) == 0 {
		return dataset.Dataset{}, nil
	}

	collisions := collidingColumns(left, right, leftOn, rightOn)
	leftRenamed := renameColumns(left, collisions, leftSuffix)
	rightRenamed := renameColumns(right, collisions, rightSuffix)
	columns := dataset.Concat(leftRenamed, rightRenamed).Columns()

	leftIdx := groupby.Build(leftRenamed, groupby.ByColumn(leftOn))
	rightIdx := groupby.Build(rightRenamed, groupby.ByColumn(rightOn))

	out := make(dataset.Dataset, 0, leftIdx.Len())
	matched := 0
	for _, key := range leftIdx.Keys() {
		row, _ := leftIdx.First(key)
		if match, ok := rightIdx.First(key); ok {
			row = row.Merge(match.Without(leftOn))
			matched++
		}
		out = append(out, row.Reorder(columns))
	}

	slog.Debug("merged datasets",
		"left_rows", len(left),
		"right_rows", len(right),
		"rows", len(out),
		"matched", matched,
		"collisions", len(collisions),
	)
	return out, nil
}

// collidingColumns returns the columns present on both sides, excluding
// the key columns, in left first-seen order.
func collidingColumns(left, right dataset.Dataset, leftOn, rightOn string) []string {
	rightCols := make(map[string]struct{})
	for _, c := range right.Columns() {
		rightCols[c] = struct{}{}
	}
	out := make([]string, 0)
	for _, c := range left.Columns() {
		if c == leftOn || c == rightOn {
			continue
		}
		if _, ok := rightCols[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// renameColumns appends suffix to each colliding column. A record that
// already holds the suffixed name keeps that value and drops the
// colliding one.
func renameColumns(ds dataset.Dataset, columns []string, suffix string) dataset.Dataset {
	if len(columns) == 0 || suffix == "" {
		return ds
	}
	return dataset.DeriveCol(func(r dataset.Record) dataset.Record {
		for _, c := range columns {
			if r.Has(c + suffix) {
				r = r.Without(c)
				continue
			}
			r = r.Rename(c, c+suffix)
		}
		return r
	}, ds)
}
