// Package groupby partitions a dataset into groups keyed by the string
// form of a per-record key.
//
// Keys are kept in first-seen order and records keep their input order
// inside each group, so every aggregate built on an Index is
// deterministic. Key lookup goes through an xxhash bucket table.
package groupby

import (
	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/value"
)

// KeyFunc extracts the grouping value of a record. The value is
// stringified with value.Key, so 1, "1" and 1.0 share a group.
type KeyFunc func(dataset.Record) value.Value

// ByColumn groups on the value of one column. Records without the column
// fall into the missing-marker group.
func ByColumn(column string) KeyFunc {
	return func(r dataset.Record) value.Value {
		return r.Value(column)
	}
}

// Index is a grouping of a dataset. It is built once and never modified.
type Index struct {
	keys   []string
	groups []dataset.Dataset
	table  *keyTable
}

// Build groups ds by keyFn. An empty dataset yields an empty Index.
func Build(ds dataset.Dataset, keyFn KeyFunc) *Index {
	idx := &Index{
		keys:   make([]string, 0),
		groups: make([]dataset.Dataset, 0),
		table:  newKeyTable(len(ds)),
	}
	for _, r := range ds {
		key := keyFn(r).Key()
		slot, ok := idx.table.lookup(key)
		if !ok {
			slot = len(idx.keys)
			idx.keys = append(idx.keys, key)
			idx.groups = append(idx.groups, dataset.Dataset{})
			idx.table.insert(key, slot)
		}
		idx.groups[slot] = append(idx.groups[slot], r)
	}
	return idx
}

// Keys returns the group keys in first-seen order.
func (i *Index) Keys() []string {
	return append([]string(nil), i.keys...)
}

// Len returns the number of groups.
func (i *Index) Len() int {
	return len(i.keys)
}

// Size returns the total number of records across all groups.
func (i *Index) Size() int {
	n := 0
	for _, g := range i.groups {
		n += len(g)
	}
	return n
}

// Group returns the records of key in input order.
func (i *Index) Group(key string) (dataset.Dataset, bool) {
	slot, ok := i.table.lookup(key)
	if !ok {
		return nil, false
	}
	return dataset.New(i.groups[slot]...), true
}

// First returns the first record of the group.
func (i *Index) First(key string) (dataset.Record, bool) {
	slot, ok := i.table.lookup(key)
	if !ok {
		return dataset.Record{}, false
	}
	return i.groups[slot][0], true
}

// Group pairs a key with its records.
type Group struct {
	Key     string
	Records dataset.Dataset
}

// Groups returns every group in key order.
func (i *Index) Groups() []Group {
	out := make([]Group, len(i.keys))
	for slot, key := range i.keys {
		out[slot] = Group{Key: key, Records: dataset.New(i.groups[slot]...)}
	}
	return out
}
