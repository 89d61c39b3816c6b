package dataset

import (
	"fmt"
	"strings"

	"github.com/paveg/zebras/internal/value"
)

// Record is one row: an ordered mapping from column name to value. The
// order is kept for display only. Records are immutable; every modifier
// returns a new Record and leaves the receiver untouched.
type Record struct {
	keys   []string
	values map[string]value.Value
}

func newRecord(capacity int) Record {
	return Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]value.Value, capacity),
	}
}

// RecordOf builds a record from alternating column names and Go scalars:
//
//	RecordOf("day", "Mon", "v", 10)
//
// It panics when a name is not a string or a value is missing, the same way
// a malformed composite literal would fail to compile.
func RecordOf(pairs ...any) Record {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("dataset: RecordOf needs name/value pairs, got %d arguments", len(pairs)))
	}
	r := newRecord(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("dataset: column name must be a string, got %T", pairs[i]))
		}
		r.set(name, value.FromAny(pairs[i+1]))
	}
	return r
}

// RecordFromValues zips names with values. Extra names get the missing
// marker; extra values are dropped.
func RecordFromValues(names []string, values []value.Value) Record {
	r := newRecord(len(names))
	for i, name := range names {
		v := value.Missing()
		if i < len(values) {
			v = values[i]
		}
		r.set(name, v)
	}
	return r
}

// set mutates r; only called on records under construction.
func (r *Record) set(name string, v value.Value) {
	if _, exists := r.values[name]; !exists {
		r.keys = append(r.keys, name)
	}
	r.values[name] = v
}

func (r Record) clone(extra int) Record {
	c := newRecord(len(r.keys) + extra)
	for _, k := range r.keys {
		c.set(k, r.values[k])
	}
	return c
}

// Keys returns the column names in insertion order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Has reports whether the column is present.
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Get returns the value of a column; absent columns yield Missing and false.
func (r Record) Get(name string) (value.Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Value returns the value of a column or Missing when absent.
func (r Record) Value(name string) value.Value {
	return r.values[name]
}

// With returns a copy with the column set. An existing column keeps its position.
func (r Record) With(name string, v value.Value) Record {
	c := r.clone(1)
	c.set(name, v)
	return c
}

// Without returns a copy without the given columns.
func (r Record) Without(names ...string) Record {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	c := newRecord(len(r.keys))
	for _, k := range r.keys {
		if _, skip := drop[k]; !skip {
			c.set(k, r.values[k])
		}
	}
	return c
}

// Rename returns a copy with column from renamed to to, keeping its
// position. A pre-existing column named to is replaced. Renaming an absent
// column returns an unchanged copy.
func (r Record) Rename(from, to string) Record {
	if !r.Has(from) || from == to {
		return r.clone(0)
	}
	c := newRecord(len(r.keys))
	for _, k := range r.keys {
		switch k {
		case to:
			continue
		case from:
			c.set(to, r.values[from])
		default:
			c.set(k, r.values[k])
		}
	}
	return c
}

// Pick returns a copy with only the named columns, in the order given.
func (r Record) Pick(names ...string) Record {
	c := newRecord(len(names))
	for _, n := range names {
		if v, ok := r.values[n]; ok {
			c.set(n, v)
		}
	}
	return c
}

// Merge returns r overlaid with other: other's fields replace fields of
// the same name in place, and new fields are appended in other's order.
func (r Record) Merge(other Record) Record {
	c := r.clone(len(other.keys))
	for _, k := range other.keys {
		c.set(k, other.values[k])
	}
	return c
}

// Reorder returns a copy whose fields follow names. Names absent from r
// are filled with the missing marker; fields of r not listed are appended
// after them in their original order.
func (r Record) Reorder(names []string) Record {
	c := newRecord(len(names))
	for _, n := range names {
		c.set(n, r.values[n])
	}
	for _, k := range r.keys {
		if !c.Has(k) {
			c.set(k, r.values[k])
		}
	}
	return c
}

// Values returns the values in key order.
func (r Record) Values() []value.Value {
	out := make([]value.Value, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.values[k]
	}
	return out
}

// Equal reports whether both records hold the same columns in the same
// order with equal values.
func (r Record) Equal(o Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k || !r.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// String renders the record as {name: value, ...}.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(r.values[k].String())
	}
	b.WriteByte('}')
	return b.String()
}
