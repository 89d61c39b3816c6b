package groupby

import "github.com/cespare/xxhash/v2"

const (
	tableLoadFactor     = 0.75       // load factor before the bucket array grows
	tableGrowthFactor   = 2          // growth factor on resize
	tableCapacityFactor = 1.3        // head room applied to the size estimate
	hashSignBitMask     = 0x7FFFFFFF // keeps bucket arithmetic positive
)

// keyTable maps group keys to their slot in the Index using xxhash
// buckets with separate chaining.
type keyTable struct {
	buckets  [][]tableEntry
	capacity int
	size     int
}

type tableEntry struct {
	key  string
	slot int
}

func newKeyTable(estimatedSize int) *keyTable {
	capacity := nextPowerOfTwo(int(float64(estimatedSize) * tableCapacityFactor))
	return &keyTable{
		buckets:  make([][]tableEntry, capacity),
		capacity: capacity,
	}
}

func (t *keyTable) bucket(key string, capacity int) int {
	hash := xxhash.Sum64String(key)
	//nolint:gosec // capacity is always a positive power of two
	return int((hash & hashSignBitMask) % uint64(capacity))
}

// lookup returns the slot of key.
func (t *keyTable) lookup(key string) (int, bool) {
	for _, e := range t.buckets[t.bucket(key, t.capacity)] {
		if e.key == key {
			return e.slot, true
		}
	}
	return 0, false
}

// insert records key at slot. The caller guarantees key is new.
func (t *keyTable) insert(key string, slot int) {
	idx := t.bucket(key, t.capacity)
	t.buckets[idx] = append(t.buckets[idx], tableEntry{key: key, slot: slot})
	t.size++

	if float64(t.size) > float64(t.capacity)*tableLoadFactor {
		t.resize()
	}
}

func (t *keyTable) resize() {
	newCapacity := t.capacity * tableGrowthFactor
	newBuckets := make([][]tableEntry, newCapacity)
	for _, b := range t.buckets {
		for _, e := range b {
			idx := t.bucket(e.key, newCapacity)
			newBuckets[idx] = append(newBuckets[idx], e)
		}
	}
	t.buckets = newBuckets
	t.capacity = newCapacity
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
