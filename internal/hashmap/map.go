package hashmap

import (
	"fmt"
	"github.com/skybi/hashmaps/internal/hashfunc"
)

// DefaultCapacity is the capacity NewDefaultChaining starts with
const DefaultCapacity = 11

// Map represents the interface every map provided by this package has to implement.
// Keys are strings; every map resizes itself when its load factor ceiling is reached.
// Maps are not safe for concurrent use.
type Map[V any] interface {
	// Size returns the amount of stored key-value pairs
	Size() int

	// Capacity returns the amount of buckets of the underlying table (always a prime number)
	Capacity() int

	// Has returns whether a value is assigned to the given key
	Has(key string) bool

	// Lookup returns the value assigned to the given key and a boolean indicating if the key is present
	Lookup(key string) (V, bool)

	// Get returns the value assigned to the given key.
	// May be the type's zero value if the key is absent; use Has or Lookup for this information.
	Get(key string) V

	// Put assigns a value to the given key, replacing a value assigned before
	Put(key string, value V)

	// Remove deletes the value assigned to the given key.
	// Removing an absent key is a no-op.
	Remove(key string)

	// Clear removes all key-value pairs while keeping the capacity
	Clear()

	// TableLoad returns the current load factor (size / capacity)
	TableLoad() float64

	// EmptyBuckets returns the amount of empty buckets
	EmptyBuckets() int

	// ResizeTable rebuilds the table with the next prime capacity >= newCapacity.
	// Invalid targets are ignored.
	ResizeTable(newCapacity int)

	// KeysAndValues returns all stored key-value pairs in table order
	KeysAndValues() []Pair[V]

	// String renders the whole table, one bucket per line
	String() string
}

// Pair represents a single key-value pair returned by Map.KeysAndValues
type Pair[V any] struct {
	Key   string
	Value V
}

// String renders the pair as `(key, value)`
func (pair Pair[V]) String() string {
	return fmt.Sprintf("(%s, %v)", pair.Key, pair.Value)
}

// bucketIndex maps a hash value onto the range [0, capacity)
func bucketIndex(hash hashfunc.Func, key string, capacity int) int {
	return int(hash(key) % uint64(capacity))
}
