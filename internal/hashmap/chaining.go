package hashmap

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/hashmaps/internal/hashfunc"
	"github.com/skybi/hashmaps/internal/linkedlist"
	"github.com/skybi/hashmaps/internal/prime"
	"strings"
)

// chainingLoadCeiling is the load factor at which Put grows the table before inserting
const chainingLoadCeiling = 1.0

// SeparateChainingMap implements the Map interface using one linked list per bucket
type SeparateChainingMap[V any] struct {
	buckets []*linkedlist.List[V]
	size    int
	hash    hashfunc.Func
}

var _ Map[int] = (*SeparateChainingMap[int])(nil)

// NewChaining creates a new separate chaining map with the next prime capacity >= capacity.
// If hash is nil, hashfunc.Sum is used.
func NewChaining[V any](capacity int, hash hashfunc.Func) *SeparateChainingMap[V] {
	if hash == nil {
		hash = hashfunc.Sum
	}
	return &SeparateChainingMap[V]{
		buckets: newBuckets[V](prime.Next(capacity)),
		hash:    hash,
	}
}

// NewDefaultChaining creates a new separate chaining map using DefaultCapacity and hashfunc.Sum
func NewDefaultChaining[V any]() *SeparateChainingMap[V] {
	return NewChaining[V](DefaultCapacity, hashfunc.Sum)
}

func newBuckets[V any](capacity int) []*linkedlist.List[V] {
	buckets := make([]*linkedlist.List[V], capacity)
	for i := range buckets {
		buckets[i] = linkedlist.New[V]()
	}
	return buckets
}

// bucket returns the chain the given key belongs to
func (obj *SeparateChainingMap[V]) bucket(key string) *linkedlist.List[V] {
	return obj.buckets[bucketIndex(obj.hash, key, len(obj.buckets))]
}

// Size returns the amount of stored key-value pairs
func (obj *SeparateChainingMap[V]) Size() int {
	return obj.size
}

// Capacity returns the amount of buckets of the underlying table
func (obj *SeparateChainingMap[V]) Capacity() int {
	return len(obj.buckets)
}

// Has returns whether a value is assigned to the given key
func (obj *SeparateChainingMap[V]) Has(key string) bool {
	return obj.bucket(key).Contains(key) != nil
}

// Lookup returns the value assigned to the given key and a boolean indicating if the key is present
func (obj *SeparateChainingMap[V]) Lookup(key string) (V, bool) {
	node := obj.bucket(key).Contains(key)
	if node == nil {
		var zero V
		return zero, false
	}
	return node.Value, true
}

// Get returns the value assigned to the given key.
// May be the type's zero value if the key is absent; use Has or Lookup for this information.
func (obj *SeparateChainingMap[V]) Get(key string) V {
	val, _ := obj.Lookup(key)
	return val
}

// Put assigns a value to the given key.
// If the load factor is at least 1.0, the table is doubled first.
func (obj *SeparateChainingMap[V]) Put(key string, value V) {
	if obj.TableLoad() >= chainingLoadCeiling {
		obj.ResizeTable(2 * len(obj.buckets))
	}

	chain := obj.bucket(key)
	if node := chain.Contains(key); node != nil {
		node.Value = value
		return
	}
	chain.Insert(key, value)
	obj.size++
}

// Remove deletes the node holding the given key from its chain.
// Absent keys are ignored.
func (obj *SeparateChainingMap[V]) Remove(key string) {
	if obj.bucket(key).Remove(key) {
		obj.size--
	}
}

// Clear replaces every bucket with an empty chain while keeping the capacity
func (obj *SeparateChainingMap[V]) Clear() {
	obj.buckets = newBuckets[V](len(obj.buckets))
	obj.size = 0
}

// TableLoad returns the current load factor (size / capacity)
func (obj *SeparateChainingMap[V]) TableLoad() float64 {
	return float64(obj.size) / float64(len(obj.buckets))
}

// EmptyBuckets returns the amount of buckets whose chain is empty
func (obj *SeparateChainingMap[V]) EmptyBuckets() int {
	var empty int
	for _, chain := range obj.buckets {
		if chain.Length() == 0 {
			empty++
		}
	}
	return empty
}

// ResizeTable rebuilds the table with the next prime capacity >= newCapacity.
// Requests below 1 are ignored. Every node is re-inserted using Put in bucket and chain order,
// so the table may grow further while rebuilding.
func (obj *SeparateChainingMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < 1 {
		return
	}
	newCapacity = prime.Next(newCapacity)

	old := obj.buckets
	log.Debug().Int("from", len(old)).Int("to", newCapacity).Int("size", obj.size).Msg("rebuilding separate chaining table")

	obj.buckets = newBuckets[V](newCapacity)
	obj.size = 0
	for _, chain := range old {
		chain.Range(func(node *linkedlist.Node[V]) bool {
			obj.Put(node.Key, node.Value)
			return true
		})
	}
}

// KeysAndValues returns all key-value pairs in bucket order, each chain in its own order
func (obj *SeparateChainingMap[V]) KeysAndValues() []Pair[V] {
	pairs := make([]Pair[V], 0, obj.size)
	for _, chain := range obj.buckets {
		chain.Range(func(node *linkedlist.Node[V]) bool {
			pairs = append(pairs, Pair[V]{Key: node.Key, Value: node.Value})
			return true
		})
	}
	return pairs
}

// String renders the table, one chain per line
func (obj *SeparateChainingMap[V]) String() string {
	var builder strings.Builder
	for i, chain := range obj.buckets {
		fmt.Fprintf(&builder, "%d: %s\n", i, chain)
	}
	return builder.String()
}
