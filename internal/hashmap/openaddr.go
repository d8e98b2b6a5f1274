package hashmap

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/hashmaps/internal/hashfunc"
	"github.com/skybi/hashmaps/internal/prime"
	"strings"
)

// openAddressingLoadCeiling is the load factor at which Put grows the table before inserting
const openAddressingLoadCeiling = 0.5

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotDead
)

// slot represents a single position of the open addressing table.
// A dead slot (tombstone) still holds its key so probe sequences passing it stay intact.
type slot[V any] struct {
	state slotState
	key   string
	value V
}

// Entry represents the raw content of a non-empty slot as yielded by Iterator
type Entry[V any] struct {
	Key         string
	Value       V
	IsTombstone bool
}

// String renders the entry as `K: key V: value TS: tombstone`
func (entry Entry[V]) String() string {
	return fmt.Sprintf("K: %s V: %v TS: %t", entry.Key, entry.Value, entry.IsTombstone)
}

// OpenAddressingMap implements the Map interface using open addressing with quadratic probing.
// Removed keys are marked as tombstones and only vanish when the table is rebuilt.
type OpenAddressingMap[V any] struct {
	slots []slot[V]
	size  int
	hash  hashfunc.Func
}

var _ Map[int] = (*OpenAddressingMap[int])(nil)

// NewOpenAddressing creates a new open addressing map with the next prime capacity >= capacity.
// Panics if hash is nil.
func NewOpenAddressing[V any](capacity int, hash hashfunc.Func) *OpenAddressingMap[V] {
	if hash == nil {
		panic("hashmap: open addressing map requires a hash function")
	}
	return &OpenAddressingMap[V]{
		slots: make([]slot[V], prime.Next(capacity)),
		hash:  hash,
	}
}

// probe returns the slot index visited in the i-th step of the quadratic probe sequence starting at start
func (obj *OpenAddressingMap[V]) probe(start, i int) int {
	capacity := uint64(len(obj.slots))
	return int((uint64(start) + uint64(i)*uint64(i)) % capacity)
}

// find returns the index of the slot holding key (live or dead) and true,
// or false if the probe sequence reaches an empty slot or is exhausted
func (obj *OpenAddressingMap[V]) find(key string) (int, bool) {
	start := bucketIndex(obj.hash, key, len(obj.slots))
	for i := 0; i < len(obj.slots); i++ {
		index := obj.probe(start, i)
		current := &obj.slots[index]
		if current.state == slotEmpty {
			return 0, false
		}
		if current.key == key {
			return index, true
		}
	}
	return 0, false
}

// Size returns the amount of stored key-value pairs (tombstones excluded)
func (obj *OpenAddressingMap[V]) Size() int {
	return obj.size
}

// Capacity returns the amount of slots of the underlying table
func (obj *OpenAddressingMap[V]) Capacity() int {
	return len(obj.slots)
}

// Has returns whether a value is assigned to the given key
func (obj *OpenAddressingMap[V]) Has(key string) bool {
	index, ok := obj.find(key)
	return ok && obj.slots[index].state == slotLive
}

// Lookup returns the value assigned to the given key and a boolean indicating if the key is present
func (obj *OpenAddressingMap[V]) Lookup(key string) (V, bool) {
	index, ok := obj.find(key)
	if !ok || obj.slots[index].state != slotLive {
		var zero V
		return zero, false
	}
	return obj.slots[index].value, true
}

// Get returns the value assigned to the given key.
// May be the type's zero value if the key is absent; use Has or Lookup for this information.
func (obj *OpenAddressingMap[V]) Get(key string) V {
	val, _ := obj.Lookup(key)
	return val
}

// Put assigns a value to the given key.
// If the load factor is at least 0.5, the table is doubled first.
// A tombstone is only reclaimed by its own key; other keys probe past it.
func (obj *OpenAddressingMap[V]) Put(key string, value V) {
	if obj.TableLoad() >= openAddressingLoadCeiling {
		obj.ResizeTable(2 * len(obj.slots))
	}

	start := bucketIndex(obj.hash, key, len(obj.slots))
	for i := 0; i < len(obj.slots); i++ {
		current := &obj.slots[obj.probe(start, i)]
		switch {
		case current.state == slotEmpty:
			*current = slot[V]{state: slotLive, key: key, value: value}
			obj.size++
			return
		case current.key == key:
			if current.state == slotDead {
				current.state = slotLive
				obj.size++
			}
			current.value = value
			return
		}
	}

	// Every slot of the probe sequence is taken by other keys or their tombstones
	log.Debug().Str("key", key).Int("capacity", len(obj.slots)).Msg("probe sequence exhausted, rebuilding open addressing table")
	obj.ResizeTable(2 * len(obj.slots))
	obj.Put(key, value)
}

// Remove marks the slot holding the given key as a tombstone.
// Absent or already removed keys are ignored.
func (obj *OpenAddressingMap[V]) Remove(key string) {
	index, ok := obj.find(key)
	if !ok || obj.slots[index].state != slotLive {
		return
	}
	obj.slots[index].state = slotDead
	obj.size--
}

// Clear empties every slot while keeping the capacity
func (obj *OpenAddressingMap[V]) Clear() {
	for i := range obj.slots {
		obj.slots[i] = slot[V]{}
	}
	obj.size = 0
}

// TableLoad returns the current load factor (size / capacity)
func (obj *OpenAddressingMap[V]) TableLoad() float64 {
	return float64(obj.size) / float64(len(obj.slots))
}

// EmptyBuckets returns capacity - size.
// Tombstones are counted as empty as they do not contribute to the size.
func (obj *OpenAddressingMap[V]) EmptyBuckets() int {
	return len(obj.slots) - obj.size
}

// ResizeTable rebuilds the table with the next prime capacity >= newCapacity.
// Requests below the current size are ignored. Tombstones are dropped and live entries are
// re-inserted using Put in their table order, so the table may grow further while rebuilding.
func (obj *OpenAddressingMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < obj.size {
		return
	}
	newCapacity = prime.Next(newCapacity)

	old := obj.slots
	log.Debug().Int("from", len(old)).Int("to", newCapacity).Int("size", obj.size).Msg("rebuilding open addressing table")

	obj.slots = make([]slot[V], newCapacity)
	obj.size = 0
	for _, current := range old {
		if current.state == slotLive {
			obj.Put(current.key, current.value)
		}
	}
}

// KeysAndValues returns all live key-value pairs in table order
func (obj *OpenAddressingMap[V]) KeysAndValues() []Pair[V] {
	pairs := make([]Pair[V], 0, obj.size)
	for _, current := range obj.slots {
		if current.state == slotLive {
			pairs = append(pairs, Pair[V]{Key: current.key, Value: current.value})
		}
	}
	return pairs
}

// Iterator returns a new one-shot iterator over the raw non-empty slots of the current table.
// The map must not be modified while iterating.
func (obj *OpenAddressingMap[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{slots: obj.slots}
}

// String renders the table, one slot per line (`index: None` for empty slots)
func (obj *OpenAddressingMap[V]) String() string {
	var builder strings.Builder
	for i, current := range obj.slots {
		if current.state == slotEmpty {
			fmt.Fprintf(&builder, "%d: None\n", i)
			continue
		}
		fmt.Fprintf(&builder, "%d: %s\n", i, current.entry())
	}
	return builder.String()
}

func (current slot[V]) entry() Entry[V] {
	return Entry[V]{
		Key:         current.key,
		Value:       current.value,
		IsTombstone: current.state == slotDead,
	}
}
