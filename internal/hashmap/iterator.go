package hashmap

// Iterator represents a single-pass cursor over the raw slots of an OpenAddressingMap.
// It yields every non-empty slot in table order, tombstones included; callers interested
// in live entries only have to check Entry.IsTombstone themselves.
type Iterator[V any] struct {
	slots []slot[V]
	index int
}

// Next returns the next non-empty slot and true, or false once the table is exhausted.
// An exhausted iterator stays exhausted.
func (it *Iterator[V]) Next() (Entry[V], bool) {
	for it.index < len(it.slots) {
		current := it.slots[it.index]
		it.index++
		if current.state != slotEmpty {
			return current.entry(), true
		}
	}
	return Entry[V]{}, false
}
