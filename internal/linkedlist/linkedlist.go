package linkedlist

import (
	"fmt"
	"strings"
)

// Node represents a single key-value pair stored inside a List
type Node[V any] struct {
	Key   string
	Value V
	next  *Node[V]
}

// Next returns the node following this one or nil if it is the last one
func (node *Node[V]) Next() *Node[V] {
	return node.next
}

// List represents a singly linked list of key-value nodes
type List[V any] struct {
	head   *Node[V]
	length int
}

// New creates a new empty list
func New[V any]() *List[V] {
	return &List[V]{}
}

// Insert prepends a new node holding the given key-value pair.
// Keys are not checked for uniqueness; use Contains first if this is required.
func (list *List[V]) Insert(key string, value V) {
	list.head = &Node[V]{
		Key:   key,
		Value: value,
		next:  list.head,
	}
	list.length++
}

// Remove unlinks the first node holding the given key and reports whether such a node existed
func (list *List[V]) Remove(key string) bool {
	if list.head == nil {
		return false
	}
	if list.head.Key == key {
		list.head = list.head.next
		list.length--
		return true
	}
	for previous := list.head; previous.next != nil; previous = previous.next {
		if previous.next.Key == key {
			previous.next = previous.next.next
			list.length--
			return true
		}
	}
	return false
}

// Contains returns the first node holding the given key or nil if there is none
func (list *List[V]) Contains(key string) *Node[V] {
	for current := list.head; current != nil; current = current.next {
		if current.Key == key {
			return current
		}
	}
	return nil
}

// Front returns the first node of the list or nil if the list is empty
func (list *List[V]) Front() *Node[V] {
	return list.head
}

// Length returns the amount of nodes in the list
func (list *List[V]) Length() int {
	return list.length
}

// Range calls fn for every node in list order as long as fn returns true.
// The list must not be modified while ranging over it.
func (list *List[V]) Range(fn func(node *Node[V]) bool) {
	for current := list.head; current != nil; current = current.next {
		if !fn(current) {
			return
		}
	}
}

// String renders the list as `SLL [key: value] -> [key: value]`
func (list *List[V]) String() string {
	var builder strings.Builder
	builder.WriteString("SLL [")
	for current := list.head; current != nil; current = current.next {
		if current != list.head {
			builder.WriteString(" -> ")
		}
		fmt.Fprintf(&builder, "%s: %v", current.Key, current.Value)
	}
	builder.WriteString("]")
	return builder.String()
}
