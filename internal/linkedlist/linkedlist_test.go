package linkedlist

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func keys[V any](list *List[V]) []string {
	var out []string
	list.Range(func(node *Node[V]) bool {
		out = append(out, node.Key)
		return true
	})
	return out
}

func TestInsertPrepends(t *testing.T) {
	list := New[int]()
	assert.Equal(t, 0, list.Length())
	assert.Nil(t, list.Front())

	list.Insert("a", 1)
	list.Insert("b", 2)
	list.Insert("c", 3)

	assert.Equal(t, 3, list.Length())
	assert.Equal(t, []string{"c", "b", "a"}, keys(list))
	assert.Equal(t, "c", list.Front().Key)
	assert.Equal(t, "b", list.Front().Next().Key)
}

func TestContains(t *testing.T) {
	list := New[string]()
	list.Insert("a", "1")
	list.Insert("b", "2")

	node := list.Contains("a")
	require.NotNil(t, node)
	assert.Equal(t, "1", node.Value)

	node.Value = "10"
	assert.Equal(t, "10", list.Contains("a").Value)

	assert.Nil(t, list.Contains("z"))
	assert.Nil(t, New[int]().Contains("a"))
}

func TestRemove(t *testing.T) {
	list := New[int]()
	for i, key := range []string{"1", "2", "3", "4", "5"} {
		list.Insert(key, i)
	}

	assert.True(t, list.Remove("5")) // head
	assert.True(t, list.Remove("3")) // middle
	assert.True(t, list.Remove("1")) // tail
	assert.False(t, list.Remove("3"))
	assert.False(t, list.Remove("9"))

	assert.Equal(t, 2, list.Length())
	assert.Equal(t, []string{"4", "2"}, keys(list))

	assert.True(t, list.Remove("4"))
	assert.True(t, list.Remove("2"))
	assert.Equal(t, 0, list.Length())
	assert.False(t, list.Remove("2"))
}

func TestRangeStops(t *testing.T) {
	list := New[int]()
	list.Insert("a", 1)
	list.Insert("b", 2)
	list.Insert("c", 3)

	var visited int
	list.Range(func(node *Node[int]) bool {
		visited++
		return node.Key != "b"
	})
	assert.Equal(t, 2, visited)
}

func TestString(t *testing.T) {
	list := New[int]()
	assert.Equal(t, "SLL []", list.String())
	list.Insert("a", 1)
	list.Insert("b", 2)
	assert.Equal(t, "SLL [b: 2 -> a: 1]", list.String())
}
