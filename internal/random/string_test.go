package random

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	str := New(1).String(32, CharsetLowercase)
	assert.Len(t, str, 32)
	for _, char := range str {
		assert.True(t, strings.ContainsRune(string(CharsetLowercase), char))
	}
	assert.Empty(t, New(1).String(0, CharsetLowercase))
}

func TestWordsAreReproducible(t *testing.T) {
	first := New(42).Words(100, 3, CharsetAlphanumeric)
	second := New(42).Words(100, 3, CharsetAlphanumeric)
	assert.Len(t, first, 100)
	assert.Equal(t, first, second)
	for _, word := range first {
		assert.Len(t, word, 3)
	}
}
