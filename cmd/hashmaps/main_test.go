package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanWords(t *testing.T) {
	words, err := scanWords(strings.NewReader("apple  apple\ngrape\tmelon peach\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "apple", "grape", "melon", "peach"}, words)
}

func TestReadWords(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("a b"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("c\n"), 0o600))

	words, err := readWords([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, words)

	_, err = readWords([]string{filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}
