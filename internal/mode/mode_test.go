package mode

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		modes []string
		count int
	}{
		{
			name:  "single mode",
			input: []string{"apple", "apple", "grape", "melon", "peach"},
			modes: []string{"apple"},
			count: 2,
		},
		{
			name:  "tied modes",
			input: []string{"one", "two", "three", "two", "one"},
			modes: []string{"one", "two"},
			count: 2,
		},
		{
			name:  "two way tie",
			input: []string{"Arch", "Manjaro", "Manjaro", "Mint", "Mint", "Mint", "Ubuntu", "Ubuntu", "Ubuntu"},
			modes: []string{"Mint", "Ubuntu"},
			count: 3,
		},
		{
			name:  "single element",
			input: []string{"one"},
			modes: []string{"one"},
			count: 1,
		},
		{
			name:  "three way tie",
			input: []string{"2", "4", "2", "6", "8", "4", "1", "3", "4", "5", "7", "3", "3", "2"},
			modes: []string{"2", "3", "4"},
			count: 3,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			modes, count := Find(test.input)
			assert.ElementsMatch(t, test.modes, modes)
			assert.Equal(t, test.count, count)
		})
	}
}

func TestFindEmpty(t *testing.T) {
	modes, count := Find(nil)
	assert.Empty(t, modes)
	assert.Zero(t, count)
}

func TestFindManyValues(t *testing.T) {
	var input []string
	for i := 0; i < 1000; i++ {
		input = append(input, string(rune('a'+i%26)))
	}
	modes, count := Find(input)
	// 1000 = 38*26 + 12, so the first twelve letters occur once more
	assert.Equal(t, 39, count)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}, modes)
}
