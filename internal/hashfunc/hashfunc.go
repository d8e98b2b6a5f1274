package hashfunc

import (
	"errors"
	"fmt"
	"github.com/cespare/xxhash/v2"
	"sort"
)

// ErrUnknownFunction is returned by ByName if no hash function is registered under the given name
var ErrUnknownFunction = errors.New("unknown hash function")

// Func represents a deterministic hash function mapping a string key to a non-negative integer
type Func func(key string) uint64

var registry = map[string]Func{
	"sum":          Sum,
	"weighted_sum": WeightedSum,
	"xxhash":       XXHash,
}

// Sum adds up the code points of the key
func Sum(key string) uint64 {
	var hash uint64
	for _, letter := range key {
		hash += uint64(letter)
	}
	return hash
}

// WeightedSum adds up the code points of the key, each one multiplied by its 1-based position
func WeightedSum(key string) uint64 {
	var hash uint64
	var index uint64
	for _, letter := range key {
		index++
		hash += index * uint64(letter)
	}
	return hash
}

// XXHash returns the 64 bit xxHash digest of the key
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// ByName looks up a hash function by its configuration name
func ByName(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFunction, name, Names())
	}
	return fn, nil
}

// Names returns the sorted names of all available hash functions
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
