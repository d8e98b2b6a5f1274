package prime

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n     int
		prime bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{11, true},
		{25, false},
		{49, false},
		{97, true},
		{121, false},
		{7919, true},
	}
	for _, test := range tests {
		assert.Equal(t, test.prime, IsPrime(test.n), "IsPrime(%d)", test.n)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-5, 3},
		{0, 3},
		{1, 3},
		{2, 3},
		{3, 3},
		{11, 11},
		{22, 23},
		{30, 31},
		{46, 47},
		{106, 107},
		{226, 227},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Next(test.n), "Next(%d)", test.n)
	}
}

func TestNextIsAlwaysPrimeAndNotSmaller(t *testing.T) {
	for n := 1; n < 2000; n++ {
		p := Next(n)
		assert.True(t, IsPrime(p), "Next(%d) = %d", n, p)
		assert.GreaterOrEqual(t, p, n)
	}
}
