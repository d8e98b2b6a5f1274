package random

import "math/rand"

var (
	// CharsetLowercase contains characters a-z
	CharsetLowercase = []rune("abcdefghijklmnopqrstuvwxyz")

	// CharsetAlphanumeric contains characters a-zA-Z0-9
	CharsetAlphanumeric = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
)

// Generator produces random strings from a seeded source so workloads are reproducible
type Generator struct {
	rnd *rand.Rand
}

// New creates a new generator using the given seed
func New(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// String generates a random string with a specific length, only using characters out of the given charset
func (gen *Generator) String(length int, charset []rune) string {
	buf := make([]rune, length)
	for i := range buf {
		buf[i] = charset[gen.rnd.Intn(len(charset))]
	}
	return string(buf)
}

// Words generates count random strings of the same length
func (gen *Generator) Words(count, length int, charset []rune) []string {
	words := make([]string, count)
	for i := range words {
		words[i] = gen.String(length, charset)
	}
	return words
}
