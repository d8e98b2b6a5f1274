package mode

import "github.com/skybi/hashmaps/internal/hashmap"

// Find returns every value occurring most often in values together with that frequency.
// The values are counted in a separate chaining map; the returned keys follow its table order.
// An empty input yields no keys and a frequency of 0.
func Find(values []string) ([]string, int) {
	if len(values) == 0 {
		return nil, 0
	}

	counts := hashmap.NewDefaultChaining[int]()
	for _, value := range values {
		counts.Put(value, counts.Get(value)+1)
	}

	pairs := counts.KeysAndValues()
	maxCount := 0
	for _, pair := range pairs {
		if pair.Value > maxCount {
			maxCount = pair.Value
		}
	}

	var modes []string
	for _, pair := range pairs {
		if pair.Value == maxCount {
			modes = append(modes, pair.Key)
		}
	}
	return modes, maxCount
}
