// Package unique builds maps that reject duplicate keys.
package unique

import "fmt"

// Pair is a single key/value entry for BuildMap.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// ErrFunc produces the error reported when a key repeats. The value passed
// is the one whose insertion failed, not the one already stored.
type ErrFunc[K comparable, V any] func(key K, value V) error

// Set inserts key/value into m, failing if the key is already present.
func Set[K comparable, V any](m map[K]V, key K, value V, onDup ErrFunc[K, V]) error {
	if _, exists := m[key]; exists {
		if onDup != nil {
			return onDup(key, value)
		}
		return fmt.Errorf("unique: duplicate key %v", key)
	}
	m[key] = value
	return nil
}

// BuildMap constructs a map from pairs, failing on the first repeated key.
func BuildMap[K comparable, V any](pairs []Pair[K, V], onDup ErrFunc[K, V]) (map[K]V, error) {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		if err := Set(m, p.Key, p.Value, onDup); err != nil {
			return nil, err
		}
	}
	return m, nil
}
