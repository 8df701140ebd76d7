package iteratee

import (
	"maps"

	"github.com/hasbyte1/go-lodash/lang"
	"github.com/hasbyte1/go-lodash/object"
)

// Pair is a key and the value it should hold. It is the shorthand for
// [MatchesProperty].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// NewPair builds a Pair.
func NewPair[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Matches returns a predicate reporting whether an object partially deep
// matches source. source is copied, so later changes to it are not observed.
func Matches[K comparable, V any](source map[K]V) func(map[K]V) bool {
	src := maps.Clone(source)
	return func(obj map[K]V) bool {
		return lang.IsMatch(obj, src)
	}
}

// MatchesProperty returns a predicate reporting whether an object holds key
// with a value deeply equal to value.
func MatchesProperty[K comparable, V any](key K, value V) func(map[K]V) bool {
	return func(obj map[K]V) bool {
		got, ok := obj[key]
		return ok && lang.IsEqual(got, value)
	}
}

// Property returns an accessor for key. Missing keys yield the zero value.
func Property[K comparable, V any](key K) func(map[K]V) V {
	return func(obj map[K]V) V {
		return object.Get(obj, key)
	}
}

// PropertyPath returns an accessor for a dotted path into nested maps.
// Missing paths yield nil.
func PropertyPath(path string) func(map[string]any) any {
	return func(obj map[string]any) any {
		return object.GetPath(obj, path)
	}
}
