package chain

import (
	"github.com/hasbyte1/go-lodash/arr"
	"github.com/hasbyte1/go-lodash/collections"
	"github.com/hasbyte1/go-lodash/num"
)

// Methods cannot introduce type parameters, so operations that change the
// element type are package-level functions taking the wrapper first.

// Map applies fn to every item of s.
func Map[E, U any](s *Slice[E], fn func(E) U) *Slice[U] {
	return wrap(collections.Map(s.items, fn))
}

// MapProperty plucks key from every map in s.
func MapProperty[K comparable, V any](s *Slice[map[K]V], key K) *Slice[V] {
	return wrap(collections.MapProperty(s.items, key))
}

// MapBy maps s through an iteratee shorthand. See [collections.MapBy].
func MapBy[K comparable, V any](s *Slice[map[K]V], it any) (*Slice[any], error) {
	out, err := collections.MapBy(s.items, it)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// FilterBy keeps the maps matching an iteratee shorthand.
func FilterBy[K comparable, V any](s *Slice[map[K]V], it any) (*Slice[map[K]V], error) {
	out, err := collections.FilterBy(s.items, it)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}

// GroupBy groups the items of s by fn(item).
func GroupBy[E any, K comparable](s *Slice[E], fn func(E) K) *Object[K, []E] {
	return &Object[K, []E]{m: collections.GroupBy(s.items, fn)}
}

// GroupByIteratee groups the maps in s by an iteratee shorthand.
func GroupByIteratee[K comparable, V any](s *Slice[map[K]V], it any) (*Object[any, []map[K]V], error) {
	out, err := collections.GroupByIteratee(s.items, it)
	if err != nil {
		return nil, err
	}
	return &Object[any, []map[K]V]{m: out}, nil
}

// KeyBy indexes the items of s by fn(item). Later items win.
func KeyBy[E any, K comparable](s *Slice[E], fn func(E) K) *Object[K, E] {
	return &Object[K, E]{m: collections.KeyBy(s.items, fn)}
}

// CountBy counts the items of s per fn(item).
func CountBy[E any, K comparable](s *Slice[E], fn func(E) K) *Object[K, int] {
	return &Object[K, int]{m: collections.CountBy(s.items, fn)}
}

// Reduce folds s left to right starting from initial.
func Reduce[E, U any](s *Slice[E], fn func(U, E) U, initial U) *Chain[U] {
	return Of(collections.Reduce(s.items, fn, initial))
}

// Sum wraps the sum of s.
func Sum[N num.Number](s *Slice[N]) *Chain[N] { return Of(num.Sum(s.items)) }

// SumBy wraps the sum of fn over s.
func SumBy[E any, N num.Number](s *Slice[E], fn func(E) N) *Chain[N] {
	return Of(num.SumBy(s.items, fn))
}

// Mean wraps the arithmetic mean of s, NaN when empty.
func Mean[N num.Number](s *Slice[N]) *Chain[float64] { return Of(num.Mean(s.items)) }

// MeanBy wraps the mean of fn over s, NaN when empty.
func MeanBy[E any, N num.Number](s *Slice[E], fn func(E) N) *Chain[float64] {
	return Of(num.MeanBy(s.items, fn))
}

// Chunk splits s into groups of size.
func Chunk[E any](s *Slice[E], size int) *Slice[[]E] {
	return wrap(arr.Chunk(s.items, size))
}

// Flatten concatenates the inner slices of s.
func Flatten[E any](s *Slice[[]E]) *Slice[E] { return wrap(arr.Flatten(s.items)) }

// Uniq removes duplicates from s, keeping first occurrences.
func Uniq[E comparable](s *Slice[E]) *Slice[E] { return wrap(arr.Uniq(s.items)) }

// Includes wraps whether value is in s.
func Includes[E comparable](s *Slice[E], value E) *Chain[bool] {
	return Of(arr.Includes(s.items, value))
}

// Get wraps the value under key of the map held by c.
func Get[K comparable, V any](c *Chain[map[K]V], key K) *Chain[V] {
	return FromMap(c.value).Get(key)
}
