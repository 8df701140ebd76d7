package collections

import (
	"fmt"
	"math"
	"reflect"

	"github.com/hasbyte1/go-lodash/iteratee"
)

// This file holds the variants that take a lodash iteratee shorthand rather
// than a typed callback. They only apply to slices of maps, where the
// shorthands have a meaning.

func resolve[K comparable, V any](it any) (iteratee.Iteratee[K, V], error) {
	resolved, err := iteratee.Resolve[K, V](it)
	if err != nil {
		return resolved, fmt.Errorf("%w: %w", ErrInvalidIteratee, err)
	}
	return resolved, nil
}

// MapBy applies the iteratee shorthand it to every item.
//
//	collections.MapBy(users, "user")                       // property
//	collections.MapBy(users, map[string]any{"age": 40})    // matches → []any{bool…}
func MapBy[K comparable, V any](items []map[K]V, it any) ([]any, error) {
	resolved, err := resolve[K, V](it)
	if err != nil {
		return nil, err
	}
	return Map(items, resolved.Call), nil
}

// FilterBy keeps the items for which the iteratee shorthand is truthy.
func FilterBy[K comparable, V any](items []map[K]V, it any) ([]map[K]V, error) {
	resolved, err := resolve[K, V](it)
	if err != nil {
		return nil, err
	}
	return Filter(items, resolved.Test), nil
}

// RejectBy drops the items for which the iteratee shorthand is truthy.
func RejectBy[K comparable, V any](items []map[K]V, it any) ([]map[K]V, error) {
	resolved, err := resolve[K, V](it)
	if err != nil {
		return nil, err
	}
	return Reject(items, resolved.Test), nil
}

// FindBy returns the first item for which the iteratee shorthand is truthy.
func FindBy[K comparable, V any](items []map[K]V, it any) (map[K]V, bool, error) {
	resolved, err := resolve[K, V](it)
	if err != nil {
		return nil, false, err
	}
	found, ok := Find(items, resolved.Test)
	return found, ok, nil
}

// GroupByIteratee groups items by the iteratee result. Results that cannot
// be used as map keys (slices, maps, funcs) are keyed by their fmt.Sprint
// text, mirroring lodash's string coercion of keys. Every NaN result shares
// the key "NaN".
func GroupByIteratee[K comparable, V any](items []map[K]V, it any) (map[any][]map[K]V, error) {
	resolved, err := resolve[K, V](it)
	if err != nil {
		return nil, err
	}
	return GroupBy(items, func(item map[K]V) any {
		return groupKey(resolved.Call(item))
	}), nil
}

// CountByIteratee counts items per iteratee result, keyed like
// [GroupByIteratee].
func CountByIteratee[K comparable, V any](items []map[K]V, it any) (map[any]int, error) {
	resolved, err := resolve[K, V](it)
	if err != nil {
		return nil, err
	}
	return CountBy(items, func(item map[K]V) any {
		return groupKey(resolved.Call(item))
	}), nil
}

func groupKey(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat() && math.IsNaN(rv.Float()):
		return "NaN"
	case rv.Comparable():
		return v
	default:
		return fmt.Sprint(v)
	}
}
