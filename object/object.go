package object

import (
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Typed access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key, or the zero value of V when key is
// absent.
func Get[K comparable, V any](m map[K]V, key K) V {
	return m[key]
}

// GetOr returns the value stored under key, or def when key is absent.
func GetOr[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Lookup returns the value stored under key as an option.
func Lookup[K comparable, V any](m map[K]V, key K) mo.Option[V] {
	if v, ok := m[key]; ok {
		return mo.Some(v)
	}
	return mo.None[V]()
}

// Has reports whether key is present in m.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Set stores value under key and returns m. A nil m is replaced by a new map,
// so callers should always use the returned map.
func Set[K comparable, V any](m map[K]V, key K, value V) map[K]V {
	if m == nil {
		m = make(map[K]V)
	}
	m[key] = value
	return m
}

// Clone returns a shallow copy of m. The copy of a nil map is an empty map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys & values
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	return lo.Keys(m)
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	return lo.Values(m)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

// Pick returns a new map holding only the listed keys that are present in m.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.PickByKeys(m, keys)
}

// Omit returns a shallow copy of m without the listed keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.OmitByKeys(m, keys)
}

// Invert swaps keys and values. When values repeat, the last key seen wins,
// which is unspecified for Go maps.
func Invert[K, V comparable](m map[K]V) map[V]K {
	return lo.Invert(m)
}

// MapValues returns a new map with fn applied to every value.
func MapValues[K comparable, V, R any](m map[K]V, fn func(V) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}
