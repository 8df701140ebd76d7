package chain

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-lodash/lang"
	"github.com/hasbyte1/go-lodash/object"
)

// Object wraps a map[K]V.
type Object[K comparable, V any] struct {
	m map[K]V
}

// FromMap wraps a shallow copy of m.
func FromMap[K comparable, V any](m map[K]V) *Object[K, V] {
	return &Object[K, V]{m: object.Clone(m)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal & plumbing
// ─────────────────────────────────────────────────────────────────────────────

// Value returns a shallow copy of the wrapped map.
func (o *Object[K, V]) Value() map[K]V { return object.Clone(o.m) }

// Identity returns a new chain holding the same entries.
func (o *Object[K, V]) Identity() *Object[K, V] { return FromMap(o.m) }

// Thru returns a new chain holding fn applied to a copy of the map.
func (o *Object[K, V]) Thru(fn func(map[K]V) map[K]V) *Object[K, V] {
	return &Object[K, V]{m: fn(o.Value())}
}

// Tap calls fn with a copy of the map and returns o.
func (o *Object[K, V]) Tap(fn func(map[K]V)) *Object[K, V] {
	fn(o.Value())
	return o
}

// Call runs the named mixin on a copy of the map. The mixin must return a
// map[K]V.
func (o *Object[K, V]) Call(name string, args ...any) (*Object[K, V], error) {
	out, err := CallMixin(name, o.Value(), args...)
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[K]V)
	if !ok {
		return nil, fmt.Errorf("%w: %q returned %T, want %T", ErrMixinResultType, name, out, o.m)
	}
	return FromMap(m), nil
}

// ToJSON encodes the map as a JSON object.
func (o *Object[K, V]) ToJSON() ([]byte, error) {
	return json.Marshal(o.m)
}

// ─────────────────────────────────────────────────────────────────────────────
// Object operations
// ─────────────────────────────────────────────────────────────────────────────

// Get wraps the value under key, or the zero value when absent.
func (o *Object[K, V]) Get(key K) *Chain[V] { return Of(object.Get(o.m, key)) }

// GetOr wraps the value under key, or def when absent.
func (o *Object[K, V]) GetOr(key K, def V) *Chain[V] {
	return Of(object.GetOr(o.m, key, def))
}

// Has wraps whether key is present.
func (o *Object[K, V]) Has(key K) *Chain[bool] { return Of(object.Has(o.m, key)) }

// Set returns a new chain whose map also holds key → value. The receiver's
// map is left unchanged.
func (o *Object[K, V]) Set(key K, value V) *Object[K, V] {
	return &Object[K, V]{m: object.Set(o.Value(), key, value)}
}

// Keys wraps the keys in unspecified order.
func (o *Object[K, V]) Keys() *Slice[K] { return wrap(object.Keys(o.m)) }

// Values wraps the values in unspecified order.
func (o *Object[K, V]) Values() *Slice[V] { return wrap(object.Values(o.m)) }

// Pick keeps only the listed keys.
func (o *Object[K, V]) Pick(keys ...K) *Object[K, V] {
	return &Object[K, V]{m: object.Pick(o.m, keys...)}
}

// Omit drops the listed keys.
func (o *Object[K, V]) Omit(keys ...K) *Object[K, V] {
	return &Object[K, V]{m: object.Omit(o.m, keys...)}
}

// IsMatch wraps whether the map partially deep matches source.
func (o *Object[K, V]) IsMatch(source map[K]V) *Chain[bool] {
	return Of(lang.IsMatch(o.m, source))
}

// IsEqual wraps whether the map deeply equals other.
func (o *Object[K, V]) IsEqual(other map[K]V) *Chain[bool] {
	return Of(lang.IsEqual(o.m, other))
}

// Size wraps the number of entries.
func (o *Object[K, V]) Size() *Chain[int] { return Of(len(o.m)) }
