package iteratee

import (
	"fmt"
	"math"
	"reflect"
)

// Kind identifies the shorthand an [Iteratee] was built from.
type Kind int

const (
	KindIdentity Kind = iota
	KindMatches
	KindMatchesProperty
	KindProperty
	KindFunc
)

var kindNames = [...]string{
	KindIdentity:        "identity",
	KindMatches:         "matches",
	KindMatchesProperty: "matchesProperty",
	KindProperty:        "property",
	KindFunc:            "func",
}

// String returns the lodash name of the shorthand.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Iteratee is a resolved shorthand applicable to map[K]V elements.
type Iteratee[K comparable, V any] struct {
	kind Kind
	fn   func(map[K]V) any
}

// Resolve converts x into an Iteratee:
//
//   - nil yields the identity function
//   - map[K]V yields [Matches]
//   - Pair[K, V] yields [MatchesProperty]
//   - func(map[K]V) R, for R one of any, V, bool, string, int, int64 or
//     float64, is used as is
//   - a comparable K yields [Property]
//
// Any other value yields [ErrUnsupportedIteratee].
func Resolve[K comparable, V any](x any) (Iteratee[K, V], error) {
	switch v := x.(type) {
	case nil:
		return Iteratee[K, V]{KindIdentity, func(obj map[K]V) any { return obj }}, nil
	case map[K]V:
		return fromPredicate(KindMatches, Matches(v)), nil
	case Pair[K, V]:
		return fromPredicate(KindMatchesProperty, MatchesProperty(v.Key, v.Value)), nil
	case func(map[K]V) any:
		return Iteratee[K, V]{KindFunc, v}, nil
	case func(map[K]V) V:
		return Iteratee[K, V]{KindFunc, func(obj map[K]V) any { return v(obj) }}, nil
	case func(map[K]V) bool:
		return fromPredicate(KindFunc, v), nil
	case func(map[K]V) string:
		return Iteratee[K, V]{KindFunc, func(obj map[K]V) any { return v(obj) }}, nil
	case func(map[K]V) int:
		return Iteratee[K, V]{KindFunc, func(obj map[K]V) any { return v(obj) }}, nil
	case func(map[K]V) int64:
		return Iteratee[K, V]{KindFunc, func(obj map[K]V) any { return v(obj) }}, nil
	case func(map[K]V) float64:
		return Iteratee[K, V]{KindFunc, func(obj map[K]V) any { return v(obj) }}, nil
	case K:
		// With K = any every remaining value lands here.
		if !reflect.ValueOf(v).Comparable() {
			return Iteratee[K, V]{}, fmt.Errorf("%w: %T is not a usable key", ErrUnsupportedIteratee, x)
		}
		get := Property[K, V](v)
		return Iteratee[K, V]{KindProperty, func(obj map[K]V) any { return get(obj) }}, nil
	default:
		return Iteratee[K, V]{}, fmt.Errorf("%w: %T for elements of type %T", ErrUnsupportedIteratee, x, map[K]V(nil))
	}
}

// MustResolve is like [Resolve] but panics on error.
func MustResolve[K comparable, V any](x any) Iteratee[K, V] {
	it, err := Resolve[K, V](x)
	if err != nil {
		panic(err)
	}
	return it
}

func fromPredicate[K comparable, V any](kind Kind, pred func(map[K]V) bool) Iteratee[K, V] {
	return Iteratee[K, V]{kind, func(obj map[K]V) any { return pred(obj) }}
}

// Kind reports which shorthand produced it.
func (it Iteratee[K, V]) Kind() Kind { return it.kind }

// Call applies the iteratee to obj. The zero Iteratee behaves as identity.
func (it Iteratee[K, V]) Call(obj map[K]V) any {
	if it.fn == nil {
		return obj
	}
	return it.fn(obj)
}

// Test applies the iteratee to obj and reports whether the result is truthy.
func (it Iteratee[K, V]) Test(obj map[K]V) bool {
	return Truthy(it.Call(obj))
}

// Func returns the iteratee as a plain function.
func (it Iteratee[K, V]) Func() func(map[K]V) any { return it.Call }

// Predicate returns the iteratee as a predicate using [Truthy].
func (it Iteratee[K, V]) Predicate() func(map[K]V) bool { return it.Test }

// Truthy reports whether v is truthy in the JavaScript sense: false, zero
// numbers, NaN, empty strings, nil and nil pointers, slices, maps, funcs and
// channels are falsy. Everything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
