package chain

import (
	"fmt"
)

// Valuer is implemented by every wrapper in this package.
type Valuer[T any] interface {
	Value() T
}

var (
	_ Valuer[int]            = (*Chain[int])(nil)
	_ Valuer[[]int]          = (*Slice[int])(nil)
	_ Valuer[map[string]int] = (*Object[string, int])(nil)
)

// Lift rewraps any wrapper's value in a plain [Chain], for example to use
// [Chain.Thru] on a slice as a whole.
func Lift[T any](v Valuer[T]) *Chain[T] {
	return Of(v.Value())
}

// Chain wraps a single value of any type.
type Chain[T any] struct {
	value T
}

// Of wraps v.
func Of[T any](v T) *Chain[T] {
	return &Chain[T]{value: v}
}

// Value unwraps the chain. It is the terminal operation.
func (c *Chain[T]) Value() T { return c.value }

// Identity returns a new chain holding the same value.
func (c *Chain[T]) Identity() *Chain[T] { return Of(c.value) }

// Thru returns a new chain holding fn(value).
func (c *Chain[T]) Thru(fn func(T) T) *Chain[T] { return Of(fn(c.value)) }

// Tap calls fn with the value for its side effects and returns c.
func (c *Chain[T]) Tap(fn func(T)) *Chain[T] {
	fn(c.value)
	return c
}

// Call runs the named mixin on the value. The mixin must return a T, or nil
// when T is an interface type.
func (c *Chain[T]) Call(name string, args ...any) (*Chain[T], error) {
	out, err := CallMixin(name, c.value, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out.(T)
	if !ok && out == nil && any(v) == nil {
		// T is an interface type and the mixin returned nil.
		ok = true
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q returned %T, want %T", ErrMixinResultType, name, out, c.value)
	}
	return Of(v), nil
}

// String formats the wrapped value with fmt's %v verb.
func (c *Chain[T]) String() string {
	return fmt.Sprintf("%v", c.value)
}
