package chain

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/hasbyte1/go-lodash/arr"
	"github.com/hasbyte1/go-lodash/collections"
)

// Slice wraps a []E.
type Slice[E any] struct {
	items []E
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New wraps a copy of the given items.
func New[E any](items ...E) *Slice[E] {
	return FromSlice(items)
}

// FromSlice wraps a copy of items.
func FromSlice[E any](items []E) *Slice[E] {
	return wrap(slices.Clone(items))
}

// wrap takes ownership of items without copying.
func wrap[E any](items []E) *Slice[E] {
	if items == nil {
		items = []E{}
	}
	return &Slice[E]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal & plumbing
// ─────────────────────────────────────────────────────────────────────────────

// Value returns a copy of the wrapped slice.
func (s *Slice[E]) Value() []E { return slices.Clone(s.items) }

// Identity returns a new chain holding the same items.
func (s *Slice[E]) Identity() *Slice[E] { return FromSlice(s.items) }

// Thru returns a new chain holding fn applied to a copy of the items.
func (s *Slice[E]) Thru(fn func([]E) []E) *Slice[E] {
	return wrap(fn(s.Value()))
}

// Tap calls fn with a copy of the items and returns s.
func (s *Slice[E]) Tap(fn func([]E)) *Slice[E] {
	fn(s.Value())
	return s
}

// Call runs the named mixin on a copy of the items. The mixin must return
// a []E.
func (s *Slice[E]) Call(name string, args ...any) (*Slice[E], error) {
	out, err := CallMixin(name, s.Value(), args...)
	if err != nil {
		return nil, err
	}
	items, ok := out.([]E)
	if !ok {
		return nil, fmt.Errorf("%w: %q returned %T, want %T", ErrMixinResultType, name, out, s.items)
	}
	return FromSlice(items), nil
}

// ToJSON encodes the items as a JSON array.
func (s *Slice[E]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns the JSON form of the items, or the %v form when they cannot
// be encoded. It implements [fmt.Stringer].
func (s *Slice[E]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Single values
// ─────────────────────────────────────────────────────────────────────────────

// First wraps the first item, or the zero value when empty.
func (s *Slice[E]) First() *Chain[E] { return Of(arr.First(s.items)) }

// Head is an alias for [Slice.First].
func (s *Slice[E]) Head() *Chain[E] { return s.First() }

// Last wraps the last item, or the zero value when empty.
func (s *Slice[E]) Last() *Chain[E] { return Of(arr.Last(s.items)) }

// Nth wraps the item at n (negative counts from the end), or the zero value.
func (s *Slice[E]) Nth(n int) *Chain[E] {
	var zero E
	return Of(arr.Nth(s.items, n).OrElse(zero))
}

// Find wraps the first item satisfying fn, or the zero value.
func (s *Slice[E]) Find(fn func(E) bool) *Chain[E] {
	v, _ := collections.Find(s.items, fn)
	return Of(v)
}

// Size wraps the number of items.
func (s *Slice[E]) Size() *Chain[int] { return Of(len(s.items)) }

// Every wraps whether fn holds for all items.
func (s *Slice[E]) Every(fn func(E) bool) *Chain[bool] {
	return Of(collections.Every(s.items, fn))
}

// Some wraps whether fn holds for any item.
func (s *Slice[E]) Some(fn func(E) bool) *Chain[bool] {
	return Of(collections.Some(s.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take keeps the first n items.
func (s *Slice[E]) Take(n int) *Slice[E] { return wrap(arr.Take(s.items, n)) }

// TakeRight keeps the last n items.
func (s *Slice[E]) TakeRight(n int) *Slice[E] { return wrap(arr.TakeRight(s.items, n)) }

// Drop removes the first n items.
func (s *Slice[E]) Drop(n int) *Slice[E] { return wrap(arr.Drop(s.items, n)) }

// DropRight removes the last n items.
func (s *Slice[E]) DropRight(n int) *Slice[E] { return wrap(arr.DropRight(s.items, n)) }

// Reverse reverses the items.
func (s *Slice[E]) Reverse() *Slice[E] { return wrap(arr.Reverse(s.items)) }

// Concat appends other's items.
func (s *Slice[E]) Concat(other *Slice[E]) *Slice[E] {
	return wrap(arr.Concat(s.items, other.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection operations
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items satisfying fn.
func (s *Slice[E]) Filter(fn func(E) bool) *Slice[E] {
	return wrap(collections.Filter(s.items, fn))
}

// Reject drops the items satisfying fn.
func (s *Slice[E]) Reject(fn func(E) bool) *Slice[E] {
	return wrap(collections.Reject(s.items, fn))
}

// Map applies a same-typed fn to every item. Use the package-level [Map]
// to change the element type.
func (s *Slice[E]) Map(fn func(E) E) *Slice[E] {
	return wrap(collections.Map(s.items, fn))
}

// ForEach replaces every item with fn(item). The result is a new chain; the
// receiver keeps its items.
func (s *Slice[E]) ForEach(fn func(E) E) *Slice[E] {
	return wrap(collections.ForEach(s.Value(), fn))
}

// Each calls fn(item, index) until it returns false, then returns s.
func (s *Slice[E]) Each(fn func(E, int) bool) *Slice[E] {
	collections.Each(s.items, fn)
	return s
}

// Sort returns the items sorted stably by cmp, which returns a negative
// number when a < b, zero when equal and a positive number otherwise.
func (s *Slice[E]) Sort(cmp func(a, b E) int) *Slice[E] {
	out := s.Value()
	slices.SortStableFunc(out, cmp)
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional
// ─────────────────────────────────────────────────────────────────────────────

// When applies fn when condition is true and otherwise returns s.
func (s *Slice[E]) When(condition bool, fn func(*Slice[E]) *Slice[E]) *Slice[E] {
	if condition {
		return fn(s)
	}
	return s
}

// WhenEmpty applies fn when there are no items.
func (s *Slice[E]) WhenEmpty(fn func(*Slice[E]) *Slice[E]) *Slice[E] {
	return s.When(len(s.items) == 0, fn)
}
