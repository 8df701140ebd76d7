package arr

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of items, or the zero value when items is
// empty.
func First[T any](items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[0]
}

// Head is an alias for [First].
func Head[T any](items []T) T { return First(items) }

// Last returns the last element of items, or the zero value when items is
// empty.
func Last[T any](items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[len(items)-1]
}

// Nth returns the element at index n. A negative n counts back from the end.
// The option is empty when n is out of range.
func Nth[T any](items []T, n int) mo.Option[T] {
	if n < 0 {
		n += len(items)
	}
	if n < 0 || n >= len(items) {
		return mo.None[T]()
	}
	return mo.Some(items[n])
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a copy of the first n elements. n is clamped to [0, len(items)].
func Take[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// TakeRight returns a copy of the last n elements.
func TakeRight[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

// Drop returns a copy of items without its first n elements.
func Drop[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// DropRight returns a copy of items without its last n elements.
func DropRight[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, len(items)-n)
	copy(out, items[:len(items)-n])
	return out
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

// Chunk splits items into groups of size. The last group may be shorter.
// A size below one yields no groups.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	return lo.Chunk(slices.Clone(items), size)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns items with duplicates removed, keeping first occurrences.
func Uniq[T comparable](items []T) []T {
	return lo.Uniq(items)
}

// UniqBy is like [Uniq] but compares the keys produced by fn.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	return lo.UniqBy(items, fn)
}

// Flatten flattens one level of nesting.
func Flatten[T any](items [][]T) []T {
	return lo.Flatten(items)
}

// Compact returns items without zero values (lodash drops falsey values).
func Compact[T comparable](items []T) []T {
	return lo.Compact(items)
}

// Concat returns a new slice holding items followed by every slice in more.
func Concat[T any](items []T, more ...[]T) []T {
	total := len(items)
	for _, m := range more {
		total += len(m)
	}
	out := make([]T, 0, total)
	out = append(out, items...)
	for _, m := range more {
		out = append(out, m...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Includes reports whether items contains value.
func Includes[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Difference returns elements of a that are not in b.
func Difference[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the unique elements present in both a and b, in the
// order they appear in a.
func Intersection[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range Uniq(a) {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// Zip pairs elements of a and b at the same index, stopping at the shorter.
func Zip[A, B any](a []A, b []B) []lo.Tuple2[A, B] {
	n := min(len(a), len(b))
	out := make([]lo.Tuple2[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = lo.T2(a[i], b[i])
	}
	return out
}
