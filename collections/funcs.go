package collections

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item until fn returns false.
func Each[T any](items []T, fn func(T, int) bool) {
	for i, item := range items {
		if !fn(item, i) {
			return
		}
	}
}

// EachRight is like [Each] but iterates from the last item to the first.
func EachRight[T any](items []T, fn func(T, int) bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if !fn(items[i], i) {
			return
		}
	}
}

// ForEach replaces every element of items, in place, with fn(element) and
// returns items.
//
//	a := []int{1, 2, 3, 4}
//	collections.ForEach(a, func(n int) int { return n + 1 })
//	// a is now [2 3 4 5]
func ForEach[T any](items []T, fn func(T) T) []T {
	for i, item := range items {
		items[i] = fn(item)
	}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new slice holding fn applied to every item, in order.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapIndexed is like [Map] but fn also receives the index.
func MapIndexed[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// MapProperty plucks key from every map. Missing keys yield the zero value.
//
//	collections.MapProperty([]map[string]int{{"a": 1}, {"a": 2}}, "a") // → [1 2]
func MapProperty[K comparable, V any](items []map[K]V, key K) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = item[key]
	}
	return out
}

// FlatMap maps every item to a slice and concatenates the results.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & searching
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fn returns true.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the items for which fn returns false.
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// Find returns the first item satisfying fn.
func Find[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindLast returns the last item satisfying fn.
func FindLast[T any](items []T, fn func(T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Every reports whether fn holds for all items. It is true for no items.
func Every[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for at least one item.
func Some[T any](items []T, fn func(T) bool) bool {
	_, ok := Find(items, fn)
	return ok
}

// Partition splits items into those satisfying fn and the rest, keeping
// order.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key fn produces. Items keep their input order
// within each group.
//
//	collections.GroupBy([]float64{6.1, 4.2, 6.3}, num.FloorInt[float64])
//	// → map[4:[4.2] 6:[6.1 6.3]]
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy indexes items by the key fn produces. Later items win on collision.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// CountBy counts items per key fn produces.
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[fn(item)]++
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds items from left to right, starting with initial.
//
//	collections.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int { return acc * n }, 1) // → 24
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// ReduceRight folds items from right to left, starting with initial.
func ReduceRight[T, U any](items []T, fn func(U, T) U, initial U) U {
	acc := initial
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(acc, items[i])
	}
	return acc
}
