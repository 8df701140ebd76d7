package num

import "math"

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items. The sum of no items is zero.
func Sum[T Number](items []T) T {
	var total T
	for _, n := range items {
		total += n
	}
	return total
}

// SumBy returns the sum of fn applied to each item.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Mean returns the arithmetic mean of items, or NaN when items is empty.
func Mean[T Number](items []T) float64 {
	if len(items) == 0 {
		return math.NaN()
	}
	var total float64
	for _, n := range items {
		total += float64(n)
	}
	return total / float64(len(items))
}

// MeanBy returns the mean of fn applied to each item, or NaN when items is
// empty.
func MeanBy[T any, N Number](items []T, fn func(T) N) float64 {
	if len(items) == 0 {
		return math.NaN()
	}
	var total float64
	for _, item := range items {
		total += float64(fn(item))
	}
	return total / float64(len(items))
}

// Max returns the largest item. It returns false when items is empty.
func Max[T Number](items []T) (T, bool) {
	return MaxBy(items, func(n T) T { return n })
}

// Min returns the smallest item. It returns false when items is empty.
func Min[T Number](items []T) (T, bool) {
	return MinBy(items, func(n T) T { return n })
}

// MaxBy returns the item for which fn is largest; ties keep the first.
func MaxBy[T any, N Number](items []T, fn func(T) N) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); v > bestVal {
			best, bestVal = item, v
		}
	}
	return best, true
}

// MinBy returns the item for which fn is smallest; ties keep the first.
func MinBy[T any, N Number](items []T, fn func(T) N) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); v < bestVal {
			best, bestVal = item, v
		}
	}
	return best, true
}
