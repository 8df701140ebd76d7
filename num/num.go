package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any Go integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add returns augend + addend.
func Add[T Number](augend, addend T) T { return augend + addend }

// Subtract returns minuend - subtrahend.
func Subtract[T Number](minuend, subtrahend T) T { return minuend - subtrahend }

// Multiply returns multiplier * multiplicand.
func Multiply[T Number](multiplier, multiplicand T) T { return multiplier * multiplicand }

// Divide returns dividend / divisor as a float64, so integer operands are not
// truncated: Divide(5, 2) == 2.5. Division by zero follows IEEE 754.
func Divide[A, B Number](dividend A, divisor B) float64 {
	return float64(dividend) / float64(divisor)
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// Ceil rounds n up.
func Ceil[T Number](n T) float64 { return math.Ceil(float64(n)) }

// Floor rounds n down.
func Floor[T Number](n T) float64 { return math.Floor(float64(n)) }

// CeilInt rounds n up to an int64.
func CeilInt[T Number](n T) int64 { return int64(Ceil(n)) }

// FloorInt rounds n down to an int64. It is handy as a grouping key.
func FloorInt[T Number](n T) int64 { return int64(Floor(n)) }

// Round rounds n to precision decimal places, half away from zero. A negative
// precision rounds to the left of the decimal point.
func Round[T Number](n T, precision int) float64 {
	if precision < 0 {
		scale := math.Pow10(-precision)
		return math.Round(float64(n)/scale) * scale
	}
	scale := math.Pow10(precision)
	return math.Round(float64(n)*scale) / scale
}

// Clamp limits n to the inclusive range [lower, upper].
func Clamp[T Number](n, lower, upper T) T {
	return max(lower, min(n, upper))
}

// InRange reports whether start <= n < end. The bounds are swapped when
// start > end.
func InRange[T Number](n, start, end T) bool {
	if start > end {
		start, end = end, start
	}
	return n >= start && n < end
}
