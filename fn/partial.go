package fn

// Partial binds a prefix of f's arguments. The result accepts the remaining
// arguments in any grouping, exactly like [Curry].
//
//	add := func(xs ...int) int { return xs[0] + xs[1] }
//	addOne := fn.Partial(2, add, 1)
//	addOne.Must(2) // → 3
func Partial[A, R any](arity int, f func(...A) R, bound ...A) *Curried[A, R] {
	return Curry(arity, f).Apply(bound...)
}

// PartialRight binds a suffix of f's arguments. Later groups fill the
// rightmost open positions, as with [CurryRight].
func PartialRight[A, R any](arity int, f func(...A) R, bound ...A) *Curried[A, R] {
	return CurryRight(arity, f).Apply(bound...)
}

// Partial2 binds the first argument of a two argument function.
func Partial2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Partial3 binds the first argument of a three argument function.
func Partial3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R { return f(a, b, c) }
}

// Partial3x2 binds the first two arguments of a three argument function.
func Partial3x2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return f(a, b, c) }
}

// PartialRight2 binds the last argument of a two argument function.
func PartialRight2[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R { return f(a, b) }
}

// PartialRight3 binds the last argument of a three argument function.
func PartialRight3[A, B, C, R any](f func(A, B, C) R, c C) func(A, B) R {
	return func(a A, b B) R { return f(a, b, c) }
}

// PartialRight3x2 binds the last two arguments of a three argument function.
func PartialRight3x2[A, B, C, R any](f func(A, B, C) R, b B, c C) func(A) R {
	return func(a A) R { return f(a, b, c) }
}
