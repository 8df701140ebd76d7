// Package fn provides function adapters modelled after lodash's Function and
// Util helpers: identity, currying and partial application.
//
// # Typed adapters
//
// For functions of a known, small arity the typed adapters keep full
// compile-time checking:
//
//	add := func(a, b int) int { return a + b }
//	fn.Curry2(add)(1)(2)            // → 3
//	fn.Partial2(add, 1)(2)          // → 3
//	fn.CurryRight3(abc)(3)(2)(1)    // → abc(1, 2, 3)
//
// # Variadic adapters
//
// lodash lets arguments arrive in any grouping across calls. [Curry],
// [CurryRight], [Partial] and [PartialRight] reproduce that for functions over
// a single argument type. The arity is always declared by the caller; it is
// never guessed from the function value:
//
//	sum := func(xs ...int) int { return xs[0] + xs[1] + xs[2] }
//	c := fn.Curry(3, sum)
//	c.Apply(1).Apply(2).Must(3)     // → 6
//	c.Apply(1, 2).Must(3)           // → 6
//	v, err := c.Call(1)             // err wraps ErrNotEnoughArguments
//
// Every Apply returns a new adapter, so a partially applied value can be
// reused as a prefix for several calls.
//
// # Right-to-left
//
// [CurryRight] and [PartialRight] fill the rightmost open positions first.
// Each call's group keeps its own order:
//
//	r := fn.CurryRight(3, abc)
//	r.Apply(3).Apply(2).Must(1)     // → abc(1, 2, 3)
//	r.Apply(2, 3).Must(1)           // → abc(1, 2, 3)
package fn
