package fn

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Typed adapters
// ─────────────────────────────────────────────────────────────────────────────

// Curry2 turns a two argument function into a chain of unary functions.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 turns a three argument function into a chain of unary functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// CurryRight2 is like [Curry2] but accepts the arguments last to first.
func CurryRight2[A, B, R any](f func(A, B) R) func(B) func(A) R {
	return func(b B) func(A) R {
		return func(a A) R {
			return f(a, b)
		}
	}
}

// CurryRight3 is like [Curry3] but accepts the arguments last to first.
//
//	abc := func(a, b, c int) []int { return []int{a, b, c} }
//	fn.CurryRight3(abc)(3)(2)(1) // → [1 2 3]
func CurryRight3[A, B, C, R any](f func(A, B, C) R) func(C) func(B) func(A) R {
	return func(c C) func(B) func(A) R {
		return func(b B) func(A) R {
			return func(a A) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 inverts [Curry2].
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Uncurry3 inverts [Curry3].
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Variadic adapter
// ─────────────────────────────────────────────────────────────────────────────

// Curried accumulates arguments for a function of declared arity until
// enough are held to invoke it.
//
// A Curried value is immutable: [Curried.Apply] returns a new value and
// leaves the receiver untouched, so a Curried value is safe to share.
type Curried[A, R any] struct {
	arity int
	fn    func(...A) R
	args  []A
	right bool
}

// Curry returns an adapter for f that accepts its arity arguments in any
// grouping across calls, left to right.
//
// Curry panics if f is nil or arity is negative.
func Curry[A, R any](arity int, f func(...A) R) *Curried[A, R] {
	return newCurried(arity, f, false)
}

// CurryRight is like [Curry] but each group of arguments fills the rightmost
// open positions.
func CurryRight[A, R any](arity int, f func(...A) R) *Curried[A, R] {
	return newCurried(arity, f, true)
}

func newCurried[A, R any](arity int, f func(...A) R, right bool) *Curried[A, R] {
	if f == nil {
		panic("fn: nil function")
	}
	if arity < 0 {
		panic(fmt.Sprintf("fn: negative arity %d", arity))
	}
	return &Curried[A, R]{arity: arity, fn: f, right: right}
}

// Apply returns a new adapter holding the receiver's arguments plus args.
func (c *Curried[A, R]) Apply(args ...A) *Curried[A, R] {
	next := make([]A, 0, len(c.args)+len(args))
	if c.right {
		next = append(next, args...)
		next = append(next, c.args...)
	} else {
		next = append(next, c.args...)
		next = append(next, args...)
	}
	return &Curried[A, R]{arity: c.arity, fn: c.fn, args: next, right: c.right}
}

// Result invokes the wrapped function with the held arguments.
//
// It returns [ErrNotEnoughArguments] or [ErrTooManyArguments] unless exactly
// Arity arguments are held.
func (c *Curried[A, R]) Result() (R, error) {
	var zero R
	switch n := len(c.args); {
	case n < c.arity:
		return zero, fmt.Errorf("%w: have %d, want %d", ErrNotEnoughArguments, n, c.arity)
	case n > c.arity:
		return zero, fmt.Errorf("%w: have %d, want %d", ErrTooManyArguments, n, c.arity)
	}
	return c.fn(c.Args()...), nil
}

// Call applies args and invokes the function.
func (c *Curried[A, R]) Call(args ...A) (R, error) {
	return c.Apply(args...).Result()
}

// Must is like [Curried.Call] but panics on an arity error.
func (c *Curried[A, R]) Must(args ...A) R {
	r, err := c.Call(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// Ready reports whether exactly Arity arguments are held.
func (c *Curried[A, R]) Ready() bool { return len(c.args) == c.arity }

// Remaining returns how many arguments are still missing. It is negative when
// too many were supplied.
func (c *Curried[A, R]) Remaining() int { return c.arity - len(c.args) }

// Arity returns the declared number of arguments.
func (c *Curried[A, R]) Arity() int { return c.arity }

// Args returns a copy of the held arguments in call order.
func (c *Curried[A, R]) Args() []A {
	out := make([]A, len(c.args))
	copy(out, c.args)
	return out
}
