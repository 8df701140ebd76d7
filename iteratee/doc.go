// Package iteratee turns values into the unary functions that traversal
// helpers apply to each element, following lodash's _.iteratee shorthands.
//
// Four shorthands are understood for elements of type map[K]V:
//
//	map[K]V        → Matches(source)             partial deep match
//	Pair[K, V]     → MatchesProperty(key, value) single key equality
//	K              → Property(key)               value lookup
//	func(map[K]V)… → the function itself
//
// The typed builders ([Matches], [MatchesProperty], [Property]) resolve at
// compile time. [Resolve] performs the same dispatch at run time for callers
// that receive the shorthand as a plain value:
//
//	it, err := iteratee.Resolve[string, int](iteratee.NewPair("b", 2))
//	it.Test(map[string]int{"a": 1, "b": 2}) // → true
package iteratee
