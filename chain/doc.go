// Package chain provides lodash's explicit chaining: a wrapper that threads a
// value through successive operations and is unwrapped with Value.
//
// # Overview
//
// lodash uses one wrapper for every kind of value. Go methods cannot add type
// parameters, so the wrapper comes in three shapes:
//
//   - [Chain][T] wraps any value.
//   - [Slice][E] wraps a []E and adds the Array and Collection operations.
//   - [Object][K, V] wraps a map[K]V and adds the Object operations.
//
// Operations that derive a single value ([Slice.First], [Object.Get],
// [Object.Has], …) return a *Chain of that value:
//
//	chain.New(1, 2, 3).Take(2).Value()                         // → [1 2]
//	chain.New(1, 2, 3).First().Value()                         // → 1
//	chain.FromMap(map[string]int{"key1": 1}).Get("key1").Value() // → 1
//
// # Type-changing operations
//
// Operations whose result has a different element type are package-level
// functions that take and return wrappers, so they still compose:
//
//	chain.Map(chain.New(1, 2, 3), strconv.Itoa).Value()           // → ["1" "2" "3"]
//	chain.GroupBy(chain.New(6.1, 4.2, 6.3), num.FloorInt[float64]).Value()
//	chain.MapProperty(chain.New(rows...), "a").Value()
//
// # Value semantics
//
// Every operation returns a new wrapper. The wrappers copy the slices and
// maps they are built from and hand out copies from Value, so neither the
// caller's containers nor earlier links of a chain are ever modified.
//
// # Mixins
//
// Functions registered with [Mixin] are callable on any wrapper by name,
// the counterpart of lodash's _.mixin:
//
//	chain.Mixin("evens", func(v any, _ ...any) any {
//	    return collections.Filter(v.([]int), func(n int) bool { return n%2 == 0 })
//	})
//	evens, err := chain.New(1, 2, 3, 4).Call("evens")   // *Slice[int]{2, 4}
package chain
