// Package collections provides lodash's Collection helpers: traversal,
// mapping, filtering, grouping and folding over plain Go slices.
//
// # Callbacks
//
// Every helper takes a typed callback:
//
//	doubled := collections.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
//	byFloor := collections.GroupBy([]float64{6.1, 4.2, 6.3}, num.FloorInt[float64])
//	total   := collections.Reduce([]int{1, 2, 3, 4}, num.Add[int], 0)
//
// # Iteratee shorthands
//
// For slices of maps, the *By variants accept any lodash iteratee shorthand
// (see package iteratee): a map to match, an [iteratee.Pair], a key, or a
// function.
//
//	users := []map[string]any{
//	    {"user": "barney", "active": true},
//	    {"user": "fred", "active": false},
//	}
//	active, _ := collections.FilterBy(users, iteratee.NewPair[string, any]("active", true))
//	names := collections.MapProperty(users, "user") // → [barney fred]
//
// # Mutation
//
// Only [ForEach] writes to its input; it replaces every element with the
// callback's result. All other helpers return new slices or maps.
package collections
