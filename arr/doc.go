// Package arr provides lodash's Array helpers for plain Go slices.
//
// All helpers are generic and operate on []T values; no wrapper type is
// required:
//
//	arr.First([]int{1, 2, 3})      // → 1
//	arr.Last([]int{1, 2, 3})       // → 3
//	arr.Take([]int{1, 2, 3}, 2)    // → [1 2]
//	arr.Chunk([]int{1, 2, 3}, 2)   // → [[1 2] [3]]
//
// # Missing elements
//
// lodash returns undefined for out-of-range reads. The Go counterpart is the
// zero value of T: [First], [Head] and [Last] on an empty slice return the
// zero value. Use [Nth] when the caller needs to tell a stored zero from a
// miss.
//
// # Copies
//
// Functions that return a slice always return a new one; the input is never
// aliased or modified.
package arr
