// Package lang provides lodash's Lang comparisons: deep equality and
// partial matching.
//
//	lang.IsEqual(map[string]int{"a": 1}, map[string]int{"a": 1})  // → true
//	lang.IsMatch(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2}) // → true
//
// [IsEqual] follows lodash rather than ==: NaN equals NaN, and a nil slice
// or map equals an empty one.
package lang
