// Package num provides lodash's Math helpers over Go's numeric types.
//
//	num.Add(1, 2)          // → 3
//	num.Divide(5, 2)       // → 2.5 (always floating point)
//	num.Floor(-4.9)        // → -5
//	num.Mean([]int{1, 2})  // → 1.5
//
// Results keep the operand type where lodash would keep the number intact
// ([Add], [Subtract], [Multiply], [Sum]) and widen to float64 where a
// fractional result is possible ([Divide], [Mean]).
package num
