package fn_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hasbyte1/go-lodash/fn"
)

func weighted(xs ...int) int {
	total := 0
	for i, x := range xs {
		total += (i + 1) * x
	}
	return total
}

// split cuts xs into three consecutive groups at the given points.
func split(xs []int, a, b int) [][]int {
	cuts := []int{a, b}
	sort.Ints(cuts)
	return [][]int{xs[:cuts[0]], xs[cuts[0]:cuts[1]], xs[cuts[1]:]}
}

func TestCurryAnySplitProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("curry matches direct call for any split", prop.ForAll(
		func(xs []int, a, b int) bool {
			c := fn.Curry(len(xs), weighted)
			for _, group := range split(xs, a, b) {
				c = c.Apply(group...)
			}
			got, err := c.Result()
			return err == nil && got == weighted(xs...)
		},
		gen.SliceOfN(5, gen.IntRange(-100, 100)),
		gen.IntRange(0, 5),
		gen.IntRange(0, 5),
	))

	properties.Property("curryRight reverses group order only", prop.ForAll(
		func(xs []int, a, b int) bool {
			groups := split(xs, a, b)
			c := fn.CurryRight(len(xs), weighted)
			for i := len(groups) - 1; i >= 0; i-- {
				c = c.Apply(groups[i]...)
			}
			got, err := c.Result()
			return err == nil && got == weighted(xs...)
		},
		gen.SliceOfN(5, gen.IntRange(-100, 100)),
		gen.IntRange(0, 5),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}

func TestPartialProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	sub := func(a, b int) int { return a - b }

	properties.Property("partial(f, a)(b) == f(a, b)", prop.ForAll(
		func(a, b int) bool {
			return fn.Partial2(sub, a)(b) == sub(a, b) &&
				fn.Partial(2, func(xs ...int) int { return sub(xs[0], xs[1]) }, a).Must(b) == sub(a, b)
		},
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
