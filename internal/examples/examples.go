package examples

import (
	"fmt"

	"github.com/hasbyte1/go-lodash/arr"
	"github.com/hasbyte1/go-lodash/chain"
	"github.com/hasbyte1/go-lodash/collections"
	"github.com/hasbyte1/go-lodash/fn"
	"github.com/hasbyte1/go-lodash/iteratee"
	"github.com/hasbyte1/go-lodash/lang"
	"github.com/hasbyte1/go-lodash/num"
	"github.com/hasbyte1/go-lodash/object"
)

// Example is a named, self-checking use of one operation.
type Example struct {
	Name string
	Run  func() error
}

// All returns the full catalogue in a stable order.
func All() []Example {
	return []Example{
		{"add", add},
		{"subtract", subtract},
		{"multiply", multiply},
		{"divide", divide},
		{"ceil", ceil},
		{"floor", floor},
		{"first", first},
		{"head", head},
		{"last", last},
		{"take", take},
		{"get", get},
		{"has", has},
		{"set", set},
		{"isEqual", isEqual},
		{"isMatch", isMatch},
		{"curry", curry},
		{"curryRight", curryRight},
		{"partial", partial},
		{"partialRight", partialRight},
		{"identity", identity},
		{"matches", matches},
		{"matchesProperty", matchesProperty},
		{"property", property},
		{"iteratee", iterateeShorthands},
		{"forEach", forEach},
		{"groupBy", groupBy},
		{"map", mapping},
		{"reduce", reduce},
		{"sum", sum},
		{"mean", mean},
	}
}

// expect reports an error unless got deeply equals want.
func expect(what string, got, want any) error {
	if lang.IsEqual(got, want) {
		return nil
	}
	return fmt.Errorf("%w: %s: got %v, want %v", ErrExampleFailed, what, got, want)
}

// check reports an error unless ok.
func check(what string, ok bool) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrExampleFailed, what)
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Math
// ─────────────────────────────────────────────────────────────────────────────

func add() error {
	return firstErr(
		expect("add(1, 2)", num.Add(1, 2), 3),
		expect("add(2.1, 3.4)", num.Add(2.1, 3.4), 5.5),
	)
}

func subtract() error {
	return firstErr(
		expect("subtract(5, 2)", num.Subtract(5, 2), 3),
		expect("subtract(7.8, 2.3)", num.Subtract(7.8, 2.3), 5.5),
	)
}

func multiply() error {
	return firstErr(
		expect("multiply(4, 2)", num.Multiply(4, 2), 8),
		expect("multiply(4, 2.1)", num.Multiply(4, 2.1), 8.4),
	)
}

func divide() error {
	return firstErr(
		expect("divide(15, 5)", num.Divide(15, 5), 3.0),
		expect("divide(15.0, 5)", num.Divide(15.0, 5), 3.0),
		expect("divide(5, 2)", num.Divide(5, 2), 2.5),
		expect("divide(5.0, 2)", num.Divide(5.0, 2), 2.5),
	)
}

func ceil() error {
	return firstErr(
		expect("ceil(2.4)", num.Ceil(2.4), 3.0),
		expect("ceil(4.0)", num.Ceil(4.0), 4.0),
		expect("ceil(4)", num.Ceil(4), 4.0),
		expect("ceil(-3.4)", num.Ceil(-3.4), -3.0),
		expect("ceil(-6)", num.Ceil(-6), -6.0),
	)
}

func floor() error {
	return firstErr(
		expect("floor(2.4)", num.Floor(2.4), 2.0),
		expect("floor(-4.9)", num.Floor(-4.9), -5.0),
		expect("floor(-7.0)", num.Floor(-7.0), -7.0),
		expect("floor(-7)", num.Floor(-7), -7.0),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Array & chain
// ─────────────────────────────────────────────────────────────────────────────

func first() error {
	a := []int{1, 2, 3}
	return firstErr(
		expect("first", arr.First(a), 1),
		expect("chain.first", chain.FromSlice(a).First().Value(), 1),
	)
}

func head() error {
	a := []int{1, 2, 3}
	return firstErr(
		expect("head", arr.Head(a), 1),
		expect("chain.head", chain.FromSlice(a).Head().Value(), 1),
	)
}

func last() error {
	a := []int{1, 2, 3}
	return firstErr(
		expect("last", arr.Last(a), 3),
		expect("chain.last", chain.FromSlice(a).Last().Value(), 3),
	)
}

func take() error {
	a := []int{1, 2, 3}
	return firstErr(
		expect("take(2)", arr.Take(a, 2), []int{1, 2}),
		expect("chain.take(2)", chain.FromSlice(a).Take(2).Value(), []int{1, 2}),
	)
}

func identity() error {
	return firstErr(
		expect("identity", fn.Identity(1), 1),
		expect("chain.identity", chain.Of(1).Identity().Value(), 1),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Object
// ─────────────────────────────────────────────────────────────────────────────

func get() error {
	a := map[string]int{"key1": 1, "key2": 2}
	return firstErr(
		expect("get(key1)", object.Get(a, "key1"), 1),
		expect("get(missing)", object.Get(a, "missing"), 0),
		expect("chain.get(key1)", chain.FromMap(a).Get("key1").Value(), 1),
	)
}

func has() error {
	a := map[string]int{"key1": 1, "key2": 2}
	return firstErr(
		check("has(key1)", object.Has(a, "key1")),
		check("!has(key3)", !object.Has(a, "key3")),
		check("chain.has(key1)", chain.FromMap(a).Has("key1").Value()),
	)
}

func set() error {
	a := map[string]int{"key1": 1, "key2": 2}
	b := map[string]int{"key1": 1, "key2": 2, "key3": 3}
	return firstErr(
		expect("chain.set(key3, 3)", chain.FromMap(a).Set("key3", 3).Value(), b),
		expect("chain.set leaves the input", len(a), 2),
		expect("set(key3, 3)", object.Set(a, "key3", 3), b),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lang
// ─────────────────────────────────────────────────────────────────────────────

func isEqual() error {
	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"a": 1, "b": 2}
	return check("isEqual", lang.IsEqual(a, b))
}

func isMatch() error {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	b := map[string]int{"a": 1, "b": 2}
	c := map[string]int{"b": 1, "c": 2}
	return firstErr(
		check("isMatch(a, b)", lang.IsMatch(a, b)),
		check("!isMatch(a, c)", !lang.IsMatch(a, c)),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Function
// ─────────────────────────────────────────────────────────────────────────────

func sum2(args ...int) int { return args[0] + args[1] }

func abc(args ...int) []int { return []int{args[0], args[1], args[2]} }

func curry() error {
	c := fn.Curry(2, sum2)
	split, err := c.Apply(1).Call(2)
	if err != nil {
		return err
	}
	whole, err := c.Call(1, 2)
	if err != nil {
		return err
	}
	typed := fn.Curry2(func(a, b int) int { return a + b })
	return firstErr(
		expect("curry(add)(1)(2)", split, 3),
		expect("curry(add)(1, 2)", whole, 3),
		expect("curry2(add)(1)(2)", typed(1)(2), 3),
	)
}

func curryRight() error {
	c := fn.CurryRight(3, abc)
	want := []int{1, 2, 3}
	return firstErr(
		expect("curryRight(abc)(3)(2)(1)", c.Apply(3).Apply(2).Must(1), want),
		expect("curryRight(abc)(2, 3)(1)", c.Apply(2, 3).Must(1), want),
		expect("curryRight(abc)(1, 2, 3)", c.Must(1, 2, 3), want),
	)
}

func partial() error {
	p := fn.Partial(2, sum2)
	return firstErr(
		expect("partial(add)(1, 2)", p.Must(1, 2), 3),
		expect("partial(add)(1)(2)", p.Apply(1).Must(2), 3),
		expect("partial(add, 1)(2)", fn.Partial(2, sum2, 1).Must(2), 3),
		expect("partial(add, 1, 2)()", fn.Partial(2, sum2, 1, 2).Must(), 3),
	)
}

func partialRight() error {
	want := []int{1, 2, 3}
	p := fn.PartialRight(3, abc, 3)
	return firstErr(
		expect("partialRight(abc, 1, 2, 3)()", fn.PartialRight(3, abc, 1, 2, 3).Must(), want),
		expect("partialRight(abc)(3)(2)(1)", fn.PartialRight(3, abc).Apply(3).Apply(2).Must(1), want),
		expect("partialRight(abc, 3)(2)(1)", p.Apply(2).Must(1), want),
		expect("partialRight(abc, 3)(1, 2)", p.Must(1, 2), want),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Util
// ─────────────────────────────────────────────────────────────────────────────

func matches() error {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	b := map[string]int{"a": 1, "b": 2}
	c := map[string]int{"b": 1, "c": 2}
	return firstErr(
		check("matches(b)(a)", iteratee.Matches(b)(a)),
		check("!matches(c)(a)", !iteratee.Matches(c)(a)),
	)
}

func matchesProperty() error {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	b := map[int]int{1: 10, 2: 20, 3: 30}
	return firstErr(
		check("matchesProperty(b, 2)", iteratee.MatchesProperty("b", 2)(a)),
		check("!matchesProperty(c, 2)", !iteratee.MatchesProperty("c", 2)(a)),
		check("matchesProperty(1, 10)", iteratee.MatchesProperty(1, 10)(b)),
		check("!matchesProperty(2, 30)", !iteratee.MatchesProperty(2, 30)(b)),
	)
}

func property() error {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	return firstErr(
		expect("property(a)", iteratee.Property[string, int]("a")(a), 1),
		expect("property(b)", iteratee.Property[string, int]("b")(a), 2),
		expect("property(c)", iteratee.Property[string, int]("c")(a), 3),
	)
}

func iterateeShorthands() error {
	a := map[string]int{"a": 1, "b": 2, "c": 1}
	m, err := iteratee.Resolve[string, int](map[string]int{"a": 1})
	if err != nil {
		return err
	}
	mp, err := iteratee.Resolve[string, int](iteratee.NewPair("a", 1))
	if err != nil {
		return err
	}
	p, err := iteratee.Resolve[string, int]("c")
	if err != nil {
		return err
	}
	f, err := iteratee.Resolve[string, int](func(o map[string]int) int {
		return object.Get(o, "a") + object.Get(o, "b")
	})
	if err != nil {
		return err
	}
	return firstErr(
		check("iteratee(matches)", m.Test(a)),
		check("iteratee(matchesProperty)", mp.Test(a)),
		check("iteratee(property)", p.Test(a)),
		expect("iteratee(func)", f.Call(a), 3),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection
// ─────────────────────────────────────────────────────────────────────────────

func forEach() error {
	a := []int{1, 2, 3, 4}
	collections.ForEach(a, func(n int) int { return n + 1 })
	return expect("forEach", a, []int{2, 3, 4, 5})
}

func groupBy() error {
	v := []float64{6.1, 4.2, 6.3}
	want := map[int64][]float64{4: {4.2}, 6: {6.1, 6.3}}
	return firstErr(
		expect("groupBy(floor)", collections.GroupBy(v, num.FloorInt[float64]), want),
		expect("chain.groupBy(floor)", chain.GroupBy(chain.FromSlice(v), num.FloorInt[float64]).Value(), want),
	)
}

func mapping() error {
	a := []int{1, 2, 3, 4}
	b := []int{2, 3, 4, 5}
	addOne := func(n int) int { return n + 1 }
	c := []map[string]int{
		{"a": 1, "b": 2},
		{"a": 2, "b": 3},
		{"a": 3, "b": 4},
		{"a": 4, "b": 5},
	}
	byA, err := collections.MapBy(c, "a")
	if err != nil {
		return err
	}
	return firstErr(
		expect("map(addOne)", collections.Map(a, addOne), b),
		expect(`map("a")`, collections.MapProperty(c, "a"), a),
		expect(`map("b")`, collections.MapProperty(c, "b"), b),
		expect(`mapBy("a")`, byA, []any{1, 2, 3, 4}),
		expect(`chain.map("a")`, chain.MapProperty(chain.FromSlice(c), "a").Value(), a),
		expect("chain.map(addOne)", chain.Map(chain.FromSlice(a), addOne).Value(), b),
	)
}

func reduce() error {
	a := []int{1, 2, 3, 4}
	return firstErr(
		expect("reduce(add, 0)", collections.Reduce(a, num.Add[int], 0), 10),
		expect("reduce(multiply, 1)", collections.Reduce(a, num.Multiply[int], 1), 24),
	)
}

func sum() error {
	objects := []map[string]int{{"n": 4}, {"n": 2}, {"n": 8}, {"n": 6}}
	return firstErr(
		expect("sum", num.Sum([]int{4, 2, 8, 6}), 20),
		expect("sumBy(n)", num.SumBy(objects, iteratee.Property[string, int]("n")), 20),
	)
}

func mean() error {
	objects := []map[string]int{{"n": 4}, {"n": 2}, {"n": 8}, {"n": 6}}
	return firstErr(
		expect("mean", num.Mean([]int{4, 2, 8, 6}), 5.0),
		expect("meanBy(n)", num.MeanBy(objects, iteratee.Property[string, int]("n")), 5.0),
	)
}
