package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-lodash/collections"
	"github.com/hasbyte1/go-lodash/num"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	var seen []int
	collections.Each([]int{1, 2, 3, 4}, func(n, i int) bool {
		seen = append(seen, n*10+i)
		return n < 2
	})
	assertSlice(t, seen, []int{10, 21})
}

func TestEachRight(t *testing.T) {
	var seen []string
	collections.EachRight([]string{"a", "b", "c"}, func(s string, _ int) bool {
		seen = append(seen, s)
		return true
	})
	assertSlice(t, seen, []string{"c", "b", "a"})
}

func TestForEachMutatesInPlace(t *testing.T) {
	a := []int{1, 2, 3, 4}
	out := collections.ForEach(a, func(n int) int { return n + 1 })
	assertSlice(t, a, []int{2, 3, 4, 5})
	assertSlice(t, out, a)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := collections.Map([]int{1, 2, 3, 4}, func(n int) int { return n + 1 })
	assertSlice(t, got, []int{2, 3, 4, 5})
}

func TestMapChangesType(t *testing.T) {
	got := collections.Map([]int{1, 2}, strconv.Itoa)
	assertSlice(t, got, []string{"1", "2"})
}

func TestMapIndexed(t *testing.T) {
	got := collections.MapIndexed([]string{"a", "b"}, func(s string, i int) string {
		return s + strconv.Itoa(i)
	})
	assertSlice(t, got, []string{"a0", "b1"})
}

func TestMapProperty(t *testing.T) {
	c := []map[string]int{
		{"a": 1, "b": 2},
		{"a": 2, "b": 3},
		{"a": 3, "b": 4},
		{"a": 4, "b": 5},
	}
	assertSlice(t, collections.MapProperty(c, "a"), []int{1, 2, 3, 4})
	assertSlice(t, collections.MapProperty(c, "b"), []int{2, 3, 4, 5})
	assertSlice(t, collections.MapProperty(c, "z"), []int{0, 0, 0, 0})
}

func TestFlatMap(t *testing.T) {
	got := collections.FlatMap([]int{1, 2}, func(n int) []int { return []int{n, n} })
	assertSlice(t, got, []int{1, 1, 2, 2})
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & searching
// ─────────────────────────────────────────────────────────────────────────────

func isEven(n int) bool { return n%2 == 0 }

func TestFilterReject(t *testing.T) {
	assertSlice(t, collections.Filter([]int{1, 2, 3, 4}, isEven), []int{2, 4})
	assertSlice(t, collections.Reject([]int{1, 2, 3, 4}, isEven), []int{1, 3})
}

func TestFind(t *testing.T) {
	if v, ok := collections.Find([]int{1, 2, 3, 4}, isEven); !ok || v != 2 {
		t.Fatalf("Find = %v, %v; want 2, true", v, ok)
	}
	if v, ok := collections.FindLast([]int{1, 2, 3, 4}, isEven); !ok || v != 4 {
		t.Fatalf("FindLast = %v, %v; want 4, true", v, ok)
	}
	if _, ok := collections.Find([]int{1, 3}, isEven); ok {
		t.Fatal("Find should report false")
	}
}

func TestEverySome(t *testing.T) {
	if !collections.Every([]int{2, 4}, isEven) || collections.Every([]int{2, 3}, isEven) {
		t.Fatal("Every mismatch")
	}
	if !collections.Every([]int{}, isEven) {
		t.Fatal("Every of nothing should be true")
	}
	if !collections.Some([]int{1, 2}, isEven) || collections.Some([]int{1, 3}, isEven) {
		t.Fatal("Some mismatch")
	}
}

func TestPartition(t *testing.T) {
	even, odd := collections.Partition([]int{1, 2, 3, 4}, isEven)
	assertSlice(t, even, []int{2, 4})
	assertSlice(t, odd, []int{1, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupBy(t *testing.T) {
	v := []float64{6.1, 4.2, 6.3}
	want := map[int64][]float64{
		4: {4.2},
		6: {6.1, 6.3},
	}
	assert.Equal(t, want, collections.GroupBy(v, num.FloorInt[float64]))
}

func TestKeyBy(t *testing.T) {
	type item struct{ ID int }
	keyed := collections.KeyBy([]item{{1}, {2}, {3}}, func(i item) int { return i.ID })
	if keyed[2].ID != 2 || len(keyed) != 3 {
		t.Fatalf("KeyBy = %v", keyed)
	}
}

func TestCountBy(t *testing.T) {
	got := collections.CountBy([]float64{6.1, 4.2, 6.3}, num.FloorInt[float64])
	assert.Equal(t, map[int64]int{4: 1, 6: 2}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

func TestReduce(t *testing.T) {
	a := []int{1, 2, 3, 4}
	if got := collections.Reduce(a, num.Add[int], 0); got != 10 {
		t.Fatalf("Reduce add = %d; want 10", got)
	}
	if got := collections.Reduce(a, num.Multiply[int], 1); got != 24 {
		t.Fatalf("Reduce multiply = %d; want 24", got)
	}
}

func TestReduceChangesType(t *testing.T) {
	got := collections.Reduce([]int{1, 2, 3}, func(acc string, n int) string {
		return acc + strconv.Itoa(n)
	}, "")
	if got != "123" {
		t.Fatalf("Reduce = %q; want 123", got)
	}
}

func TestReduceRight(t *testing.T) {
	got := collections.ReduceRight([][]int{{0, 1}, {2, 3}, {4, 5}}, func(acc, chunk []int) []int {
		return append(acc, chunk...)
	}, nil)
	assertSlice(t, got, []int{4, 5, 2, 3, 0, 1})
}
