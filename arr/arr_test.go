package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash/arr"
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

// ─── First / Head / Last / Nth ───────────────────────────────────────────────

func TestFirst(t *testing.T) {
	if v := arr.First([]int{1, 2, 3}); v != 1 {
		t.Fatalf("First = %v; want 1", v)
	}
	if v := arr.First([]string{}); v != "" {
		t.Fatalf("First on empty = %q; want zero value", v)
	}
}

func TestHead(t *testing.T) {
	if v := arr.Head([]int{1, 2, 3}); v != 1 {
		t.Fatalf("Head = %v; want 1", v)
	}
}

func TestLast(t *testing.T) {
	if v := arr.Last([]int{1, 2, 3}); v != 3 {
		t.Fatalf("Last = %v; want 3", v)
	}
	if v := arr.Last[int](nil); v != 0 {
		t.Fatalf("Last on nil = %v; want 0", v)
	}
}

func TestNth(t *testing.T) {
	items := []string{"a", "b", "c"}
	if v, ok := arr.Nth(items, 1).Get(); !ok || v != "b" {
		t.Fatalf("Nth(1) = %v, %v; want b, true", v, ok)
	}
	if v, ok := arr.Nth(items, -1).Get(); !ok || v != "c" {
		t.Fatalf("Nth(-1) = %v, %v; want c, true", v, ok)
	}
	if arr.Nth(items, 3).IsPresent() || arr.Nth(items, -4).IsPresent() {
		t.Fatal("Nth out of range should be empty")
	}
}

// ─── Slicing ─────────────────────────────────────────────────────────────────

func TestTake(t *testing.T) {
	assertSlice(t, arr.Take([]int{1, 2, 3}, 2), []int{1, 2})
	assertSlice(t, arr.Take([]int{1, 2, 3}, 5), []int{1, 2, 3})
	assertSlice(t, arr.Take([]int{1, 2, 3}, 0), []int{})
	assertSlice(t, arr.Take([]int{1, 2, 3}, -1), []int{})
}

func TestTakeCopies(t *testing.T) {
	in := []int{1, 2, 3}
	out := arr.Take(in, 2)
	out[0] = 99
	if in[0] != 1 {
		t.Fatal("Take aliased its input")
	}
}

func TestTakeRight(t *testing.T) {
	assertSlice(t, arr.TakeRight([]int{1, 2, 3}, 2), []int{2, 3})
	assertSlice(t, arr.TakeRight([]int{1, 2, 3}, 9), []int{1, 2, 3})
}

func TestDrop(t *testing.T) {
	assertSlice(t, arr.Drop([]int{1, 2, 3}, 1), []int{2, 3})
	assertSlice(t, arr.Drop([]int{1, 2, 3}, 5), []int{})
	assertSlice(t, arr.DropRight([]int{1, 2, 3}, 1), []int{1, 2})
}

func TestChunk(t *testing.T) {
	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(chunks) != 3 {
		t.Fatalf("Chunk len = %d; want 3", len(chunks))
	}
	assertSlice(t, chunks[0], []int{1, 2})
	assertSlice(t, chunks[2], []int{5})
	if len(arr.Chunk([]int{1}, 0)) != 0 {
		t.Fatal("Chunk size 0 should return no groups")
	}
}

func TestChunkCopies(t *testing.T) {
	in := []int{1, 2, 3}
	arr.Chunk(in, 2)[0][0] = 99
	if in[0] != 1 {
		t.Fatal("Chunk aliased its input")
	}
}

func TestReverse(t *testing.T) {
	assertSlice(t, arr.Reverse([]int{1, 2, 3}), []int{3, 2, 1})
}

// ─── Restructuring ───────────────────────────────────────────────────────────

func TestUniq(t *testing.T) {
	assertSlice(t, arr.Uniq([]int{2, 1, 2, 3, 1}), []int{2, 1, 3})
}

func TestUniqBy(t *testing.T) {
	got := arr.UniqBy([]float64{2.1, 1.2, 2.3}, func(f float64) int { return int(f) })
	assertSlice(t, got, []float64{2.1, 1.2})
}

func TestFlatten(t *testing.T) {
	assertSlice(t, arr.Flatten([][]int{{1, 2}, {3}, {}}), []int{1, 2, 3})
}

func TestCompact(t *testing.T) {
	assertSlice(t, arr.Compact([]int{0, 1, 0, 2}), []int{1, 2})
}

func TestConcat(t *testing.T) {
	assertSlice(t, arr.Concat([]int{1}, []int{2, 3}, []int{4}), []int{1, 2, 3, 4})
}

// ─── Searching ───────────────────────────────────────────────────────────────

func TestIndexOf(t *testing.T) {
	if i := arr.IndexOf([]int{10, 20, 30}, 20); i != 1 {
		t.Fatalf("IndexOf = %d; want 1", i)
	}
	if i := arr.IndexOf([]int{10, 20}, 99); i != -1 {
		t.Fatalf("IndexOf missing = %d; want -1", i)
	}
}

func TestFindIndex(t *testing.T) {
	if i := arr.FindIndex([]int{1, 2, 3}, func(n int) bool { return n > 1 }); i != 1 {
		t.Fatalf("FindIndex = %d; want 1", i)
	}
}

func TestIncludes(t *testing.T) {
	if !arr.Includes([]string{"a", "b"}, "b") || arr.Includes([]string{"a"}, "z") {
		t.Fatal("Includes mismatch")
	}
}

// ─── Set operations ──────────────────────────────────────────────────────────

func TestDifference(t *testing.T) {
	assertSlice(t, arr.Difference([]int{2, 1}, []int{2, 3}), []int{1})
}

func TestIntersection(t *testing.T) {
	assertSlice(t, arr.Intersection([]int{2, 1, 2}, []int{2, 3}), []int{2})
}

func TestZip(t *testing.T) {
	pairs := arr.Zip([]string{"a", "b", "c"}, []int{1, 2})
	if len(pairs) != 2 || pairs[0].A != "a" || pairs[1].B != 2 {
		t.Fatalf("Zip = %v", pairs)
	}
}
