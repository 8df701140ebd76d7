package lang_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-lodash/lang"
)

type point struct {
	x, y int
}

func TestIsEqual(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"a": 1, "b": 2}
	if !lang.IsEqual(a, b) {
		t.Fatal("equal maps should be equal")
	}
	b["b"] = 3
	if lang.IsEqual(a, b) {
		t.Fatal("maps with different values should differ")
	}
}

func TestIsEqualNested(t *testing.T) {
	a := map[string]any{"list": []any{1, map[string]any{"k": "v"}}}
	b := map[string]any{"list": []any{1, map[string]any{"k": "v"}}}
	if !lang.IsEqual(a, b) {
		t.Fatal("nested structures should be equal")
	}
}

func TestIsEqualLodashSemantics(t *testing.T) {
	if !lang.IsEqual(math.NaN(), math.NaN()) {
		t.Fatal("NaN should equal NaN")
	}
	if !lang.IsEqual([]int(nil), []int{}) {
		t.Fatal("nil slice should equal empty slice")
	}
	if lang.IsEqual(1, int64(1)) {
		t.Fatal("different dynamic types should not be equal")
	}
	if !lang.IsEqual(point{1, 2}, point{1, 2}) || lang.IsEqual(point{1, 2}, point{2, 1}) {
		t.Fatal("unexported fields should be compared")
	}
}

func TestIsMatch(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	b := map[string]int{"a": 1, "b": 2}
	c := map[string]int{"b": 1, "c": 2}

	if !lang.IsMatch(a, b) {
		t.Fatal("IsMatch(a, b) should be true")
	}
	if lang.IsMatch(a, c) {
		t.Fatal("IsMatch(a, c) should be false")
	}
	if !lang.IsMatch(a, map[string]int{}) {
		t.Fatal("empty source should match")
	}
	if lang.IsMatch(map[string]int{}, b) {
		t.Fatal("missing keys should not match")
	}
}

func TestIsMatchDeepValues(t *testing.T) {
	obj := map[string]any{"tags": []string{"x", "y"}, "n": 1}
	if !lang.IsMatch(obj, map[string]any{"tags": []string{"x", "y"}}) {
		t.Fatal("slice values should compare deeply")
	}
}

func TestIsEmpty(t *testing.T) {
	empty := []any{nil, "", []int{}, map[string]int{}, (*int)(nil), struct{}{}, 1, true}
	for _, v := range empty {
		if !lang.IsEmpty(v) {
			t.Fatalf("IsEmpty(%#v) = false; want true", v)
		}
	}
	full := []any{"a", []int{1}, map[string]int{"a": 1}, point{}, new(int)}
	for _, v := range full {
		if lang.IsEmpty(v) {
			t.Fatalf("IsEmpty(%#v) = true; want false", v)
		}
	}
}
