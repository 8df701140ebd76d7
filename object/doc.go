// Package object provides lodash's Object helpers for Go maps.
//
// # Typed access
//
// [Get], [Has] and [Set] work on any map[K]V:
//
//	m := map[string]int{"key1": 1, "key2": 2}
//	object.Get(m, "key1")     // → 1
//	object.Get(m, "missing")  // → 0 (zero value, no error)
//	object.Has(m, "key1")     // → true
//	object.Set(m, "key3", 3)  // → m, now with key3
//
// A missing key is never an error: [Get] returns the zero value of V. Use
// [GetOr] to choose the fallback or [Lookup] to receive an [mo.Option].
//
// # Path access
//
// lodash also reads nested objects with a dotted path. The path helpers do
// the same over nested map[string]any values:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	object.GetPath(m, "user.address.city")          // → "London"
//	object.SetPath(m, "user.address.postcode", "EC1")
//	object.HasPath(m, "user.name")                  // → false
//	object.Unset(m, "user.address")
//
// Structs can join in after conversion with [FromStruct].
package object
