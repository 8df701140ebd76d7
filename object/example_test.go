package object_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash/object"
)

func ExampleGet() {
	m := map[string]int{"key1": 1, "key2": 2}
	fmt.Println(object.Get(m, "key1"))
	fmt.Println(object.Get(m, "nope"))
	// Output:
	// 1
	// 0
}

func ExampleSet() {
	m := map[string]int{"key1": 1}
	object.Set(m, "key3", 3)
	fmt.Println(m)
	// Output: map[key1:1 key3:3]
}

func ExampleGetPath() {
	m := map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	}
	fmt.Println(object.GetPath(m, "user.address.city"))
	// Output: London
}

func ExampleSetPath() {
	m := map[string]any{}
	object.SetPath(m, "config.debug", true)
	fmt.Println(object.GetPath(m, "config.debug"))
	// Output: true
}
