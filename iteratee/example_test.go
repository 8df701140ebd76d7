package iteratee_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash/iteratee"
)

func ExampleMatchesProperty() {
	obj := map[string]int{"a": 1, "b": 2, "c": 3}
	fmt.Println(iteratee.MatchesProperty("b", 2)(obj))
	// Output: true
}

func ExampleResolve() {
	users := []map[string]any{
		{"user": "barney", "active": true},
		{"user": "fred", "active": false},
	}
	it, err := iteratee.Resolve[string, any](iteratee.NewPair[string, any]("active", false))
	if err != nil {
		panic(err)
	}
	for _, u := range users {
		if it.Test(u) {
			fmt.Println(u["user"])
		}
	}
	// Output: fred
}
