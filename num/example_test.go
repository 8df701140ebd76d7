package num_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash/num"
)

func ExampleDivide() {
	fmt.Println(num.Divide(5, 2))
	// Output: 2.5
}

func ExampleMeanBy() {
	objs := []map[string]int{{"n": 4}, {"n": 2}, {"n": 8}, {"n": 6}}
	fmt.Println(num.MeanBy(objs, func(o map[string]int) int { return o["n"] }))
	// Output: 5
}
