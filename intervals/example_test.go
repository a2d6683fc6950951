package intervals_test

import (
	"fmt"

	"strider/intervals"
)

func ExampleGroupIndices() {
	ivs := []intervals.Interval[int]{
		intervals.New(1, 3), intervals.New(2, 4), intervals.New(4, 7),
		intervals.New(8, 10), intervals.New(8, 9), intervals.New(8, 12),
		intervals.New(8, 10), intervals.New(9, 10), intervals.New(13, 18),
	}
	groups, err := intervals.GroupIndices(ivs)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(groups)
	// Output: [[0 1 2] [3 4 5 6 7] [8]]
}

func ExampleMerge() {
	ivs := []intervals.Interval[int]{intervals.New(1, 3), intervals.New(2, 4), intervals.New(4, 7)}
	strict, _ := intervals.Merge(ivs, intervals.WithTouching(false))
	fmt.Println(strict)
	// Output: [[1, 4] [4, 7]]
}

func ExampleIdenticalRuns() {
	for _, r := range intervals.IdenticalRuns([]string{"a", "a", "b", "a"}) {
		fmt.Println(r.Value, r.Span.Start, r.Len())
	}
	// Output:
	// a 0 2
	// b 2 1
	// a 3 1
}
