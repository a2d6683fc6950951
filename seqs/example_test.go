package seqs_test

import (
	"fmt"
	"slices"
	"strings"

	"strider/seqs"
)

func ExampleRollingWindow() {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	// Windows of size 3 moving 2 elements at a time
	windows, err := seqs.RollingWindow(input, 3, 2)
	if err != nil {
		panic(err)
	}

	for w := range windows {
		fmt.Println(w)
	}

	// Output:
	// [1 2 3]@[0,3)
	// [3 4 5]@[2,5)
	// [5]@[4,5)
}

func ExampleStringWindows() {
	windows, _ := seqs.StringWindows("abcde", 2)
	for s := range windows {
		fmt.Print(s, " ")
	}
	fmt.Println()

	// Output:
	// ab bc cd de
}

func ExampleCentered() {
	seq := []byte("GGCCAATT")
	windows, _ := seqs.RollingWindow(slices.Values(seq), 4, 2)

	gc := func(w seqs.Window[byte]) (int, error) {
		return strings.Count(string(w.Elements), "G") + strings.Count(string(w.Elements), "C"), nil
	}
	for s, err := range seqs.Centered(windows, gc) {
		if err != nil {
			panic(err)
		}
		fmt.Printf("%.1f %s %d\n", s.Center(), s.Window.Elements, s.Value)
	}

	// Output:
	// 1.5 GGCC 4
	// 3.5 CCAA 2
	// 5.5 AATT 0
	// 6.5 TT 0
}
