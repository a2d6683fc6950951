package sliceutil_test

import (
	"errors"
	"reflect"
	"testing"

	"strider/sliceutil"
)

func TestWindows(t *testing.T) {
	input := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	t.Run("StepOne", func(t *testing.T) {
		got, err := sliceutil.Windows(input, 8, 1)
		if err != nil {
			t.Fatal(err)
		}
		want := [][]int{{0, 1, 2, 3, 4, 5, 6, 7}, {1, 2, 3, 4, 5, 6, 7, 8}, {2, 3, 4, 5, 6, 7, 8, 9}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Windows() = %v, want %v", got, want)
		}
	})

	t.Run("Stepped", func(t *testing.T) {
		got, err := sliceutil.Windows(input, 3, 4)
		if err != nil {
			t.Fatal(err)
		}
		want := [][]int{{0, 1, 2}, {4, 5, 6}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Windows() = %v, want %v", got, want)
		}
	})

	t.Run("SharesMemoryWithoutOverlapOnAppend", func(t *testing.T) {
		data := []int{1, 2, 3, 4}
		got, _ := sliceutil.Windows(data, 2, 2)
		got[0][0] = 100
		if data[0] != 100 {
			t.Error("window does not share memory with the input")
		}
		_ = append(got[0], 999)
		if data[2] != 3 {
			t.Error("append to a window overwrote the next window")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, tc := range []struct{ size, step int }{{0, 1}, {2, 0}, {11, 1}} {
			if _, err := sliceutil.Windows(input, tc.size, tc.step); !errors.Is(err, sliceutil.ErrInvalidArgument) {
				t.Errorf("Windows(%d, %d) error = %v", tc.size, tc.step, err)
			}
		}
	})
}

func TestPiecewise(t *testing.T) {
	bounds := []float64{0, 10, 20}

	t.Run("WithDefault", func(t *testing.T) {
		outputs := []string{"low", "mid", "high", "over"}
		cases := map[float64]string{-5: "low", 0: "low", 0.1: "mid", 10: "mid", 15: "high", 20: "high", 21: "over"}
		for x, want := range cases {
			got, err := sliceutil.Piecewise(x, bounds, outputs)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("Piecewise(%v) = %q, want %q", x, got, want)
			}
		}
	})

	t.Run("WithoutDefault", func(t *testing.T) {
		got, err := sliceutil.Piecewise(25.0, bounds, []int{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Errorf("Piecewise above last bound = %d, want 0", got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := sliceutil.Piecewise(1, []int{1}, []int{1}); !errors.Is(err, sliceutil.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for one bound, got %v", err)
		}
		if _, err := sliceutil.Piecewise(1, []int{1, 2}, []int{1}); !errors.Is(err, sliceutil.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for mismatched outputs, got %v", err)
		}
	})
}
