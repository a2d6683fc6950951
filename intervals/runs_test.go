package intervals_test

import (
	"reflect"
	"testing"

	"strider/intervals"
)

func TestConsecutiveRuns(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []intervals.Interval[int]
	}{
		{"Empty", nil, nil},
		{"Single", []int{4}, []intervals.Interval[int]{iv(4, 4)}},
		{"Mixed", []int{1, 2, 3, 7, 8, 10}, []intervals.Interval[int]{iv(1, 3), iv(7, 8), iv(10, 10)}},
		{"Descending", []int{3, 2}, []intervals.Interval[int]{iv(3, 3), iv(2, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intervals.ConsecutiveRuns(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConsecutiveRuns(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdenticalRuns(t *testing.T) {
	runs := intervals.IdenticalRuns([]string{"a", "a", "b", "a", "a", "a"})
	want := []intervals.Run[string]{
		{Value: "a", Span: iv(0, 2)},
		{Value: "b", Span: iv(2, 3)},
		{Value: "a", Span: iv(3, 6)},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("IdenticalRuns = %v, want %v", runs, want)
	}
	lengths := []int{runs[0].Len(), runs[1].Len(), runs[2].Len()}
	if !reflect.DeepEqual(lengths, []int{2, 1, 3}) {
		t.Errorf("lengths = %v", lengths)
	}

	if got := intervals.IdenticalRuns[int](nil); got != nil {
		t.Errorf("IdenticalRuns(nil) = %v", got)
	}
}
