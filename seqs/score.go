package seqs

import "iter"

// Scored pairs a window with the value a scoring function computed for it.
type Scored[T, R any] struct {
	Window Window[T]
	Value  R
}

// Center is the center of the scored window, the key callers tabulate by.
func (s Scored[T, R]) Center() float64 {
	return s.Window.Center()
}

// Centered applies score to each window of windows in order.
//
// The resulting sequence yields pairs of (scored window, error).
// If score returns an error:
//   - The error is yielded unchanged along with the window that caused it.
//   - The iteration CONTINUES if the consumer returns true.
//   - The iteration STOPS if the consumer returns false.
func Centered[T, R any](windows iter.Seq[Window[T]], score func(Window[T]) (R, error)) iter.Seq2[Scored[T, R], error] {
	return func(yield func(Scored[T, R], error) bool) {
		for w := range windows {
			v, err := score(w)
			if !yield(Scored[T, R]{Window: w, Value: v}, err) {
				return
			}
		}
	}
}
