package seqs

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"strider/queues"
)

// ErrInvalidArgument reports a window configuration that cannot be iterated.
var ErrInvalidArgument = errors.New("invalid argument")

// Window is a snapshot of consecutive source elements.
// Left is the inclusive index of the first element in the source, Right the
// exclusive index after the last one, so Right-Left == len(Elements).
type Window[T any] struct {
	Elements []T
	Left     int
	Right    int
}

func (w Window[T]) Len() int {
	return len(w.Elements)
}

// Center is the midpoint of the window in source coordinates,
// (Left + Right - 1) / 2.
func (w Window[T]) Center() float64 {
	return float64(w.Left+w.Right-1) / 2
}

func (w Window[T]) String() string {
	return fmt.Sprintf("%v@[%d,%d)", w.Elements, w.Left, w.Right)
}

// initialRing caps the buffer allocated before any element is pulled; the
// ring grows on demand past it.
const initialRing = 64

type windowState uint8

const (
	stateFilling windowState = iota
	stateSteady
	stateDraining
	stateDone
)

// windowMachine holds the iteration state of one pass of RollingWindow.
type windowMachine[T any] struct {
	next  func() (T, bool)
	size  int
	step  int
	buf   *queues.Ring[T]
	left  int
	right int
	state windowState
}

// advance runs the machine until it has a window to emit or is done.
// It reports whether the buffer currently holds a window to yield.
func (m *windowMachine[T]) advance() bool {
	switch m.state {
	case stateFilling:
		for m.buf.Len() < m.size {
			v, ok := m.next()
			if !ok {
				// a short source is a single short window
				m.state = stateDone
				return m.buf.Len() > 0
			}
			m.buf.PushBack(v)
			m.right++
		}
		m.state = stateSteady
		return true

	case stateSteady:
		target := m.left + m.step
		pulled := 0
		for ; pulled < m.step; pulled++ {
			v, ok := m.next()
			if !ok {
				break
			}
			m.buf.PushBack(v)
			m.right++
			if m.buf.Len() > m.size {
				m.buf.PopFront()
				m.left++
			}
		}
		if pulled == m.step {
			return true
		}
		// Source ran out mid-step. A unit step has nothing left to shrink
		// into that the last window did not already hold.
		if m.step == 1 {
			m.state = stateDone
			return false
		}
		m.left += m.buf.DropFront(target - m.left)
		m.state = stateDraining
		if m.buf.IsEmpty() {
			// step > size and the advance swallowed the remainder
			m.state = stateDone
			return false
		}
		return true

	case stateDraining:
		m.left += m.buf.DropFront(m.step)
		if m.buf.IsEmpty() {
			m.state = stateDone
			return false
		}
		return true
	}
	return false
}

func (m *windowMachine[T]) window() Window[T] {
	return Window[T]{
		Elements: m.buf.Snapshot(),
		Left:     m.left,
		Right:    m.right,
	}
}

func validateWindow(size, step int) error {
	if size < 1 {
		return errors.WithMessagef(ErrInvalidArgument, "window size must be >= 1, got %d", size)
	}
	if step < 1 {
		return errors.WithMessagef(ErrInvalidArgument, "window step must be >= 1, got %d", step)
	}
	return nil
}

// RollingWindow slides a window of size elements over src, moving it step
// elements at a time, and yields each window with its source bounds.
//
// The first window holds the first size elements (or the whole source when it
// is shorter). When the source runs out part way through an advance the window
// keeps moving its left edge by step and yields the shrinking tail until it is
// empty, so the trailing elements are never dropped. With step == 1 the tail
// is not emitted since the last full window already ends at the source end.
// When step > size and nothing is left once the advance consumed the source,
// iteration stops without a partial window.
//
// Invalid size or step values are reported before src is touched.
// The returned sequence pulls from src lazily and stops pulling as soon as the
// consumer breaks; ranging over it again ranges over src again.
func RollingWindow[T any](src iter.Seq[T], size, step int) (iter.Seq[Window[T]], error) {
	if err := validateWindow(size, step); err != nil {
		return nil, err
	}
	return func(yield func(Window[T]) bool) {
		next, stop := iter.Pull(src)
		defer stop()

		m := &windowMachine[T]{
			next: next,
			size: size,
			step: step,
			buf:  queues.NewRing[T](min(size+1, initialRing)),
		}
		for m.state != stateDone {
			if !m.advance() {
				continue
			}
			if !yield(m.window()) {
				return
			}
		}
	}, nil
}

// WindowCount is the number of windows RollingWindow yields for a source of
// n elements, or 0 for invalid arguments.
func WindowCount(n, size, step int) int {
	switch {
	case validateWindow(size, step) != nil, n <= 0:
		return 0
	case n < size:
		return 1
	case step == 1:
		return n - size + 1
	default:
		return (n + step - 1) / step
	}
}

// RollingValues is RollingWindow without positions: it yields only the
// window elements.
func RollingValues[T any](src iter.Seq[T], size, step int) (iter.Seq[[]T], error) {
	windows, err := RollingWindow(src, size, step)
	if err != nil {
		return nil, err
	}
	return func(yield func([]T) bool) {
		for w := range windows {
			if !yield(w.Elements) {
				return
			}
		}
	}, nil
}

// StringWindows yields every run of n consecutive runes of s, moving one rune
// at a time. A string shorter than n, the empty string included, yields
// itself once.
func StringWindows(s string, n int) (iter.Seq[string], error) {
	runes := func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
	windows, err := RollingWindow(runes, n, 1)
	if err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		if s == "" {
			yield("")
			return
		}
		for w := range windows {
			if !yield(string(w.Elements)) {
				return
			}
		}
	}, nil
}
