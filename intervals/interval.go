// Package intervals groups and summarises spans on a one-dimensional ordered
// axis: overlapping interval groups, merged spans, and runs of consecutive or
// identical values.
package intervals

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument reports input the grouping algorithms cannot work on.
var ErrInvalidArgument = errors.New("invalid argument")

// Interval is a span [Start, End] on an ordered axis, Start <= End.
type Interval[T cmp.Ordered] struct {
	Start T
	End   T
}

// New returns the interval [start, end].
func New[T cmp.Ordered](start, end T) Interval[T] {
	return Interval[T]{Start: start, End: end}
}

// Validate fails when Start > End or either bound is NaN.
func (i Interval[T]) Validate() error {
	if i.Start != i.Start || i.End != i.End {
		return errors.WithMessagef(ErrInvalidArgument, "interval %v has an unordered bound", i)
	}
	if i.Start > i.End {
		return errors.WithMessagef(ErrInvalidArgument, "interval %v starts after it ends", i)
	}
	return nil
}

// Overlaps reports whether i and o are connected. With touching set a shared
// endpoint connects them; otherwise they must share more than an endpoint.
// The result does not depend on which of the two is the receiver.
func (i Interval[T]) Overlaps(o Interval[T], touching bool) bool {
	a, b := i, o
	if b.Start < a.Start || (b.Start == a.Start && b.End < a.End) {
		a, b = b, a
	}
	return connects(b.Start, a.End, touching)
}

func connects[T cmp.Ordered](start, runningEnd T, touching bool) bool {
	if touching {
		return start <= runningEnd
	}
	return start < runningEnd
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.Start, i.End)
}
