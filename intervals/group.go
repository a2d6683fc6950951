package intervals

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

type groupConfig struct {
	touching bool
}

type Option func(*groupConfig)

// WithTouching selects whether intervals sharing only an endpoint belong to
// the same group. It defaults to true.
func WithTouching(touching bool) Option {
	return func(c *groupConfig) {
		c.touching = touching
	}
}

// Group is a set of intervals connected through pairwise overlaps.
// Members and Indices are parallel: Indices[k] is the position of Members[k]
// in the input. Both are ordered by start, ties by input position.
type Group[T cmp.Ordered] struct {
	Members []Interval[T]
	Indices []int
	Span    Interval[T]
}

func (g Group[T]) Len() int {
	return len(g.Members)
}

type indexed[T cmp.Ordered] struct {
	iv  Interval[T]
	idx int
}

// sweep is the running state of the grouping pass. Each step returns a new
// value instead of mutating the previous one.
type sweep[T cmp.Ordered] struct {
	closed  []Group[T]
	current Group[T]
}

func (s sweep[T]) extend(in indexed[T]) sweep[T] {
	cur := s.current
	cur.Members = append(cur.Members, in.iv)
	cur.Indices = append(cur.Indices, in.idx)
	cur.Span.End = max(cur.Span.End, in.iv.End)
	return sweep[T]{closed: s.closed, current: cur}
}

func (s sweep[T]) restart(in indexed[T]) sweep[T] {
	return sweep[T]{
		closed: append(s.closed, s.current),
		current: Group[T]{
			Members: []Interval[T]{in.iv},
			Indices: []int{in.idx},
			Span:    in.iv,
		},
	}
}

// GroupOverlapping partitions ivs into the fewest groups such that two
// intervals share a group exactly when a chain of overlapping intervals links
// them. Groups come back in ascending span order.
//
// Intervals are sorted by start, then end, and swept once while tracking the
// running end of the current group's span, so the cost is O(n log n). Sorting
// equal starts by end keeps the grouping independent of input order; members
// are then reported by start, ties by input position.
//
// A zero-length interval follows the same rule as any other: it connects to
// an interval it lies strictly inside, but with touching disabled a shared
// endpoint does not connect it.
//
// An empty input or an interval with Start > End yields ErrInvalidArgument.
func GroupOverlapping[T cmp.Ordered](ivs []Interval[T], opts ...Option) ([]Group[T], error) {
	cfg := groupConfig{touching: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(ivs) == 0 {
		return nil, errors.WithMessage(ErrInvalidArgument, "no intervals to group")
	}
	sorted := make([]indexed[T], len(ivs))
	for i, iv := range ivs {
		if err := iv.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "interval %d", i)
		}
		sorted[i] = indexed[T]{iv: iv, idx: i}
	}
	slices.SortFunc(sorted, func(a, b indexed[T]) int {
		if c := cmp.Compare(a.iv.Start, b.iv.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.iv.End, b.iv.End); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})

	state := sweep[T]{current: Group[T]{
		Members: []Interval[T]{sorted[0].iv},
		Indices: []int{sorted[0].idx},
		Span:    sorted[0].iv,
	}}
	for _, in := range sorted[1:] {
		if connects(in.iv.Start, state.current.Span.End, cfg.touching) {
			state = state.extend(in)
		} else {
			state = state.restart(in)
		}
	}
	groups := append(state.closed, state.current)
	for i := range groups {
		groups[i] = byStartThenIndex(groups[i], ivs)
	}
	return groups, nil
}

// byStartThenIndex reorders the members of g by start, ties by input position.
func byStartThenIndex[T cmp.Ordered](g Group[T], ivs []Interval[T]) Group[T] {
	slices.SortFunc(g.Indices, func(a, b int) int {
		if c := cmp.Compare(ivs[a].Start, ivs[b].Start); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for k, idx := range g.Indices {
		g.Members[k] = ivs[idx]
	}
	return g
}

// GroupIndices is GroupOverlapping reporting each group as the input
// positions of its members.
func GroupIndices[T cmp.Ordered](ivs []Interval[T], opts ...Option) ([][]int, error) {
	groups, err := GroupOverlapping(ivs, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = g.Indices
	}
	return out, nil
}

// Merge returns the span of every overlap group of ivs.
func Merge[T cmp.Ordered](ivs []Interval[T], opts ...Option) ([]Interval[T], error) {
	groups, err := GroupOverlapping(ivs, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Interval[T], len(groups))
	for i, g := range groups {
		out[i] = g.Span
	}
	return out, nil
}
