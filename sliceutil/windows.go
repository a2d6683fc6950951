// Package sliceutil provides random-access helpers over in-memory slices.
package sliceutil

import (
	"cmp"

	"github.com/pkg/errors"
)

// ErrInvalidArgument reports sizes or bounds the helpers cannot work with.
var ErrInvalidArgument = errors.New("invalid argument")

// Windows returns every full window of size elements of collection, starting
// at 0, step, 2*step, ... Each window is a sub-slice sharing memory with
// collection; its capacity is capped at size so appending to a window never
// writes into its neighbour.
//
// A size larger than the collection is an error, as is size < 1 or step < 1.
func Windows[T any](collection []T, size, step int) ([][]T, error) {
	if size < 1 || step < 1 {
		return nil, errors.WithMessagef(ErrInvalidArgument, "size %d, step %d", size, step)
	}
	if size > len(collection) {
		return nil, errors.WithMessagef(ErrInvalidArgument, "window size %d exceeds length %d", size, len(collection))
	}

	res := make([][]T, 0, (len(collection)-size)/step+1)
	for i := 0; i+size <= len(collection); i += step {
		res = append(res, collection[i:i+size:i+size])
	}
	return res, nil
}

// Piecewise looks x up in a step function described by ascending bounds:
//
//	outputs[0]   for x <= bounds[0]
//	outputs[i]   for bounds[i-1] < x <= bounds[i]
//	outputs[n]   for x > bounds[n-1], if outputs has n+1 entries
//
// With exactly n outputs a value above the last bound maps to the zero Y.
func Piecewise[X cmp.Ordered, Y any](x X, bounds []X, outputs []Y) (Y, error) {
	var zero Y
	if len(bounds) < 2 {
		return zero, errors.WithMessage(ErrInvalidArgument, "piecewise needs at least two bounds")
	}
	if len(outputs) != len(bounds) && len(outputs) != len(bounds)+1 {
		return zero, errors.WithMessagef(ErrInvalidArgument, "%d outputs for %d bounds", len(outputs), len(bounds))
	}
	for i, b := range bounds {
		if x <= b {
			return outputs[i], nil
		}
	}
	if len(outputs) > len(bounds) {
		return outputs[len(bounds)], nil
	}
	return zero, nil
}
