// Package fold scores sequence windows, either by running an RNA folding
// program such as RNAfold, by evaluating a tengo expression, or by plain
// composition, and builds rolling profiles and motif hybridization scans
// from those scores.
package fold

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnparsable      = errors.New("unparsable fold output")
)

// Result is what a Scorer reports for one window. Structure is the
// dot-bracket string for folding scorers and empty otherwise.
type Result struct {
	Structure string
	Value     float64
}

// Scorer computes a Result for a window. Implementations must be safe for
// concurrent use when handed to Profile with more than one worker.
type Scorer interface {
	Name() string
	Score(ctx context.Context, window string) (Result, error)
}

// GCScorer scores a window by its G+C fraction. S (strong, G or C) counts
// as one GC position. Case is ignored.
type GCScorer struct{}

func (GCScorer) Name() string { return "gc" }

func (GCScorer) Score(_ context.Context, window string) (Result, error) {
	if len(window) == 0 {
		return Result{}, nil
	}
	gc := 0
	for i := 0; i < len(window); i++ {
		switch window[i] {
		case 'G', 'g', 'C', 'c', 'S', 's':
			gc++
		}
	}
	return Result{Value: float64(gc) / float64(len(window))}, nil
}
