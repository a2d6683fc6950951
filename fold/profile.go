package fold

import (
	"context"
	"iter"
	"slices"

	"github.com/pkg/errors"

	"strider/report"
	"strider/seqs"
)

// Options controls a rolling profile.
type Options struct {
	Window  int
	Step    int
	Workers int
	// Progress, if set, is ticked once per scored window.
	Progress *report.Progress
}

// Row is one scored window of a profile. Left and Right are the half-open
// bounds of the window in the sequence; Center is (Left+Right-1)/2.
type Row struct {
	WindowSeq string
	Left      int
	Right     int
	Center    float64
	Structure string
	Value     float64
}

// Profile slides a window along seq and scores every window with scorer.
// Rows come back in window order. The first scorer error stops the scan and
// is returned annotated with the window bounds.
func Profile(ctx context.Context, seq string, scorer Scorer, opts Options) ([]Row, error) {
	if scorer == nil {
		panic("strider.Profile: scorer cannot be nil")
	}
	windows, err := seqs.RollingWindow(slices.Values([]byte(seq)), opts.Window, opts.Step)
	if err != nil {
		return nil, errors.WithMessage(err, "profile windows")
	}

	score := func(w seqs.Window[byte]) (Result, error) {
		return scorer.Score(ctx, string(w.Elements))
	}
	var scored iter.Seq2[seqs.Scored[byte, Result], error]
	if opts.Workers > 1 {
		scored = seqs.ParallelScore(windows, score, seqs.WithWorkers(opts.Workers), seqs.WithContext(ctx))
	} else {
		scored = seqs.Centered(windows, score)
	}

	var rows []Row
	for s, err := range scored {
		if err == nil {
			err = ctx.Err()
		}
		if err != nil && s.Window.Len() == 0 {
			// cancellation reported outside any window
			return nil, errors.WithMessage(err, scorer.Name())
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "%s on window [%d,%d)", scorer.Name(), s.Window.Left, s.Window.Right)
		}
		rows = append(rows, Row{
			WindowSeq: string(s.Window.Elements),
			Left:      s.Window.Left,
			Right:     s.Window.Right,
			Center:    s.Center(),
			Structure: s.Value.Structure,
			Value:     s.Value.Value,
		})
		opts.Progress.Tick(1)
	}
	opts.Progress.Done()
	return rows, nil
}

// NewTable returns an empty profile table; fill it with AppendRows.
func NewTable() *report.Table {
	return report.NewTable("id", "center", "left", "right", "window", "structure", "value")
}

// AppendRows adds the rows of one sequence's profile to t.
func AppendRows(t *report.Table, id string, rows []Row) {
	for _, r := range rows {
		// every value here is castable and the width matches NewTable
		_ = t.AppendValues(id, r.Center, r.Left, r.Right, r.WindowSeq, r.Structure, r.Value)
	}
}
