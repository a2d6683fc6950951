package fold

import (
	"context"

	"github.com/pkg/errors"

	"strider/sliceutil"
)

// pairScorer scores a target window joined to a fixed probe strand.
type pairScorer struct {
	probe  string
	scorer Scorer
}

func (p pairScorer) Name() string { return p.scorer.Name() }

func (p pairScorer) Score(ctx context.Context, window string) (Result, error) {
	return p.scorer.Score(ctx, p.probe+"&"+window)
}

// Hybridization scores motif against every len(motif) window of seq with a
// two-strand scorer such as CofoldCommand. When revcomp is set the motif is
// reverse complemented first. A sequence shorter than the motif is scored as
// a single window. The window always moves one base at a time, so only the
// Workers and Progress fields of opts are used.
func Hybridization(ctx context.Context, motif, seq string, scorer Scorer, revcomp bool, opts Options) ([]Row, error) {
	if motif == "" || seq == "" {
		return nil, errors.WithMessage(ErrInvalidArgument, "motif and sequence must not be empty")
	}
	probe := motif
	if revcomp {
		probe = ReverseComplement(motif)
	}
	opts.Window, opts.Step = len(motif), 1
	return Profile(ctx, seq, pairScorer{probe: probe, scorer: scorer}, opts)
}

// Site is a position along a hybridization scan and its energy.
type Site struct {
	Pos    int
	Energy float64
}

// LowEnergySites keeps the negative energies and returns those that are no
// higher than either neighbour among them. Positions refer to the input
// slice. Edges compare against themselves, so a lone negative value is a
// site.
func LowEnergySites(energies []float64) []Site {
	var neg []Site
	for i, e := range energies {
		if e < 0 {
			neg = append(neg, Site{Pos: i, Energy: e})
		}
	}

	if len(neg) == 0 {
		return nil
	}

	// pad with copies of the edges so every site has two neighbours
	padded := make([]Site, 0, len(neg)+2)
	padded = append(padded, neg[0])
	padded = append(padded, neg...)
	padded = append(padded, neg[len(neg)-1])
	triples, err := sliceutil.Windows(padded, 3, 1)
	if err != nil {
		return nil
	}

	var sites []Site
	for _, w := range triples {
		if w[1].Energy <= w[0].Energy && w[1].Energy <= w[2].Energy {
			sites = append(sites, w[1])
		}
	}
	return sites
}

// Energies extracts the Value column of rows.
func Energies(rows []Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Value
	}
	return out
}
