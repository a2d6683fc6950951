package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zoobzio/clockz"

	"strider/config"
	"strider/fasta"
	"strider/fold"
	"strider/intervals"
	"strider/logger"
	"strider/report"
	"strider/seqs"
	"strider/sliceutil"
)

// energy classes by upper bound in kcal/mol
var (
	strengthBounds = []float64{-20, -10, -5, 0}
	strengthNames  = []string{"very strong", "strong", "moderate", "weak", "none"}
)

func init() {
	var (
		asGiven bool
		sites   bool
		regions bool
		classes bool
	)
	cmd := &cobra.Command{
		Use:   "motif MOTIF [fasta]",
		Short: "scan sequences for motif hybridization",
		Long: `motif pairs the reverse complement of MOTIF with every window of the
same length along each sequence and reports the two-strand folding energy,
by default from RNAcofold.

--sites keeps only the local energy minima among the negative energies.
--regions reports the stretches of consecutive windows with negative energy.
--classes reports the stretches of consecutive windows sharing a strength class.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			motif := args[0]
			scorer, err := newScorer(cfg, true)
			if err != nil {
				return err
			}
			recs, err := fasta.ReadFile(inputPath(args[1:]))
			if err != nil {
				return err
			}

			clog := logger.Component(log, "motif")
			var table *report.Table
			switch {
			case sites:
				table = report.NewTable("id", "pos", "window", "energy", "strength")
			case regions:
				table = report.NewTable("id", "start", "end", "windows", "min energy")
			case classes:
				table = report.NewTable("id", "start", "end", "windows", "strength")
			default:
				table = report.NewTable("id", "pos", "window", "structure", "energy", "strength")
			}

			for _, rec := range recs {
				rlog := clog.WithField("id", rec.ID)
				total := seqs.WindowCount(len(rec.Seq), len(motif), 1)
				rlog.Infof("scoring %d windows with %s", total, scorer.Name())

				rows, err := fold.Hybridization(cmd.Context(), motif, rec.Seq, scorer, !asGiven, fold.Options{
					Workers:  cfg.Workers,
					Progress: report.NewProgress(rlog, clockz.RealClock, total, cfg.ProgressInterval),
				})
				if err != nil {
					return errors.WithMessage(err, rec.ID)
				}

				energies := fold.Energies(rows)
				switch {
				case sites:
					for _, s := range fold.LowEnergySites(energies) {
						if err := appendStrength(table, s.Energy, rec.ID, s.Pos, rows[s.Pos].WindowSeq, s.Energy); err != nil {
							return err
						}
					}
				case regions:
					for _, run := range negativeRuns(energies) {
						low := energies[run.Start]
						for _, e := range energies[run.Start : run.End+1] {
							low = min(low, e)
						}
						if err := table.AppendValues(rec.ID, rows[run.Start].Left, rows[run.End].Right, run.End-run.Start+1, low); err != nil {
							return err
						}
					}
				case classes:
					runs, err := strengthRuns(energies)
					if err != nil {
						return err
					}
					for _, run := range runs {
						first, last := rows[run.Span.Start], rows[run.Span.End-1]
						if err := table.AppendValues(rec.ID, first.Left, last.Right, run.Len(), run.Value); err != nil {
							return err
						}
					}
				default:
					for i, r := range rows {
						if err := appendStrength(table, r.Value, rec.ID, i, r.WindowSeq, r.Structure, r.Value); err != nil {
							return err
						}
					}
				}
			}
			return table.Render(cmd.OutOrStdout(), cfg.Format)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&asGiven, "as-given", false, "pair the motif as given instead of its reverse complement")
	flags.BoolVar(&sites, "sites", false, "report only local energy minima")
	flags.BoolVar(&regions, "regions", false, "report runs of windows with negative energy")
	flags.BoolVar(&classes, "classes", false, "report runs of windows sharing a strength class")
	flags.String(config.KeyRNAcofold, fold.DefaultCofoldBinary, "RNAcofold binary")
	addScorerFlags(flags)
	Command.AddCommand(cmd)
}

// appendStrength appends values followed by the strength class of energy.
func appendStrength(t *report.Table, energy float64, values ...any) error {
	class, err := sliceutil.Piecewise(energy, strengthBounds, strengthNames)
	if err != nil {
		return err
	}
	return t.AppendValues(append(values, class)...)
}

// strengthRuns splits energies into runs of windows of equal strength class.
func strengthRuns(energies []float64) ([]intervals.Run[string], error) {
	names := make([]string, len(energies))
	for i, e := range energies {
		class, err := sliceutil.Piecewise(e, strengthBounds, strengthNames)
		if err != nil {
			return nil, err
		}
		names[i] = class
	}
	return intervals.IdenticalRuns(names), nil
}

// negativeRuns groups the positions of negative energies into closed runs of
// consecutive positions.
func negativeRuns(energies []float64) []intervals.Interval[int] {
	var pos []int
	for i, e := range energies {
		if e < 0 {
			pos = append(pos, i)
		}
	}
	return intervals.ConsecutiveRuns(pos)
}
