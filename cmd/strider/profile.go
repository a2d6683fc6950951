package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zoobzio/clockz"

	"strider/config"
	"strider/fasta"
	"strider/fold"
	"strider/logger"
	"strider/report"
	"strider/seqs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profile [fasta]",
		Short: "score a rolling window along every sequence",
		Long: `profile slides a window along each sequence of a FASTA file (stdin
when omitted) and scores every window, by default with the RNAfold minimum
free energy. Rows are keyed by the window center.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scorer, err := newScorer(cfg, false)
			if err != nil {
				return err
			}
			recs, err := fasta.ReadFile(inputPath(args))
			if err != nil {
				return err
			}

			clog := logger.Component(log, "profile")
			table := fold.NewTable()
			for _, rec := range recs {
				rlog := clog.WithField("id", rec.ID)
				total := seqs.WindowCount(len(rec.Seq), cfg.Window, cfg.Step)
				rlog.Infof("scoring %d windows with %s", total, scorer.Name())

				rows, err := fold.Profile(cmd.Context(), rec.Seq, scorer, fold.Options{
					Window:   cfg.Window,
					Step:     cfg.Step,
					Workers:  cfg.Workers,
					Progress: report.NewProgress(rlog, clockz.RealClock, total, cfg.ProgressInterval),
				})
				if err != nil {
					return errors.WithMessage(err, rec.ID)
				}
				fold.AppendRows(table, rec.ID, rows)
			}
			return table.Render(cmd.OutOrStdout(), cfg.Format)
		},
	}
	flags := cmd.Flags()
	flags.IntP(config.KeyWindow, "w", 80, "window size")
	flags.IntP(config.KeyStep, "s", 1, "window step")
	flags.String(config.KeyRNAfold, fold.DefaultFoldBinary, "RNAfold binary")
	addScorerFlags(flags)
	Command.AddCommand(cmd)
}
