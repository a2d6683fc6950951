package main

import (
	"time"

	"github.com/spf13/pflag"

	"strider/config"
	"strider/fold"
)

// addScorerFlags registers the flags shared by the commands that score windows.
func addScorerFlags(flags *pflag.FlagSet) {
	flags.String(config.KeyScorer, config.ScorerFold, "window scorer: rnafold, gc or script")
	flags.String(config.KeyScript, "", "tengo expression over `window`, for --scorer script")
	flags.Float64P(config.KeyTemperature, "T", fold.DefaultTemperature, "folding temperature in Celsius")
	flags.Int(config.KeyWorkers, 1, "windows scored concurrently")
	flags.Duration(config.KeyProgressInterval, 5*time.Second, "progress log interval")
}

// newScorer builds the configured scorer. Two-strand scans use RNAcofold in
// place of RNAfold.
func newScorer(c config.Config, cofold bool) (fold.Scorer, error) {
	switch c.Scorer {
	case config.ScorerGC:
		return fold.GCScorer{}, nil
	case config.ScorerScript:
		return fold.NewScriptScorer(c.Script)
	}
	if cofold {
		return fold.CofoldCommand(c.RNAcofold, c.Temperature), nil
	}
	return fold.FoldCommand(c.RNAfold, c.Temperature), nil
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
