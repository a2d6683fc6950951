package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"strider/bed"
	"strider/config"
	"strider/fasta"
	"strider/intervals"
	"strider/report"
)

func init() {
	var merge bool
	cmd := &cobra.Command{
		Use:   "group [bed...]",
		Short: "group overlapping intervals per chromosome",
		Long: `group reads BED files (stdin when none are given) and gathers the
intervals of each chromosome into groups connected by overlap. With
--touching (the default) intervals that only share an endpoint are connected.
--merge prints one merged span per group instead of the members.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			var lists [][]bed.Feature
			for _, path := range args {
				features, err := readBED(path)
				if err != nil {
					return err
				}
				lists = append(lists, features)
			}
			features := bed.Concat(false, lists...)
			log.WithField("component", "group").Debugf("%d intervals from %d files", len(features), len(args))

			var table *report.Table
			if merge {
				table = report.NewTable("chrom", "start", "end", "members")
			} else {
				table = report.NewTable("chrom", "group", "start", "end", "name", "index")
			}
			chroms, spans := bed.ByChrom(features)
			names := featureNames(features)
			for _, chrom := range chroms {
				groups, err := intervals.GroupOverlapping(spans[chrom], intervals.WithTouching(cfg.Touching))
				if err != nil {
					return errors.WithMessage(err, chrom)
				}
				for gi, g := range groups {
					if merge {
						if err := table.AppendValues(chrom, g.Span.Start, g.Span.End, g.Len()); err != nil {
							return err
						}
						continue
					}
					for k, m := range g.Members {
						idx := g.Indices[k]
						if err := table.AppendValues(chrom, gi, m.Start, m.End, names[chrom][idx], idx); err != nil {
							return err
						}
					}
				}
			}
			return table.Render(cmd.OutOrStdout(), cfg.Format)
		},
	}
	flags := cmd.Flags()
	flags.Bool(config.KeyTouching, true, "intervals sharing only an endpoint overlap")
	flags.BoolVar(&merge, "merge", false, "print merged spans")
	Command.AddCommand(cmd)
}

func readBED(path string) ([]bed.Feature, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	features, err := bed.Read(rc)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return features, nil
}

// featureNames lists names per chromosome in the order ByChrom keeps spans.
func featureNames(features []bed.Feature) map[string][]string {
	names := make(map[string][]string)
	for _, f := range features {
		names[f.Chrom] = append(names[f.Chrom], strings.TrimSpace(f.Name))
	}
	return names
}
