package main

import (
	"strings"

	"github.com/spf13/cobra"

	"strider/accession"
	"strider/clstr"
	"strider/report"
)

func init() {
	var (
		idKind  string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "clusters FILE.clstr",
		Short: "list the members of CD-HIT clusters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extract := func(s string) (string, bool) { return s, true }
			if idKind != "" {
				e, err := accession.Lookup(idKind)
				if err != nil {
					return err
				}
				extract = e
			}
			// ids the extractor does not match are kept whole
			reduce := func(s string) string {
				if id, ok := extract(s); ok {
					return id
				}
				return s
			}
			clusters, err := clstr.ParseFile(args[0])
			if err != nil {
				return err
			}
			log.WithField("component", "clusters").Infof("%d clusters in %s", len(clusters), args[0])

			if summary {
				table := report.NewTable("cluster", "members", "representative", "ids")
				for _, c := range clusters {
					rep := ""
					if m, ok := c.Representative(); ok {
						rep = reduce(m.ID)
					}
					if err := table.AppendValues(c.Name, len(c.Members), rep, strings.Join(c.IDs(extract), " ")); err != nil {
						return err
					}
				}
				return table.Render(cmd.OutOrStdout(), cfg.Format)
			}

			table := report.NewTable("cluster", "id", "length", "identity", "representative")
			for _, c := range clusters {
				rep := ""
				if m, ok := c.Representative(); ok {
					rep = reduce(m.ID)
				}
				for _, m := range c.Members {
					if err := table.AppendValues(c.Name, reduce(m.ID), m.Length, m.Identity, rep); err != nil {
						return err
					}
				}
			}
			return table.Render(cmd.OutOrStdout(), cfg.Format)
		},
	}
	cmd.Flags().StringVar(&idKind, "id-kind", "", "reduce member ids to one accession kind")
	cmd.Flags().BoolVar(&summary, "summary", false, "one row per cluster with the ids the accession kind matches")
	Command.AddCommand(cmd)
}
