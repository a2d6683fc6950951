package main

import (
	"strings"

	"github.com/spf13/cobra"

	"strider/accession"
	"strider/fasta"
	"strider/report"
)

func init() {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "ids [fasta]",
		Short: "extract accession ids from FASTA headers",
		Long: `ids prints, for every record of a FASTA file, the ids found in its
header line. Kinds: ` + strings.Join(accession.Kinds(), ", ") + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extractors := make([]accession.Extractor, len(kinds))
			for i, k := range kinds {
				e, err := accession.Lookup(k)
				if err != nil {
					return err
				}
				extractors[i] = e
			}
			recs, err := fasta.ReadFile(inputPath(args))
			if err != nil {
				return err
			}

			table := report.NewTable(append([]string{"header"}, kinds...)...)
			for _, rec := range recs {
				row := []string{rec.Header()}
				for _, extract := range extractors {
					id, _ := extract(rec.Header())
					row = append(row, id)
				}
				if err := table.Append(row...); err != nil {
					return err
				}
			}
			return table.Render(cmd.OutOrStdout(), cfg.Format)
		},
	}
	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", accession.Kinds(), "id kinds to extract")
	Command.AddCommand(cmd)
}
