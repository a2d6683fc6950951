package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"strider/config"
)

func init() {
	Command.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Long:  `print every setting with its value after config file, env and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.Render(settings))
		},
	})
}
