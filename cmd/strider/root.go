package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"strider/config"
	"strider/logger"
)

var (
	configPath string
	settings   *viper.Viper
	cfg        config.Config
	log        *logrus.Logger
)

var Command = &cobra.Command{
	Use:   "strider",
	Short: "sliding window scans over biological sequences",
	Long: `strider slides windows along sequences and scores them with RNAfold,
a tengo expression or GC content, scans motifs for hybridization sites, groups
overlapping intervals and extracts accession ids.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New(configPath)
		if err != nil {
			return err
		}
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
			return err
		}
		c, err := config.Load(v)
		if err != nil {
			return err
		}
		l, err := logger.New(c.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		settings, cfg, log = v, c, l
		return nil
	},
}

func init() {
	flags := Command.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (yaml, toml or json)")
	flags.String(config.KeyLogLevel, "info", "log level")
	flags.String(config.KeyFormat, "text", "output format, text or csv")
}
