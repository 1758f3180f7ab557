package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/VantageDataChat/slidetree"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevel     string
	outputFormat string

	cfg *Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "slidetree",
	Short:   "Inspect and edit the shape trees of PowerPoint slide parts",
	Version: slidetree.Version,
	Long: `slidetree reads single slide, slide layout and slide master parts
(the XML files under ppt/slides, ppt/slideLayouts and ppt/slideMasters of an
unzipped .pptx) and resolves placeholder geometry and fills through the
slide -> layout -> master chain.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = logLevel
		}
		if cmd.Flags().Changed("format") {
			c.Output.Format = outputFormat
			if err := c.validate(); err != nil {
				return err
			}
		}
		cfg = c
		slog.SetDefault(SetupLogger(c, os.Stderr))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "yaml", "Report format: yaml or json")
}
