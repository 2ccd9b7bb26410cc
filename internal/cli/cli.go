package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/cp4-practice/internal/config"
	"github.com/pfrederiksen/cp4-practice/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool

	// cfg is the configuration loaded before any subcommand runs.
	cfg config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cp4-practice",
		Short: "Build a Competitive Programming 4 practice workspace",
		Long: `A CLI tool for building a Competitive Programming 4 practice workspace.
Scrapes the book's per-chapter problem listings from cpbook.net into a local
problem document, then scaffolds per-problem practice directories from it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return err
			}
			if flagDataDir != "" {
				cfg.DataDir = flagDataDir
			}

			level := logger.ParseLevel(cfg.LogLevel)
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))
			return nil
		},
	}

	// Define persistent flags
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml or ~/.cp4-practice/config.yaml)")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for the problem document (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newSetupCmd())
	cmd.AddCommand(newChaptersCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
