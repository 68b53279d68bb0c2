// Package main provides the fincalc CLI: a calculator for arithmetic,
// statistics, taxes, loans, investment projections, and unit conversion,
// with a persisted calculation history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/fincalc"
	"github.com/dukaforge/fincalc/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// marketRates holds the rate tables loaded from config.yaml. Read-only
// after PersistentPreRunE; engine calls receive the tables explicitly.
var marketRates types.Rates

var rootCmd = &cobra.Command{
	Use:     "fincalc",
	Short:   "Fincalc is a financial and scientific calculator with a persisted history",
	Version: fincalc.Version,
	// Domain errors are returned to Execute and printed once in main.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)

		rates, err := buildRates(cfg)
		if err != nil {
			return fmt.Errorf("invalid rate tables in %s: %w", configDir, err)
		}
		marketRates = rates
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.fincalc-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(mathCmd)
	rootCmd.AddCommand(trigCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(loanCmd)
	rootCmd.AddCommand(investCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(memCmd)
	rootCmd.AddCommand(varCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
