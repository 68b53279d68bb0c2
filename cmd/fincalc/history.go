// History ledger commands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit int
	flagExportFormat string
	flagExportOut    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the calculation ledger",
}

func init() {
	historyListCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 0, "show at most N entries (0 = all)")
	historyExportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "export format: csv or json")
	historyExportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "write to a file instead of stdout")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded calculations, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		entries, err := store.List(flagHistoryLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return printResult("history is empty", entries)
		}

		var b strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&b, "%s  %-22s %-28s = %s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Operation, e.Inputs, formatFloat(e.Result))
		}
		return printResult(strings.TrimRight(b.String(), "\n"), entries)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded calculations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		if err := store.ClearHistory(); err != nil {
			return err
		}
		return printResult("history cleared", map[string]string{"status": "cleared"})
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		out := cmd.OutOrStdout()
		if flagExportOut != "" {
			f, err := os.Create(flagExportOut)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch strings.ToLower(flagExportFormat) {
		case "csv":
			return store.ExportCSV(out)
		case "json":
			return store.ExportJSON(out)
		default:
			return fmt.Errorf("unknown export format %q (expected csv or json)", flagExportFormat)
		}
	},
}
