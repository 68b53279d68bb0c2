// Statistics commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Sample statistics",
}

func init() {
	statsCmd.AddCommand(newStatsCmd("mean", "Mean", stats.Mean))
	statsCmd.AddCommand(newStatsCmd("median", "Median", stats.Median))
	statsCmd.AddCommand(newStatsCmd("variance", "Variance", stats.Variance))
	statsCmd.AddCommand(newStatsCmd("stdev", "Standard Deviation", stats.StdDev))
}

// newStatsCmd builds one statistics subcommand over a variadic sample.
func newStatsCmd(name, operation string, fn func([]float64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <number>...", name),
		Short: fmt.Sprintf("%s of a sample", operation),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := parseFloats(args)
			if err != nil {
				return err
			}
			result, err := fn(sample)
			if err != nil {
				return err
			}

			store := openStore()
			defer store.Close()
			record(store, operation, fmt.Sprintf("[%s]", strings.Join(args, " ")), result)
			return printResult(formatFloat(result), map[string]float64{"result": result})
		},
	}
}
