// Reference data commands: configured market rates and mathematical
// constants.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/mathops"
	"github.com/dukaforge/fincalc/pkg/types"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the configured market rates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var b strings.Builder

		b.WriteString("Interest Rates\n")
		for _, name := range sortedRateNames(marketRates.Interest) {
			fmt.Fprintf(&b, "  %-16s %g%%\n", name, marketRates.Interest[name])
		}

		b.WriteString("\nGST Categories\n")
		for _, name := range sortedRateNames(marketRates.GST) {
			fmt.Fprintf(&b, "  %-16s %g%%\n", name, marketRates.GST[name])
		}

		b.WriteString("\nForex Pairs\n")
		for _, pair := range sortedPairs(marketRates.Forex) {
			fmt.Fprintf(&b, "  %s/%s  %s\n", pair.From, pair.To, formatFloat(marketRates.Forex[pair]))
		}

		b.WriteString("\nTax Regimes\n")
		regimes := make([]string, 0, len(marketRates.IncomeTax))
		for name := range marketRates.IncomeTax {
			regimes = append(regimes, name)
		}
		sort.Strings(regimes)
		fmt.Fprintf(&b, "  %s", strings.Join(regimes, ", "))

		return printResult(b.String(), marketRates)
	},
}

func sortedRateNames[M ~map[string]float64](m M) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedPairs(table types.ForexTable) []types.CurrencyPair {
	pairs := make([]types.CurrencyPair, 0, len(table))
	for pair := range table {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Show the built-in mathematical and physical constants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		consts := mathops.Constants()

		var b strings.Builder
		for _, name := range sortedRateNames(consts) {
			fmt.Fprintf(&b, "%-4s %s\n", name, formatFloat(consts[name]))
		}
		return printResult(strings.TrimRight(b.String(), "\n"), consts)
	},
}
