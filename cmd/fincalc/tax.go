// Tax commands: progressive income tax and GST.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/tax"
)

var flagTaxRegime string

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Income tax and GST calculations",
}

func init() {
	incomeTaxCmd.Flags().StringVar(&flagTaxRegime, "regime", "new", "tax regime (old or new)")
	taxCmd.AddCommand(incomeTaxCmd)
	taxCmd.AddCommand(gstCmd)
}

var incomeTaxCmd = &cobra.Command{
	Use:   "income <annual-income>",
	Short: "Compute progressive income tax with slab breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		income, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		slabs, ok := marketRates.IncomeTax[flagTaxRegime]
		if !ok {
			regimes := make([]string, 0, len(marketRates.IncomeTax))
			for name := range marketRates.IncomeTax {
				regimes = append(regimes, name)
			}
			sort.Strings(regimes)
			return fmt.Errorf("unknown regime %q (valid: %s)", flagTaxRegime, strings.Join(regimes, ", "))
		}

		result, err := tax.ComputeIncomeTax(income, slabs)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Income Tax", fmt.Sprintf("income=%s, regime=%s", args[0], flagTaxRegime), result.FinalTax)

		var b strings.Builder
		fmt.Fprintf(&b, "Total Income: %s\n", formatMoney(result.Income))
		fmt.Fprintf(&b, "Regime: %s\n", flagTaxRegime)
		for _, slab := range result.Breakdown {
			fmt.Fprintf(&b, "  %s @ %g%% = %s\n", slab.Range, slab.RatePercent, formatMoney(slab.Tax))
		}
		fmt.Fprintf(&b, "Total Tax: %s\n", formatMoney(result.TotalTax))
		fmt.Fprintf(&b, "Cess (%g%%): %s\n", tax.CessRatePercent, formatMoney(result.Cess))
		fmt.Fprintf(&b, "Final Tax: %s", formatMoney(result.FinalTax))
		return printResult(b.String(), result)
	},
}

var gstCmd = &cobra.Command{
	Use:   "gst <amount> <category>",
	Short: "Compute GST with the CGST/SGST split",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		result, err := tax.ComputeGST(amount, args[1], marketRates.GST)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "GST", fmt.Sprintf("%s @ %s", args[0], args[1]), result.FinalAmount)

		plain := fmt.Sprintf(
			"Amount: %s\nRate: %g%%\nCGST: %s\nSGST: %s\nTotal GST: %s\nFinal Amount: %s",
			formatMoney(result.Amount), result.RatePercent,
			formatMoney(result.CGST), formatMoney(result.SGST),
			formatMoney(result.TotalGST), formatMoney(result.FinalAmount),
		)
		return printResult(plain, result)
	},
}
