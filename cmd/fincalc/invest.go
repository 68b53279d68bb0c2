// Investment projection commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/invest"
)

var flagCompounds int

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Investment growth projections",
}

func init() {
	compoundCmd.Flags().IntVarP(&flagCompounds, "compounds", "n", 1, "compounding periods per year")

	investCmd.AddCommand(compoundCmd)
	investCmd.AddCommand(fdCmd)
	investCmd.AddCommand(ppfCmd)
	investCmd.AddCommand(sipCmd)
	investCmd.AddCommand(npsCmd)
}

var compoundCmd = &cobra.Command{
	Use:   "compound <principal> <annual-rate-%> <years>",
	Short: "Compound interest on a lump sum",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		result, err := invest.CompoundInterest(nums[0], nums[1], nums[2], flagCompounds)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Compound Interest",
			fmt.Sprintf("P=%s, r=%s%%, t=%sy, n=%d", args[0], args[1], args[2], flagCompounds),
			result.Amount)

		plain := fmt.Sprintf(
			"Principal: %s\nRate: %g%%\nYears: %g\nMaturity Amount: %s\nInterest Earned: %s",
			formatMoney(result.Principal), result.RatePercent, result.Years,
			formatMoney(result.Amount), formatMoney(result.InterestEarned),
		)
		return printResult(plain, result)
	},
}

var fdCmd = &cobra.Command{
	Use:   "fd <principal> <annual-rate-%> <years>",
	Short: "Fixed deposit maturity (annual compounding)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		result, err := invest.FixedDeposit(nums[0], nums[1], nums[2])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Fixed Deposit",
			fmt.Sprintf("P=%s, r=%s%%, t=%sy", args[0], args[1], args[2]),
			result.Amount)

		plain := fmt.Sprintf(
			"Deposit: %s\nRate: %g%%\nYears: %g\nMaturity Amount: %s\nInterest Earned: %s",
			formatMoney(result.Principal), result.RatePercent, result.Years,
			formatMoney(result.Amount), formatMoney(result.InterestEarned),
		)
		return printResult(plain, result)
	},
}

var flagPPFRate float64

var ppfCmd = &cobra.Command{
	Use:   "ppf <yearly-amount> <years>",
	Short: "Provident fund projection with a year-by-year breakdown",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		yearly, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		years, err := parseInt(args[1])
		if err != nil {
			return err
		}

		rate := flagPPFRate
		if !cmd.Flags().Changed("rate") {
			if configured, ok := marketRates.Interest["ppf_rate"]; ok {
				rate = configured
			}
		}

		result, err := invest.AnnualContributionProjection(yearly, rate, years)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "PPF Projection",
			fmt.Sprintf("A=%s/y, r=%g%%, t=%dy", args[0], rate, years),
			result.FinalBalance)

		var b strings.Builder
		fmt.Fprintf(&b, "Yearly Investment: %s\nRate: %g%%\nYears: %d\n\n", formatMoney(yearly), rate, years)
		fmt.Fprintf(&b, "%-6s %-14s %-14s %-14s\n", "Year", "Investment", "Interest", "Balance")
		for _, row := range result.Breakdown {
			fmt.Fprintf(&b, "%-6d %-14s %-14s %-14s\n",
				row.Year, formatMoney(row.Investment), formatMoney(row.Interest), formatMoney(row.Balance))
		}
		fmt.Fprintf(&b, "\nTotal Investment: %s\nTotal Interest: %s\nFinal Balance: %s",
			formatMoney(result.TotalInvestment), formatMoney(result.TotalInterest), formatMoney(result.FinalBalance))
		return printResult(b.String(), result)
	},
}

func init() {
	ppfCmd.Flags().Float64Var(&flagPPFRate, "rate", 7.1, "annual interest rate in percent")
}

var sipCmd = &cobra.Command{
	Use:   "sip <monthly-amount> <annual-rate-%> <years>",
	Short: "Future value of a monthly systematic investment",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		result, err := invest.MonthlyContributionFutureValue(nums[0], nums[1], nums[2])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "SIP Projection",
			fmt.Sprintf("A=%s/m, r=%s%%, t=%sy", args[0], args[1], args[2]),
			result.FinalAmount)

		plain := fmt.Sprintf(
			"Monthly Investment: %s\nExpected Return: %g%%\nYears: %g\nTotal Investment: %s\nFinal Amount: %s\nWealth Gained: %s",
			formatMoney(result.MonthlyAmount), result.RatePercent, result.Years,
			formatMoney(result.TotalInvestment), formatMoney(result.FinalAmount), formatMoney(result.WealthGained),
		)
		return printResult(plain, result)
	},
}

var (
	flagEquityReturn float64
	flagDebtReturn   float64
)

var npsCmd = &cobra.Command{
	Use:   "nps <monthly-amount> <equity-ratio-%> <years>",
	Short: "Blended equity/debt pension projection",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		result, err := invest.BlendedPensionProjection(nums[0], nums[1], flagEquityReturn, flagDebtReturn, nums[2])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "NPS Projection",
			fmt.Sprintf("A=%s/m, equity=%s%%, t=%sy", args[0], args[1], args[2]),
			result.FinalAmount)

		plain := fmt.Sprintf(
			"Monthly Contribution: %s\nEquity Allocation: %g%% (debt %g%%)\nYears: %g\nTotal Investment: %s\nEquity Component: %s\nDebt Component: %s\nFinal Corpus: %s\nWealth Gained: %s",
			formatMoney(result.MonthlyAmount), result.EquityRatioPercent, result.DebtRatioPercent, result.Years,
			formatMoney(result.TotalInvestment), formatMoney(result.EquityComponent), formatMoney(result.DebtComponent),
			formatMoney(result.FinalAmount), formatMoney(result.WealthGained),
		)
		return printResult(plain, result)
	},
}

func init() {
	npsCmd.Flags().Float64Var(&flagEquityReturn, "equity-return", 12.0, "expected annual equity return in percent")
	npsCmd.Flags().Float64Var(&flagDebtReturn, "debt-return", 8.0, "expected annual debt return in percent")
}
