// Loan commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/loan"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Loan and EMI calculations",
}

func init() {
	loanCmd.AddCommand(emiCmd)
}

var emiCmd = &cobra.Command{
	Use:   "emi <principal> <annual-rate-%> <tenure-years>",
	Short: "Compute the equal monthly installment for a loan",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}

		result, err := loan.ComputeEMI(nums[0], nums[1], nums[2])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Loan EMI", fmt.Sprintf("P=%s, r=%s%%, t=%sy", args[0], args[1], args[2]), result.EMI)

		plain := fmt.Sprintf(
			"Loan Amount: %s\nInterest Rate: %g%%\nTenure: %g years\nMonthly EMI: %s\nTotal Interest: %s\nTotal Payment: %s",
			formatMoney(result.Principal), result.RatePercent, result.TenureYears,
			formatMoney(result.EMI), formatMoney(result.TotalInterest), formatMoney(result.TotalPayment),
		)
		return printResult(plain, result)
	},
}
