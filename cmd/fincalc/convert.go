// Unit and currency conversion commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Unit and currency conversions",
}

func init() {
	convertCmd.AddCommand(lengthCmd)
	convertCmd.AddCommand(weightCmd)
	convertCmd.AddCommand(tempCmd)
	convertCmd.AddCommand(currencyCmd)
}

var lengthCmd = &cobra.Command{
	Use:   "length <value> <from-unit> <to-unit>",
	Short: "Convert between length units",
	Long:  "Convert between length units.\n\nSupported units: " + strings.Join(convert.LengthUnits(), ", "),
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		converted, err := convert.Length(value, args[1], args[2])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Length Conversion",
			fmt.Sprintf("%s %s to %s", args[0], args[1], args[2]), converted)

		plain := fmt.Sprintf("%s %s = %s %s", args[0], args[1], formatFloat(converted), args[2])
		return printResult(plain, map[string]any{
			"value": value, "from": args[1], "to": args[2], "result": converted,
		})
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight <value> <from-unit> <to-unit>",
	Short: "Convert between weight units",
	Long:  "Convert between weight units.\n\nSupported units: " + strings.Join(convert.WeightUnits(), ", "),
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		converted, err := convert.Weight(value, args[1], args[2])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Weight Conversion",
			fmt.Sprintf("%s %s to %s", args[0], args[1], args[2]), converted)

		plain := fmt.Sprintf("%s %s = %s %s", args[0], args[1], formatFloat(converted), args[2])
		return printResult(plain, map[string]any{
			"value": value, "from": args[1], "to": args[2], "result": converted,
		})
	},
}

var tempCmd = &cobra.Command{
	Use:   "temp <value> <from-unit> <to-unit>",
	Short: "Convert between celsius, fahrenheit and kelvin",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		from, err := convert.ParseTempUnit(args[1])
		if err != nil {
			return err
		}
		to, err := convert.ParseTempUnit(args[2])
		if err != nil {
			return err
		}

		converted, err := convert.Temperature(value, from, to)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Temperature Conversion",
			fmt.Sprintf("%s %s to %s", args[0], from, to), converted)

		plain := fmt.Sprintf("%s %s = %s %s", args[0], from, formatFloat(converted), to)
		return printResult(plain, map[string]any{
			"value": value, "from": from.String(), "to": to.String(), "result": converted,
		})
	},
}

var currencyCmd = &cobra.Command{
	Use:   "currency <amount> <from-code> <to-code>",
	Short: "Convert an amount between configured currency pairs",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		from := strings.ToUpper(args[1])
		to := strings.ToUpper(args[2])
		converted, rate, err := convert.Currency(amount, from, to, marketRates.Forex)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Currency Conversion",
			fmt.Sprintf("%s %s to %s", args[0], from, to), converted)

		plain := fmt.Sprintf("%s %s = %s %s (rate %s)",
			args[0], from, formatMoney(converted), to, formatFloat(rate))
		return printResult(plain, map[string]any{
			"amount": amount, "from": from, "to": to,
			"rate": rate, "result": converted,
		})
	},
}
