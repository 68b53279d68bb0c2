// Basic and advanced arithmetic commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/mathops"
)

var mathCmd = &cobra.Command{
	Use:   "math",
	Short: "Arithmetic operations",
}

func init() {
	mathCmd.AddCommand(addCmd)
	mathCmd.AddCommand(subtractCmd)
	mathCmd.AddCommand(multiplyCmd)
	mathCmd.AddCommand(divideCmd)
	mathCmd.AddCommand(powerCmd)
	mathCmd.AddCommand(nthRootCmd)
	mathCmd.AddCommand(sqrtCmd)
	mathCmd.AddCommand(logCmd)
	mathCmd.AddCommand(factorialCmd)
	mathCmd.AddCommand(percentCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <number>...",
	Short: "Add numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result := mathops.Add(nums...)

		store := openStore()
		defer store.Close()
		record(store, "Addition", strings.Join(args, " + "), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var subtractCmd = &cobra.Command{
	Use:   "subtract <x> <y>",
	Short: "Subtract y from x",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result := mathops.Subtract(nums[0], nums[1])

		store := openStore()
		defer store.Close()
		record(store, "Subtraction", fmt.Sprintf("%s - %s", args[0], args[1]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var multiplyCmd = &cobra.Command{
	Use:   "multiply <number>...",
	Short: "Multiply numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result := mathops.Multiply(nums...)

		store := openStore()
		defer store.Close()
		record(store, "Multiplication", strings.Join(args, " * "), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var divideCmd = &cobra.Command{
	Use:   "divide <x> <y>",
	Short: "Divide x by y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result, err := mathops.Divide(nums[0], nums[1])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Division", fmt.Sprintf("%s / %s", args[0], args[1]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var powerCmd = &cobra.Command{
	Use:   "power <base> <exponent>",
	Short: "Raise a base to an exponent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result := mathops.Power(nums[0], nums[1])

		store := openStore()
		defer store.Close()
		record(store, "Power", fmt.Sprintf("%s^%s", args[0], args[1]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

// nthRootCmd avoids clashing with the top-level rootCmd.
var nthRootCmd = &cobra.Command{
	Use:   "root <x> <n>",
	Short: "Take the nth root of x",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result, err := mathops.Root(nums[0], nums[1])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Root", fmt.Sprintf("%s√%s", args[1], args[0]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt <x>",
	Short: "Take the square root of x",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		result, err := mathops.SquareRoot(x)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Square Root", fmt.Sprintf("√%s", args[0]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var logCmd = &cobra.Command{
	Use:   "log <x> [base]",
	Short: "Take the logarithm of x (base 10 by default)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		base := 10.0
		if len(args) == 2 {
			if base, err = parseFloat(args[1]); err != nil {
				return err
			}
		}
		result, err := mathops.Log(x, base)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Logarithm", fmt.Sprintf("log_%s(%s)", formatFloat(base), args[0]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}

var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Compute n!",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		result, err := mathops.Factorial(n)
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		record(store, "Factorial", fmt.Sprintf("%d!", n), float64(result))
		return printResult(fmt.Sprintf("%d", result), map[string]uint64{"result": result})
	},
}

var percentCmd = &cobra.Command{
	Use:   "percent <x> <y>",
	Short: "Compute x percent of y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseFloats(args)
		if err != nil {
			return err
		}
		result := mathops.Percent(nums[0], nums[1])

		store := openStore()
		defer store.Close()
		record(store, "Percentage", fmt.Sprintf("%s%% of %s", args[0], args[1]), result)
		return printResult(formatFloat(result), map[string]float64{"result": result})
	},
}
