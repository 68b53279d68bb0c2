// Trigonometry commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/mathops"
)

var flagAngleUnit string

var trigCmd = &cobra.Command{
	Use:   "trig",
	Short: "Trigonometric functions",
}

func init() {
	trigCmd.PersistentFlags().StringVar(&flagAngleUnit, "unit", "deg", "angle unit (deg or rad)")

	trigCmd.AddCommand(newTrigCmd("sin", "Sine", mathops.Sin))
	trigCmd.AddCommand(newTrigCmd("cos", "Cosine", mathops.Cos))
	trigCmd.AddCommand(newTrigCmd("tan", "Tangent", mathops.Tan))
}

// newTrigCmd builds one trigonometric subcommand; the three differ only
// in name and underlying function.
func newTrigCmd(name, operation string, fn func(float64, mathops.Angle) float64) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <angle>", name),
		Short: fmt.Sprintf("%s of an angle", operation),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angle, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			unit, err := mathops.ParseAngle(flagAngleUnit)
			if err != nil {
				return err
			}
			result := fn(angle, unit)

			store := openStore()
			defer store.Close()
			record(store, operation, fmt.Sprintf("%s(%s %s)", name, args[0], flagAngleUnit), result)
			return printResult(formatFloat(result), map[string]float64{"result": result})
		},
	}
}
