// Version command for the fincalc CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/fincalc/pkg/fincalc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fincalc version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fincalc", fincalc.Version)
	},
}
