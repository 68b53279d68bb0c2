// Memory register commands: the stack, named variables, and the
// last-result register.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Memory stack operations",
}

func init() {
	memCmd.AddCommand(memPushCmd)
	memCmd.AddCommand(memPopCmd)
	memCmd.AddCommand(memShowCmd)
	memCmd.AddCommand(memClearCmd)

	varCmd.AddCommand(varSetCmd)
	varCmd.AddCommand(varGetCmd)
	varCmd.AddCommand(varListCmd)
}

var memPushCmd = &cobra.Command{
	Use:   "push <value>",
	Short: "Push a value onto the memory stack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		if err := store.Push(value); err != nil {
			return err
		}
		return printResult(fmt.Sprintf("pushed %s", formatFloat(value)), map[string]float64{"pushed": value})
	},
}

var memPopCmd = &cobra.Command{
	Use:   "pop",
	Short: "Remove and print the top of the memory stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		value, err := store.Pop()
		if err != nil {
			return err
		}
		return printResult(formatFloat(value), map[string]float64{"popped": value})
	},
}

var memShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the memory stack, bottom first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		values, err := store.Stack()
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return printResult("stack is empty", values)
		}

		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = formatFloat(v)
		}
		return printResult(strings.Join(parts, " "), values)
	},
}

var memClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the memory stack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		if err := store.ClearStack(); err != nil {
			return err
		}
		return printResult("stack cleared", map[string]string{"status": "cleared"})
	},
}

var varCmd = &cobra.Command{
	Use:   "var",
	Short: "Named variable operations",
}

var varSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Store a named variable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseFloat(args[1])
		if err != nil {
			return err
		}

		store := openStore()
		defer store.Close()
		if err := store.SetVar(args[0], value); err != nil {
			return err
		}
		return printResult(fmt.Sprintf("%s = %s", args[0], formatFloat(value)),
			map[string]float64{args[0]: value})
	},
}

var varGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a named variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		value, err := store.GetVar(args[0])
		if err != nil {
			return err
		}
		return printResult(formatFloat(value), map[string]float64{args[0]: value})
	},
}

var varListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all named variables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		vars, err := store.Vars()
		if err != nil {
			return err
		}
		if len(vars) == 0 {
			return printResult("no variables set", vars)
		}

		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		for _, name := range names {
			fmt.Fprintf(&b, "%s = %s\n", name, formatFloat(vars[name]))
		}
		return printResult(strings.TrimRight(b.String(), "\n"), vars)
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the result of the most recent calculation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		defer store.Close()

		value, err := store.Last()
		if err != nil {
			return err
		}
		return printResult(formatFloat(value), map[string]float64{"last": value})
	},
}
