package main

import (
	"fmt"

	"github.com/gubarz/cheatpick/internal/config"
	"github.com/gubarz/cheatpick/internal/globals"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set NAME [VALUE]",
	Short: "Set or clear a global variable",
	Long: `Stores a value in the global variables file. Arguments with the same
name are prefilled with it in every template. Omitting VALUE clears it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List global variables",
	Args:  cobra.NoArgs,
	RunE:  runVars,
}

func runSet(cmd *cobra.Command, args []string) error {
	store, err := globals.Load(config.GetGlobalsFile())
	if err != nil {
		return fmt.Errorf("loading globals: %w", err)
	}

	value := ""
	if len(args) == 2 {
		value = args[1]
	}
	store.Set(args[0], value)

	if err := store.Save(); err != nil {
		return fmt.Errorf("saving globals: %w", err)
	}
	return nil
}

func runVars(cmd *cobra.Command, args []string) error {
	store, err := globals.Load(config.GetGlobalsFile())
	if err != nil {
		return fmt.Errorf("loading globals: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range store.Names() {
		v, _ := store.Get(name)
		fmt.Fprintf(out, "%s=%s\n", name, v)
	}
	return nil
}
