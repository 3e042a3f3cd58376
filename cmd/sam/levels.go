package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	names, err := loader.ListLevels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
