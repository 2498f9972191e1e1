package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentals/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "rentals",
		Short:         "Rental occupancy seeding and cascading deletes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.SeedCmd(),
		commands.DeleteCmd(),
		commands.ListCmd(),
		commands.HistoryCmd(),
		commands.ReportCmd(),
		commands.ValidateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
