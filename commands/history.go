package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show seeding history",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.commandContext(cmd)
			defer cancel()

			runs, err := e.store.ListSeedRuns(ctx)
			if err != nil {
				return fmt.Errorf("failed to get seeding history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No seeding runs have been applied yet.")
				return nil
			}

			fmt.Fprintf(out, "%-36s  %-20s  %-8s  %-8s  %-5s  %-24s\n", "Run", "Seed", "Assigned", "Tenants", "Reset", "Applied At")
			for _, r := range runs {
				fmt.Fprintf(out, "%-36s  %-20d  %-8d  %-8d  %-5t  %-24s\n",
					r.RunID, r.Seed, r.Assigned, r.Tenants, r.Reset, formatTime(r.AppliedAt))
			}
			return nil
		},
	}
}
