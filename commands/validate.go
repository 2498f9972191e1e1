package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentals/occupancy"
)

func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check stored occupancy and leases for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.commandContext(cmd)
			defer cancel()

			problems, err := occupancy.Audit(ctx, e.store)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(problems) > 0 {
				for _, p := range problems {
					fmt.Fprintf(out, "- %s\n", p)
				}
				return fmt.Errorf("found %d occupancy problems", len(problems))
			}

			fmt.Fprintln(out, "Occupancy and leases are consistent")
			return nil
		},
	}
}
