package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentals/cascade"
	"github.com/beesaferoot/rentals/store"
)

func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a record and every row that references it",
	}
	cmd.AddCommand(
		deleteKindCmd(cascade.Tenant, "tenant [ssn]", func(arg string) (any, error) { return arg, nil }),
		deleteKindCmd(cascade.Property, "property [pid]", parseIntKey),
		deleteKindCmd(cascade.Landlord, "landlord [llid]", parseIntKey),
	)
	return cmd
}

func parseIntKey(arg string) (any, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	return id, nil
}

func deleteKindCmd(kind cascade.Kind, use string, parseKey func(string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Delete a %s with its occupancy and lease rows", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.commandContext(cmd)
			defer cancel()

			res, err := cascade.NewEngine(e.store, e.logger).Delete(ctx, kind, key)
			switch {
			case errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("%s %v not found: nothing was deleted", kind, key)
			case err != nil:
				return fmt.Errorf("failed to delete %s %v, all changes rolled back: %w", kind, key, err)
			}

			out := cmd.OutOrStdout()
			for _, s := range res.Steps {
				fmt.Fprintf(out, "%-28s  %d rows\n", s.Selector, s.Rows)
			}
			fmt.Fprintf(out, "Deleted %s %v\n", kind, key)
			return nil
		},
	}
}
