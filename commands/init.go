package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentals/internal/schema"
	"github.com/beesaferoot/rentals/models"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the rental tables in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.commandContext(cmd)
			defer cancel()

			if err := e.db.WithContext(ctx).AutoMigrate(models.ModelTypeRegistry...); err != nil {
				return fmt.Errorf("failed to create tables: %w", err)
			}

			tables, err := schema.Describe(models.ModelTypeRegistry)
			if err != nil {
				return fmt.Errorf("failed to describe tables: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, t := range tables {
				fmt.Fprintf(out, "%-12s  %s\n", t.TableName(), t)
			}
			fmt.Fprintf(out, "Schema ready: %d tables\n", len(tables))
			return nil
		},
	}
}
