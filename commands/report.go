package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentals/report"
)

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "report [vacancies|landlords]",
		Short:     "Run an occupancy report",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"vacancies", "landlords"},
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			xlsxPath, _ := cmd.Flags().GetString("xlsx")

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.commandContext(cmd)
			defer cancel()

			r := report.New(e.db)
			var sheet *report.Sheet
			switch args[0] {
			case "vacancies":
				rows, err := r.MostExpensiveVacancies(ctx, limit)
				if err != nil {
					return err
				}
				sheet = report.VacancySheet(rows)
			case "landlords":
				rows, err := r.LandlordsWithMostTenants(ctx, limit)
				if err != nil {
					return err
				}
				sheet = report.LandlordSheet(rows)
			}

			if xlsxPath != "" {
				if err := sheet.WriteXLSX(xlsxPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(sheet.Rows), xlsxPath)
				return nil
			}
			return sheet.WriteTable(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Int("limit", report.DefaultLimit, "Maximum number of rows")
	cmd.Flags().String("xlsx", "", "Write the report to this Excel file instead of stdout")

	return cmd
}
