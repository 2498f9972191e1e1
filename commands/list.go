package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [properties|tenants|landlords]",
		Short:     "List stored records",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"properties", "tenants", "landlords"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.commandContext(cmd)
			defer cancel()

			out := cmd.OutOrStdout()
			switch args[0] {
			case "properties":
				properties, err := e.store.ListProperties(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-6s  %-6s  %-32s  %-4s  %-5s  %-10s  %-4s\n", "PID", "LLID", "Address", "Beds", "Baths", "Price", "Pets")
				for _, p := range properties {
					pets := "No"
					if p.PetsAllowed {
						pets = "Yes"
					}
					fmt.Fprintf(out, "%-6d  %-6d  %-32s  %-4d  %-5.1f  %-10s  %-4s\n",
						p.PID, p.LandlordID, p.Address, p.Bed, p.Bath, p.Price.StringFixed(2), pets)
				}
			case "tenants":
				tenants, err := e.store.ListTenants(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-11s  %-30s  %-10s  %-30s\n", "SSN", "Name", "Budget", "Email")
				for _, t := range tenants {
					fmt.Fprintf(out, "%-11s  %-30s  %-10s  %-30s\n", t.SSN, t.FullName(), t.Budget.StringFixed(2), t.Email)
				}
			case "landlords":
				landlords, err := e.store.ListLandlords(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-6s  %-30s  %-14s  %-30s\n", "LLID", "Name", "Phone", "Email")
				for _, l := range landlords {
					fmt.Fprintf(out, "%-6d  %-30s  %-14s  %-30s\n", l.LLID, l.Name, l.PhoneNum, l.Email)
				}
			}
			return nil
		},
	}
}
