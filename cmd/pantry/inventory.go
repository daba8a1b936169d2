package main

import (
	"github.com/spf13/cobra"

	"github.com/maxwell903/maxandjacob-sub000/internal/grocery"
)

func newInventoryCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show fridge items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := grocery.ParseViewFilter(filter)
			if err != nil {
				return err
			}
			fridge, err := a.client.Fridge(cmd.Context())
			if err != nil {
				return err
			}

			items := grocery.FilterInventory(fridge, f)
			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), items)
			}
			printFridge(cmd.OutOrStdout(), items)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "inStock, needed or all")
	return cmd
}
