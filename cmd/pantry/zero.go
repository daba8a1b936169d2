package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newZeroCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zero <fridge-item-id>",
		Short: "Mark a fridge item as used up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("fridge item", args[0])
			if err != nil {
				return err
			}
			item, err := a.client.ZeroFridgeItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to 0\n", item.Name)
			return nil
		},
	}
}
