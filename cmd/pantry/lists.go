package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type listSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Items int    `json:"items"`
}

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show grocery lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := a.client.GroceryLists(cmd.Context())
			if err != nil {
				return err
			}

			out := make([]listSummary, len(lists))
			for i, l := range lists {
				out[i] = listSummary{ID: l.ID, Name: l.Name, Items: len(l.Items)}
			}
			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			st := newStyles(w)
			if len(out) == 0 {
				fmt.Fprintln(w, st.muted.Render("no lists"))
				return nil
			}
			for _, l := range out {
				fmt.Fprintf(w, "%4d  %-32s %s\n", l.ID, l.Name, st.muted.Render(fmt.Sprintf("%d items", l.Items)))
			}
			return nil
		},
	}
}

func newMenusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menus",
		Short: "Show menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			menus, err := a.client.Menus(cmd.Context())
			if err != nil {
				return err
			}
			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), menus)
			}

			w := cmd.OutOrStdout()
			st := newStyles(w)
			if len(menus) == 0 {
				fmt.Fprintln(w, st.muted.Render("no menus"))
				return nil
			}
			for _, m := range menus {
				fmt.Fprintf(w, "%4d  %-32s %s\n", m.ID, m.Name, st.muted.Render(fmt.Sprintf("%d recipes", m.RecipeCount)))
			}
			return nil
		},
	}
}
