package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxwell903/maxandjacob-sub000/internal/grocery"
)

type addResult struct {
	ListID       int64    `json:"list_id"`
	Added        []string `json:"added"`
	Placeholders []string `json:"placeholders"`
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <list-id> <name...>",
		Short: "Add an ingredient to a grocery list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return errors.New("item name is empty")
			}

			idx, known, err := a.stockContext(cmd.Context())
			if err != nil {
				return err
			}
			labels := []string{grocery.IngredientLabel(name, idx, known)}
			return a.addLabels(cmd, listID, labels, idx)
		},
	}
}

func newAddRecipeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-recipe <list-id> <recipe-id>",
		Short: "Add a recipe's ingredients to a grocery list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			recipeID, err := parseID("recipe", args[1])
			if err != nil {
				return err
			}

			recipe, err := a.client.Recipe(cmd.Context(), recipeID)
			if err != nil {
				return err
			}
			idx, known, err := a.stockContext(cmd.Context())
			if err != nil {
				return err
			}
			return a.addLabels(cmd, listID, grocery.RecipeLabels(*recipe, idx, known), idx)
		},
	}
}

func newAddMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-menu <list-id> <menu-id>",
		Short: "Add every recipe of a menu to a grocery list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			menuID, err := parseID("menu", args[1])
			if err != nil {
				return err
			}

			menu, err := a.client.MenuRecipes(cmd.Context(), menuID)
			if err != nil {
				return err
			}
			idx, known, err := a.stockContext(cmd.Context())
			if err != nil {
				return err
			}
			return a.addLabels(cmd, listID, grocery.MenuLabels(*menu, idx, known), idx)
		},
	}
}

// stockContext fetches what label composition needs: the fridge as an index
// and the set of ingredients any recipe uses.
func (a *app) stockContext(ctx context.Context) (grocery.StockIndex, map[string]bool, error) {
	fridge, err := a.client.Fridge(ctx)
	if err != nil {
		return nil, nil, err
	}
	recipes, err := a.client.Recipes(ctx)
	if err != nil {
		return nil, nil, err
	}
	return grocery.NewStockIndex(fridge), grocery.KnownIngredients(recipes), nil
}

// addLabels posts labels to the list in order, then creates a quantity 0
// fridge entry for every ingredient the fridge has never seen.
func (a *app) addLabels(cmd *cobra.Command, listID int64, labels []string, idx grocery.StockIndex) error {
	ctx := cmd.Context()
	res := addResult{ListID: listID, Added: []string{}, Placeholders: []string{}}

	for _, label := range labels {
		if err := a.client.AddListItem(ctx, listID, label); err != nil {
			return err
		}
		res.Added = append(res.Added, label)
	}
	for _, name := range grocery.Ingredients(labels) {
		if idx.Has(name) {
			continue
		}
		if err := a.client.AddFridgeItem(ctx, name, 0, ""); err != nil {
			return err
		}
		res.Placeholders = append(res.Placeholders, name)
	}
	a.logger.Info("items added", "list_id", listID, "added", len(res.Added), "placeholders", len(res.Placeholders))

	if a.output == "json" {
		return printJSON(cmd.OutOrStdout(), res)
	}
	w := cmd.OutOrStdout()
	st := newStyles(w)
	for _, label := range res.Added {
		l := grocery.ClassifyLabel(label)
		switch {
		case l.IsHeading():
			fmt.Fprintf(w, "added %s\n", st.heading.Render(l.Text))
		case l.Hint == grocery.StatusInStock:
			fmt.Fprintf(w, "added %s %s\n", l.Text, st.inStock.Render("(in stock)"))
		default:
			fmt.Fprintf(w, "added %s\n", l.Text)
		}
	}
	for _, name := range res.Placeholders {
		fmt.Fprintf(w, "created fridge entry %s\n", st.muted.Render(name))
	}
	return nil
}
