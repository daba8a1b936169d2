package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxwell903/maxandjacob-sub000/internal/grocery"
	"github.com/maxwell903/maxandjacob-sub000/internal/model"
	"github.com/maxwell903/maxandjacob-sub000/internal/refresh"
)

func newReconcileCmd(a *app) *cobra.Command {
	var (
		filter     string
		fridgeFile string
		listFile   string
	)
	cmd := &cobra.Command{
		Use:   "reconcile [list-id]",
		Short: "Split a grocery list into needed and in-stock items",
		Long: `Reconcile a grocery list against the fridge. With --fridge-file and
--list-file the command runs offline against saved backend responses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := grocery.ParseViewFilter(filter)
			if err != nil {
				return err
			}

			var (
				listID int64
				fridge []model.FridgeItem
				list   *model.GroceryList
			)
			switch {
			case fridgeFile != "" || listFile != "":
				if fridgeFile == "" || listFile == "" {
					return errors.New("--fridge-file and --list-file must be used together")
				}
				if fridge, err = readFridgeFile(fridgeFile); err != nil {
					return err
				}
				if list, err = readListFile(listFile); err != nil {
					return err
				}
				listID = list.ID
			case len(args) == 1:
				if listID, err = parseID("list", args[0]); err != nil {
					return err
				}
				snap, err := a.client.Snapshot(cmd.Context(), listID)
				if err != nil {
					return err
				}
				fridge, list = snap.Fridge, snap.List
			default:
				return errors.New("a list id is required unless --fridge-file and --list-file are given")
			}

			buckets := grocery.Reconcile(list.Items, fridge, f)
			a.logger.Debug("list reconciled", "list_id", listID, "items", len(list.Items))

			if a.output == "json" {
				return printJSON(cmd.OutOrStdout(), refresh.Result{
					ListID:   listID,
					ListName: list.Name,
					Filter:   f.String(),
					Buckets:  buckets,
					Summary:  buckets.Summary(),
				})
			}
			printBuckets(cmd.OutOrStdout(), list.Name, buckets, f)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "inStock", "inStock, needed or all")
	cmd.Flags().StringVar(&fridgeFile, "fridge-file", "", "fridge JSON ({\"ingredients\":[...]})")
	cmd.Flags().StringVar(&listFile, "list-file", "", "grocery list JSON ({\"items\":[...]})")
	return cmd
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func readFridgeFile(path string) ([]model.FridgeItem, error) {
	var doc struct {
		Ingredients []model.FridgeItem `json:"ingredients"`
	}
	if err := readJSONFile(path, &doc); err != nil {
		return nil, err
	}
	return doc.Ingredients, nil
}

func readListFile(path string) (*model.GroceryList, error) {
	var doc struct {
		ID    int64                   `json:"id"`
		Name  string                  `json:"name"`
		Items []model.GroceryListItem `json:"items"`
	}
	if err := readJSONFile(path, &doc); err != nil {
		return nil, err
	}
	return &model.GroceryList{ID: doc.ID, Name: doc.Name, Items: doc.Items}, nil
}
