package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

type fridgeResponse struct {
	Ingredients []model.FridgeItem `json:"ingredients"`
}

// Fridge fetches the current fridge inventory.
func (c *Client) Fridge(ctx context.Context) ([]model.FridgeItem, error) {
	var resp fridgeResponse
	if err := c.get(ctx, "/api/fridge", &resp); err != nil {
		return nil, fmt.Errorf("get fridge: %w", err)
	}
	if resp.Ingredients == nil {
		resp.Ingredients = []model.FridgeItem{}
	}
	return resp.Ingredients, nil
}

type listResponse struct {
	Name  string                  `json:"name"`
	Items []model.GroceryListItem `json:"items"`
}

// GroceryList fetches one grocery list with its items in backend order.
func (c *Client) GroceryList(ctx context.Context, id int64) (*model.GroceryList, error) {
	var resp listResponse
	if err := c.get(ctx, fmt.Sprintf("/api/grocery-lists/%d", id), &resp); err != nil {
		return nil, fmt.Errorf("get grocery list %d: %w", id, err)
	}
	if resp.Items == nil {
		resp.Items = []model.GroceryListItem{}
	}
	return &model.GroceryList{ID: id, Name: resp.Name, Items: resp.Items}, nil
}

type listsResponse struct {
	Lists []model.GroceryList `json:"lists"`
}

// GroceryLists fetches every grocery list. Items carry only id and name.
func (c *Client) GroceryLists(ctx context.Context) ([]model.GroceryList, error) {
	var resp listsResponse
	if err := c.get(ctx, "/api/grocery-lists", &resp); err != nil {
		return nil, fmt.Errorf("list grocery lists: %w", err)
	}
	if resp.Lists == nil {
		resp.Lists = []model.GroceryList{}
	}
	return resp.Lists, nil
}

type recipesResponse struct {
	Recipes []model.Recipe `json:"recipes"`
}

// Recipes fetches all recipes with their ingredient names.
func (c *Client) Recipes(ctx context.Context) ([]model.Recipe, error) {
	var resp recipesResponse
	if err := c.get(ctx, "/api/all-recipes", &resp); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return resp.Recipes, nil
}

// Recipe returns the recipe with the given id from the full recipe listing.
func (c *Client) Recipe(ctx context.Context, id int64) (*model.Recipe, error) {
	recipes, err := c.Recipes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], nil
		}
	}
	return nil, fmt.Errorf("get recipe %d: %w", id, ErrNotFound)
}

type menusResponse struct {
	Menus []model.Menu `json:"menus"`
}

func (c *Client) Menus(ctx context.Context) ([]model.Menu, error) {
	var resp menusResponse
	if err := c.get(ctx, "/api/menus", &resp); err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return resp.Menus, nil
}

// MenuRecipes fetches a menu's name and its recipes.
func (c *Client) MenuRecipes(ctx context.Context, menuID int64) (*model.MenuRecipes, error) {
	var resp model.MenuRecipes
	if err := c.get(ctx, fmt.Sprintf("/api/menus/%d/recipes", menuID), &resp); err != nil {
		return nil, fmt.Errorf("get menu %d recipes: %w", menuID, err)
	}
	return &resp, nil
}

// AddListItem appends a line to a grocery list. name is sent verbatim,
// markup included.
func (c *Client) AddListItem(ctx context.Context, listID int64, name string) error {
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/grocery-lists/%d/items", listID), body, nil); err != nil {
		return fmt.Errorf("add item to list %d: %w", listID, err)
	}
	return nil
}

// AddFridgeItem creates a fridge entry.
func (c *Client) AddFridgeItem(ctx context.Context, name string, quantity model.Quantity, unit string) error {
	body := struct {
		Name     string         `json:"name"`
		Quantity model.Quantity `json:"quantity"`
		Unit     string         `json:"unit"`
	}{name, quantity, unit}
	if err := c.do(ctx, http.MethodPost, "/api/fridge/add", body, nil); err != nil {
		return fmt.Errorf("add fridge item %q: %w", name, err)
	}
	return nil
}

// ZeroFridgeItem sets a fridge entry's quantity to 0 and returns it.
func (c *Client) ZeroFridgeItem(ctx context.Context, id int64) (*model.FridgeItem, error) {
	var item model.FridgeItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/fridge/%d/zero", id), nil, &item); err != nil {
		return nil, fmt.Errorf("zero fridge item %d: %w", id, err)
	}
	return &item, nil
}
