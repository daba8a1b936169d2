package model

type Recipe struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PrepTime    int      `json:"prep_time"`
	Ingredients []string `json:"ingredients"`
}

type Menu struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RecipeCount int    `json:"recipe_count"`
}

type MenuRecipes struct {
	MenuName string   `json:"menu_name"`
	Recipes  []Recipe `json:"recipes"`
}
