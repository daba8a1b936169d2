package grocery

import (
	"strings"

	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

// HeaderLabel returns the section header line for a menu.
func HeaderLabel(name string) string {
	return headerMark + " " + strings.TrimSpace(name) + " " + headerMark
}

// SubHeaderLabel returns the sub-header line for a recipe.
func SubHeaderLabel(name string) string {
	return subHeaderMark + strings.TrimSpace(name) + subHeaderMark
}

// IngredientLabel returns the bulleted line for name, tagged [green] when
// the fridge has it stocked and [red] when it is a known recipe ingredient
// that is not stocked.
func IngredientLabel(name string, idx StockIndex, known map[string]bool) string {
	name = strings.TrimSpace(name)
	switch {
	case idx.Status(name) == StatusInStock:
		return "[green]" + bullet + " " + name
	case known[NormalizeName(name)]:
		return "[red]" + bullet + " " + name
	default:
		return bullet + " " + name
	}
}

// RecipeLabels returns the sub-header for recipe followed by one ingredient
// line per non-blank ingredient.
func RecipeLabels(recipe model.Recipe, idx StockIndex, known map[string]bool) []string {
	labels := []string{SubHeaderLabel(recipe.Name)}
	for _, ing := range recipe.Ingredients {
		if strings.TrimSpace(ing) == "" {
			continue
		}
		labels = append(labels, IngredientLabel(ing, idx, known))
	}
	return labels
}

// MenuLabels returns the header for the menu followed by the lines of each
// of its recipes in order.
func MenuLabels(menu model.MenuRecipes, idx StockIndex, known map[string]bool) []string {
	labels := []string{HeaderLabel(menu.MenuName)}
	for _, r := range menu.Recipes {
		labels = append(labels, RecipeLabels(r, idx, known)...)
	}
	return labels
}

// KnownIngredients returns the set of normalized ingredient names used by
// any recipe.
func KnownIngredients(recipes []model.Recipe) map[string]bool {
	known := make(map[string]bool)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if key := NormalizeName(ing); key != "" {
				known[key] = true
			}
		}
	}
	return known
}

// Ingredients returns the trimmed, non-blank ingredient names that labels
// would add, in order and without duplicates.
func Ingredients(labels []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range labels {
		lbl := ClassifyLabel(l)
		if lbl.IsHeading() || lbl.Text == "" {
			continue
		}
		key := strings.ToLower(lbl.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, lbl.Text)
	}
	return names
}
