package model

type GroceryList struct {
	ID    int64             `json:"id"`
	Name  string            `json:"name"`
	Items []GroceryListItem `json:"items"`
}

// GroceryListItem is one line of a shopping list. Name may carry structural
// markup (headers, recipe names, status tags); see grocery.ClassifyLabel.
type GroceryListItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Unit     string   `json:"unit"`
	PricePer float64  `json:"price_per"`
	Total    float64  `json:"total"`
}
