package model

// FridgeItem is one entry of the fridge inventory. A zero Quantity means the
// ingredient is known but not currently stocked.
type FridgeItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Unit     string   `json:"unit"`
}

// InStock reports whether the item currently has a positive quantity.
func (f FridgeItem) InStock() bool {
	return f.Quantity > 0
}
