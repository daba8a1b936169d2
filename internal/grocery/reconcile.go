package grocery

import "github.com/maxwell903/maxandjacob-sub000/internal/model"

// Entry is a grocery-list item with its label parsed once.
type Entry struct {
	Item  model.GroceryListItem
	Label Label
}

// Parse builds entries for items, preserving order.
func Parse(items []model.GroceryListItem) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Item: item, Label: ClassifyLabel(item.Name)}
	}
	return entries
}

// Buckets is the partition of a grocery list. Each bucket keeps the input
// order of its items.
type Buckets struct {
	Needed  []model.GroceryListItem `json:"needed"`
	InStock []model.GroceryListItem `json:"in_stock"`
	Other   []model.GroceryListItem `json:"other"`
}

type Summary struct {
	Needed  int `json:"needed"`
	InStock int `json:"in_stock"`
	Other   int `json:"other"`
}

func (b Buckets) Summary() Summary {
	return Summary{Needed: len(b.Needed), InStock: len(b.InStock), Other: len(b.Other)}
}

// Reconcile partitions items against the fridge snapshot. Under FilterAll
// every item lands in Other in input order. Otherwise ingredients go to
// Needed or InStock by live status, and headers and unknown ingredients go
// to Other.
func Reconcile(items []model.GroceryListItem, fridge []model.FridgeItem, filter ViewFilter) Buckets {
	return ReconcileEntries(Parse(items), NewStockIndex(fridge), filter)
}

// ReconcileEntries is Reconcile over pre-parsed entries and an index.
func ReconcileEntries(entries []Entry, idx StockIndex, filter ViewFilter) Buckets {
	b := Buckets{
		Needed:  []model.GroceryListItem{},
		InStock: []model.GroceryListItem{},
		Other:   []model.GroceryListItem{},
	}

	if filter == FilterAll {
		for _, e := range entries {
			b.Other = append(b.Other, e.Item)
		}
		return b
	}

	for _, e := range entries {
		if e.Label.IsHeading() {
			b.Other = append(b.Other, e.Item)
			continue
		}
		switch idx.Status(e.Label.Text) {
		case StatusNeeded:
			b.Needed = append(b.Needed, e.Item)
		case StatusInStock:
			b.InStock = append(b.InStock, e.Item)
		default:
			b.Other = append(b.Other, e.Item)
		}
	}
	return b
}
