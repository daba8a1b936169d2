package grocery

import "github.com/maxwell903/maxandjacob-sub000/internal/model"

// Status is the derived stock state of an ingredient. It is never stored.
type Status int

const (
	StatusUnknown Status = iota
	StatusInStock
	StatusNeeded
)

func (s Status) String() string {
	switch s {
	case StatusInStock:
		return "in_stock"
	case StatusNeeded:
		return "needed"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify decides the stock status of displayText against a fridge
// snapshot. Names are compared for exact equality after NormalizeName, so
// "almond milk" never matches "milk".
func Classify(displayText string, fridge []model.FridgeItem) Status {
	key := NormalizeName(displayText)
	if key == "" {
		return StatusUnknown
	}

	matched := false
	for _, item := range fridge {
		if NormalizeName(item.Name) != key {
			continue
		}
		if item.InStock() {
			return StatusInStock
		}
		matched = true
	}
	if matched {
		return StatusNeeded
	}
	return StatusUnknown
}

// StockIndex is a fridge snapshot keyed by normalized name. It answers the
// same question as Classify without rescanning the fridge per lookup.
type StockIndex map[string]bool

// NewStockIndex builds an index from a fridge snapshot. A name maps to true
// when any entry with that name is stocked.
func NewStockIndex(fridge []model.FridgeItem) StockIndex {
	idx := make(StockIndex, len(fridge))
	for _, item := range fridge {
		key := NormalizeName(item.Name)
		if key == "" {
			continue
		}
		idx[key] = idx[key] || item.InStock()
	}
	return idx
}

// Status classifies displayText against the indexed snapshot.
func (idx StockIndex) Status(displayText string) Status {
	key := NormalizeName(displayText)
	if key == "" {
		return StatusUnknown
	}
	stocked, ok := idx[key]
	switch {
	case !ok:
		return StatusUnknown
	case stocked:
		return StatusInStock
	default:
		return StatusNeeded
	}
}

// Has reports whether the fridge has any entry, stocked or not, for name.
func (idx StockIndex) Has(name string) bool {
	_, ok := idx[NormalizeName(name)]
	return ok
}
