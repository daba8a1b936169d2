package grocery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

// ErrUnknownFilter is returned by ParseViewFilter for an unrecognized keyword.
var ErrUnknownFilter = errors.New("unknown view filter")

// ViewFilter selects which partition of a list or fridge table is shown.
type ViewFilter int

const (
	FilterInStock ViewFilter = iota
	FilterNeeded
	FilterAll
)

func (f ViewFilter) String() string {
	switch f {
	case FilterNeeded:
		return "needed"
	case FilterAll:
		return "all"
	default:
		return "inStock"
	}
}

// ParseViewFilter accepts inStock (also in_stock, in-stock), needed and all,
// case-insensitively.
func ParseViewFilter(s string) (ViewFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "instock", "in_stock", "in-stock":
		return FilterInStock, nil
	case "needed":
		return FilterNeeded, nil
	case "all":
		return FilterAll, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// FilterInventory returns the fridge rows shown under filter, in their
// original order. FilterAll returns the input as is.
func FilterInventory(fridge []model.FridgeItem, filter ViewFilter) []model.FridgeItem {
	if filter == FilterAll {
		return fridge
	}

	out := make([]model.FridgeItem, 0, len(fridge))
	for _, item := range fridge {
		if item.InStock() == (filter == FilterInStock) {
			out = append(out, item)
		}
	}
	return out
}
