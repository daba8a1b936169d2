package grocery

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

func TestFilterInventory(t *testing.T) {
	fridge := fridgeOf("milk", 2, "eggs", 0, "butter", 1, "jam", 0)

	inStock := FilterInventory(fridge, FilterInStock)
	if diff := cmp.Diff([]model.FridgeItem{fridge[0], fridge[2]}, inStock); diff != "" {
		t.Errorf("inStock mismatch (-want +got):\n%s", diff)
	}

	needed := FilterInventory(fridge, FilterNeeded)
	if diff := cmp.Diff([]model.FridgeItem{fridge[1], fridge[3]}, needed); diff != "" {
		t.Errorf("needed mismatch (-want +got):\n%s", diff)
	}

	all := FilterInventory(fridge, FilterAll)
	if diff := cmp.Diff(fridge, all); diff != "" {
		t.Errorf("all mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterInventoryIdempotent(t *testing.T) {
	fridge := fridgeOf("milk", 2, "eggs", 0, "butter", 1)
	for _, f := range []ViewFilter{FilterInStock, FilterNeeded, FilterAll} {
		once := FilterInventory(fridge, f)
		twice := FilterInventory(once, f)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("filter %s not idempotent (-once +twice):\n%s", f, diff)
		}
	}
}

func TestFilterInventoryEmpty(t *testing.T) {
	if got := FilterInventory(nil, FilterInStock); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := FilterInventory(nil, FilterAll); got != nil {
		t.Errorf("expected nil passthrough, got %v", got)
	}
}

func TestParseViewFilter(t *testing.T) {
	tests := []struct {
		input string
		want  ViewFilter
	}{
		{"inStock", FilterInStock},
		{"instock", FilterInStock},
		{"in_stock", FilterInStock},
		{"In-Stock", FilterInStock},
		{"needed", FilterNeeded},
		{" NEEDED ", FilterNeeded},
		{"all", FilterAll},
	}
	for _, tt := range tests {
		got, err := ParseViewFilter(tt.input)
		if err != nil {
			t.Errorf("ParseViewFilter(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseViewFilter(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseViewFilter("expired"); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestViewFilterRoundTrip(t *testing.T) {
	for _, f := range []ViewFilter{FilterInStock, FilterNeeded, FilterAll} {
		got, err := ParseViewFilter(f.String())
		if err != nil || got != f {
			t.Errorf("ParseViewFilter(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}
}
