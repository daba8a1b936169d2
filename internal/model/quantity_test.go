package model

import (
	"encoding/json"
	"testing"
)

func TestQuantityUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want Quantity
	}{
		{`2`, 2},
		{`0`, 0},
		{`1.5`, 1.5},
		{`"3"`, 3},
		{`" 4.25 "`, 4.25},
		{`null`, 0},
		{`"lots"`, 0},
		{`""`, 0},
		{`-2`, 0},
		{`"-1"`, 0},
		{`true`, 0},
		{`{"n":1}`, 0},
		{`[1]`, 0},
		{`"NaN"`, 0},
		{`"Inf"`, 0},
		{`1e400`, 0},
		{`"0x10p0"`, 0},
		{`"+0X1p4"`, 0},
		{`"1e2"`, 100},
	}
	for _, tt := range tests {
		var q Quantity
		if err := json.Unmarshal([]byte(tt.raw), &q); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.raw, err)
		}
		if q != tt.want {
			t.Errorf("Quantity(%s) = %v, want %v", tt.raw, q, tt.want)
		}
	}
}

func TestFridgeItemDecode(t *testing.T) {
	payload := `{"ingredients":[{"id":1,"name":"milk","quantity":2,"unit":"gal"},{"id":2,"name":"eggs","quantity":"none","unit":null}]}`

	var resp struct {
		Ingredients []FridgeItem `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Ingredients) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Ingredients))
	}
	if !resp.Ingredients[0].InStock() {
		t.Error("expected milk in stock")
	}
	if resp.Ingredients[1].InStock() {
		t.Error("expected malformed quantity to decode as not stocked")
	}
	if resp.Ingredients[1].Unit != "" {
		t.Errorf("unit = %q, want empty", resp.Ingredients[1].Unit)
	}
}
