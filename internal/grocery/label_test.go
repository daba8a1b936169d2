package grocery

import (
	"strings"
	"testing"
)

func TestClassifyLabel(t *testing.T) {
	tests := []struct {
		input string
		want  Label
	}{
		{"### Week 1 ###", Label{Kind: KindHeader, Text: "Week 1"}},
		{"  ###Dinner Party###  ", Label{Kind: KindHeader, Text: "Dinner Party"}},
		{"#### Brunch ####", Label{Kind: KindHeader, Text: "Brunch"}},
		{"###", Label{Kind: KindHeader, Text: ""}},
		{"**Pancakes**", Label{Kind: KindSubHeader, Text: "Pancakes"}},
		{" ** Tacos ** ", Label{Kind: KindSubHeader, Text: "Tacos"}},
		{"[green]• milk", Label{Kind: KindIngredient, Text: "milk", Hint: StatusInStock}},
		{"[red]• eggs", Label{Kind: KindIngredient, Text: "eggs", Hint: StatusUnknown}},
		{"[black]• flour", Label{Kind: KindIngredient, Text: "flour", Hint: StatusUnknown}},
		{"• eggs", Label{Kind: KindIngredient, Text: "eggs"}},
		{"•eggs ", Label{Kind: KindIngredient, Text: "eggs"}},
		{"✓ butter", Label{Kind: KindIngredient, Text: "butter", Hint: StatusInStock}},
		{"Olive Oil", Label{Kind: KindIngredient, Text: "Olive Oil"}},
		{"", Label{Kind: KindIngredient, Text: ""}},
		{"   ", Label{Kind: KindIngredient, Text: ""}},
		// a tag not followed by a bullet is plain text
		{"[green] milk", Label{Kind: KindIngredient, Text: "[green] milk"}},
		// only a trailing marker is not a header
		{"### Week 1", Label{Kind: KindIngredient, Text: "### Week 1"}},
		{"**bold", Label{Kind: KindIngredient, Text: "**bold"}},
	}
	for _, tt := range tests {
		got := ClassifyLabel(tt.input)
		if got != tt.want {
			t.Errorf("ClassifyLabel(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestClassifyLabelWrappedHeaders(t *testing.T) {
	names := []string{"a", "Week 1", "Grandma's Sunday Menu", "  spaced  ", "x y z"}
	for _, s := range names {
		h := ClassifyLabel("### " + s + " ###")
		if h.Kind != KindHeader {
			t.Errorf("ClassifyLabel(### %s ###).Kind = %v, want header", s, h.Kind)
		}
		if want := strings.TrimSpace(s); h.Text != want {
			t.Errorf("header text = %q, want %q", h.Text, want)
		}

		sh := ClassifyLabel("**" + s + "**")
		if sh.Kind != KindSubHeader {
			t.Errorf("ClassifyLabel(**%s**).Kind = %v, want subheader", s, sh.Kind)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Milk", "milk"},
		{"  MILK  ", "milk"},
		{"[green]• Milk", "milk"},
		{"✓ Butter", "butter"},
		{"**Pancakes**", "pancakes"},
		{"", ""},
		{"\xff\xfe", "\uFFFD"},
		{"Milk\xff", "milk\uFFFD"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindHeader.String() != "header" || KindSubHeader.String() != "subheader" || KindIngredient.String() != "ingredient" {
		t.Errorf("unexpected kind strings: %s %s %s", KindHeader, KindSubHeader, KindIngredient)
	}
}
