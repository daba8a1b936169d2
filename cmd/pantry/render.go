package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/maxwell903/maxandjacob-sub000/internal/grocery"
	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	needed  lipgloss.Style
	inStock lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Underline(true),
		heading: r.NewStyle().Bold(true),
		needed:  r.NewStyle().Foreground(lipgloss.Color("1")),
		inStock: r.NewStyle().Foreground(lipgloss.Color("2")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func formatAmount(q model.Quantity, unit string) string {
	s := strconv.FormatFloat(float64(q), 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}

func printFridge(w io.Writer, items []model.FridgeItem) {
	st := newStyles(w)
	if len(items) == 0 {
		fmt.Fprintln(w, st.muted.Render("no items"))
		return
	}
	for _, it := range items {
		mark := st.inStock.Render("in stock")
		if !it.InStock() {
			mark = st.needed.Render("out")
		}
		fmt.Fprintf(w, "%4d  %-24s %-12s %s\n", it.ID, it.Name, formatAmount(it.Quantity, it.Unit), mark)
	}
}

// printBuckets writes the reconciled view. Under FilterAll only the flat
// Other bucket is shown.
func printBuckets(w io.Writer, title string, b grocery.Buckets, filter grocery.ViewFilter) {
	st := newStyles(w)
	if title != "" {
		fmt.Fprintln(w, st.title.Render(title))
	}

	if filter == grocery.FilterAll {
		printItems(w, st, b.Other, st.muted)
		return
	}

	sum := b.Summary()
	fmt.Fprintln(w, st.needed.Render(fmt.Sprintf("Needed (%d)", sum.Needed)))
	printItems(w, st, b.Needed, st.needed)
	fmt.Fprintln(w, st.inStock.Render(fmt.Sprintf("In stock (%d)", sum.InStock)))
	printItems(w, st, b.InStock, st.inStock)
	if sum.Other > 0 {
		fmt.Fprintln(w, st.muted.Render(fmt.Sprintf("Other (%d)", sum.Other)))
		printItems(w, st, b.Other, st.muted)
	}
}

func printItems(w io.Writer, st styles, items []model.GroceryListItem, style lipgloss.Style) {
	for _, it := range items {
		l := grocery.ClassifyLabel(it.Name)
		switch l.Kind {
		case grocery.KindHeader:
			fmt.Fprintf(w, "  %s\n", st.heading.Render(l.Text))
		case grocery.KindSubHeader:
			fmt.Fprintf(w, "   %s\n", st.heading.Render(l.Text))
		default:
			line := "    " + style.Render(l.Text)
			if it.Quantity > 0 {
				line += " " + st.muted.Render(formatAmount(it.Quantity, it.Unit))
			}
			fmt.Fprintln(w, line)
		}
	}
}
