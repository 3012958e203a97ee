package output

import (
	"fmt"
	"io"
	"strings"

	"storefront/core/pricing"
	"storefront/core/types"
)

// Table is a fixed-column text table
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row, padding or truncating cells to the header count
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table
func (t *Table) Render(w io.Writer) error {
	var b strings.Builder

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%-*s", t.widths[i], cell)
		}
		b.WriteString("\n")
	}

	writeRow(t.headers)
	for i, width := range t.widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteString("\n")
	for _, row := range t.rows {
		writeRow(row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderLayers writes one table row per chain level followed by the total
func RenderLayers(w io.Writer, p pricing.Priceable) error {
	t := NewTable("LAYER", "ADDS", "SUBTOTAL")
	for _, l := range pricing.Layers(p) {
		t.AddRow(l.Label, types.FormatAmount(l.Delta), types.FormatAmount(l.Subtotal))
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s : %s\n", p.Description(), types.FormatAmount(p.Cost()))
	return err
}
