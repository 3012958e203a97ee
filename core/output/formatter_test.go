package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"storefront/core/pricing"
	"storefront/core/types"
)

func TestRenderSteps(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSteps(&buf, pricing.NewCoffee(), pricing.Flavors()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := strings.Join([]string{
		"Coffee : 50",
		"Coffee, Milk : 60",
		"Coffee, Milk, Sugar : 65",
		"Coffee, Milk, Sugar, Chocolate : 80",
		"Coffee, Milk, Sugar, Chocolate, Vanilla : 92",
		"Coffee, Milk, Sugar, Chocolate, Vanilla, Cinnamon : 100",
	}, "\n") + "\n"

	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestRenderChainJSON(t *testing.T) {
	var buf bytes.Buffer
	chain := pricing.Compose(pricing.NewCoffee(), pricing.Vanilla)
	if err := RenderChain(&buf, FormatJSON, chain, types.CurrencyUSD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Description string `json:"description"`
		Cost        string `json:"cost"`
		Currency    string `json:"currency"`
		Layers      []struct {
			Label    string `json:"label"`
			Subtotal string `json:"subtotal"`
		} `json:"layers"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %s: %v", buf.String(), err)
	}

	if got.Description != "Coffee, Vanilla" || got.Cost != "62" || got.Currency != "USD" {
		t.Errorf("unexpected result: %+v", got)
	}
	if len(got.Layers) != 2 || got.Layers[1].Label != "Vanilla" || got.Layers[1].Subtotal != "62" {
		t.Errorf("unexpected layers: %+v", got.Layers)
	}
}

func TestRenderChainCLI(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderChain(&buf, FormatCLI, pricing.NewCoffee(), types.CurrencyUSD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Coffee : 50\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"cli", FormatCLI, false},
		{"JSON", FormatJSON, false},
		{"table", FormatTable, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRenderLayersTable(t *testing.T) {
	var buf bytes.Buffer
	chain := pricing.Compose(pricing.NewCoffee(), pricing.Milk, pricing.Cinnamon)
	if err := RenderChain(&buf, FormatTable, chain, types.CurrencyUSD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := strings.Join([]string{
		"LAYER    | ADDS | SUBTOTAL",
		"---------+------+---------",
		"Coffee   | 50   | 50      ",
		"Milk     | 10   | 60      ",
		"Cinnamon | 8    | 68      ",
		"Coffee, Milk, Cinnamon : 68",
	}, "\n") + "\n"

	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestTablePadsShortRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable("A", "B")
	table.AddRow("x")
	if err := table.Render(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "A | B\n--+--\nx |  \n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
