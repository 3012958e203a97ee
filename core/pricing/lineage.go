package pricing

import "github.com/shopspring/decimal"

// Layer is one level of a priced chain
type Layer struct {
	// Label is the base description or the flavor suffix
	Label string `json:"label"`

	// Delta is what this level contributes (the base cost for the base level)
	Delta decimal.Decimal `json:"delta"`

	// Subtotal is the cost of the chain up to and including this level
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Layers returns the chain's levels in application order, base first.
// Any Priceable that is not a *Modifier is treated as the base.
func Layers(p Priceable) []Layer {
	var flavors []Flavor
	for {
		m, ok := p.(*Modifier)
		if !ok {
			break
		}
		flavors = append(flavors, m.flavor)
		p = m.inner
	}

	layers := make([]Layer, 0, len(flavors)+1)
	subtotal := p.Cost()
	layers = append(layers, Layer{Label: p.Description(), Delta: subtotal, Subtotal: subtotal})

	for i := len(flavors) - 1; i >= 0; i-- {
		f := flavors[i]
		subtotal = subtotal.Add(f.Delta())
		layers = append(layers, Layer{Label: f.Suffix(), Delta: f.Delta(), Subtotal: subtotal})
	}
	return layers
}

// Depth returns the number of modifiers wrapped around the base
func Depth(p Priceable) int {
	depth := 0
	for {
		m, ok := p.(*Modifier)
		if !ok {
			return depth
		}
		depth++
		p = m.inner
	}
}
