package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/errors"
)

// Flavor is one of the fixed modifiers a beverage can be wrapped with
type Flavor int

const (
	Milk Flavor = iota + 1
	Sugar
	Chocolate
	Vanilla
	Cinnamon
)

type flavorSpec struct {
	suffix string
	delta  decimal.Decimal
}

var flavorSpecs = map[Flavor]flavorSpec{
	Milk:      {suffix: "Milk", delta: decimal.NewFromInt(10)},
	Sugar:     {suffix: "Sugar", delta: decimal.NewFromInt(5)},
	Chocolate: {suffix: "Chocolate", delta: decimal.NewFromInt(15)},
	Vanilla:   {suffix: "Vanilla", delta: decimal.NewFromInt(12)},
	Cinnamon:  {suffix: "Cinnamon", delta: decimal.NewFromInt(8)},
}

// Flavors returns every flavor in declaration order
func Flavors() []Flavor {
	return []Flavor{Milk, Sugar, Chocolate, Vanilla, Cinnamon}
}

// Delta is the amount this flavor adds to the cost.
// An invalid Flavor adds nothing.
func (f Flavor) Delta() decimal.Decimal {
	return flavorSpecs[f].delta
}

// Suffix is the text appended to the description
func (f Flavor) Suffix() string {
	return flavorSpecs[f].suffix
}

// String returns the suffix, or "Flavor(n)" for invalid values
func (f Flavor) String() string {
	if spec, ok := flavorSpecs[f]; ok {
		return spec.suffix
	}
	return "Flavor(" + strconv.Itoa(int(f)) + ")"
}

// IsValid checks if f is a known flavor
func (f Flavor) IsValid() bool {
	_, ok := flavorSpecs[f]
	return ok
}

// ParseFlavor looks a flavor up by name, ignoring case
func ParseFlavor(name string) (Flavor, error) {
	for _, f := range Flavors() {
		if strings.EqualFold(strings.TrimSpace(name), f.Suffix()) {
			return f, nil
		}
	}
	return 0, errors.NotSupported("flavor", name)
}

// ParseFlavors parses a list of names, stopping at the first unknown one
func ParseFlavors(names []string) ([]Flavor, error) {
	flavors := make([]Flavor, 0, len(names))
	for _, name := range names {
		f, err := ParseFlavor(name)
		if err != nil {
			return nil, err
		}
		flavors = append(flavors, f)
	}
	return flavors, nil
}
