// Package pricing implements layered additive pricing.
// A base item is wrapped by zero or more modifiers; each modifier owns the
// chain it wraps and adds a fixed delta and description suffix.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Priceable is anything with a cost and a description.
// Both methods are pure: repeated calls return identical results.
type Priceable interface {
	Cost() decimal.Decimal
	Description() string
}

// Base is an unmodified item with a fixed name and cost
type Base struct {
	Name  string
	Price decimal.Decimal
}

// NewBase creates a base item
func NewBase(name string, price decimal.Decimal) Base {
	return Base{Name: name, Price: price}
}

// Cost returns the fixed price
func (b Base) Cost() decimal.Decimal {
	return b.Price
}

// Description returns the item name
func (b Base) Description() string {
	return b.Name
}

// CoffeePrice is the price of a plain coffee
var CoffeePrice = decimal.NewFromInt(50)

// Coffee is the base beverage
type Coffee struct{}

// NewCoffee returns a plain coffee
func NewCoffee() Coffee {
	return Coffee{}
}

// Cost returns 50
func (Coffee) Cost() decimal.Decimal {
	return CoffeePrice
}

// Description returns "Coffee"
func (Coffee) Description() string {
	return "Coffee"
}

// Modifier wraps exactly one Priceable and adds a flavor to it
type Modifier struct {
	inner  Priceable
	flavor Flavor
}

// Wrap takes ownership of inner and returns a new outward-facing chain
// with f applied on top.
func Wrap(inner Priceable, f Flavor) *Modifier {
	return &Modifier{inner: inner, flavor: f}
}

// Cost returns the wrapped cost plus the flavor delta
func (m *Modifier) Cost() decimal.Decimal {
	return m.inner.Cost().Add(m.flavor.Delta())
}

// Description returns the wrapped description followed by ", <suffix>"
func (m *Modifier) Description() string {
	return m.inner.Description() + ", " + m.flavor.Suffix()
}

// Flavor returns the flavor this layer adds
func (m *Modifier) Flavor() Flavor {
	return m.flavor
}

// Inner returns the wrapped chain
func (m *Modifier) Inner() Priceable {
	return m.inner
}

// WithMilk adds milk
func WithMilk(p Priceable) *Modifier { return Wrap(p, Milk) }

// WithSugar adds sugar
func WithSugar(p Priceable) *Modifier { return Wrap(p, Sugar) }

// WithChocolate adds chocolate
func WithChocolate(p Priceable) *Modifier { return Wrap(p, Chocolate) }

// WithVanilla adds vanilla
func WithVanilla(p Priceable) *Modifier { return Wrap(p, Vanilla) }

// WithCinnamon adds cinnamon
func WithCinnamon(p Priceable) *Modifier { return Wrap(p, Cinnamon) }

// Compose applies flavors to base in order. With no flavors it returns base itself.
func Compose(base Priceable, flavors ...Flavor) Priceable {
	p := base
	for _, f := range flavors {
		p = Wrap(p, f)
	}
	return p
}
