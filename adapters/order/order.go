// Package order reads HCL order files describing beverages to price and
// payments to run.
package order

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"storefront/core/payment"
	"storefront/core/pricing"
	"storefront/core/report"
	"storefront/internal/errors"
	"storefront/internal/logging"
)

// Order is a parsed order file
type Order struct {
	Filename  string
	Beverages []BeverageBlock `hcl:"beverage,block"`
	Payments  []PaymentBlock  `hcl:"payment,block"`
}

// BeverageBlock is a `beverage "<name>" { ... }` block
type BeverageBlock struct {
	Name      string    `hcl:"name,label"`
	Base      string    `hcl:"base,optional"`
	Price     cty.Value `hcl:"price,optional"`
	Modifiers []string  `hcl:"modifiers,optional"`
}

// PaymentBlock is a `payment "<name>" { ... }` block
type PaymentBlock struct {
	Name      string    `hcl:"name,label"`
	Processor string    `hcl:"processor"`
	Amount    cty.Value `hcl:"amount"`
	Refund    cty.Value `hcl:"refund,optional"`
}

// Beverage is a priced chain built from a beverage block
type Beverage struct {
	Name string
	Item pricing.Priceable
}

// Load reads and parses an order file
func Load(path string) (*Order, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("order file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read %s", path)
	}
	return Parse(src, path)
}

// Parse parses order file contents. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Order, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to parse %s", filename), diags)
	}

	o := &Order{Filename: filename}
	if diags := gohcl.DecodeBody(file.Body, nil, o); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to decode %s", filename), diags)
	}

	logging.Debug("order file parsed",
		zap.String("file", filename),
		zap.Int("beverages", len(o.Beverages)),
		zap.Int("payments", len(o.Payments)),
	)
	return o, nil
}

// Build resolves the beverage block into a priced chain
func (b BeverageBlock) Build() (pricing.Priceable, error) {
	flavors, err := pricing.ParseFlavors(b.Modifiers)
	if err != nil {
		return nil, withBlock(err, "beverage", b.Name)
	}

	base, err := b.base()
	if err != nil {
		return nil, withBlock(err, "beverage", b.Name)
	}
	return pricing.Compose(base, flavors...), nil
}

func (b BeverageBlock) base() (pricing.Priceable, error) {
	price, set, err := amount(b.Price, "price")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(b.Base)
	switch {
	case set:
		if name == "" {
			return nil, errors.Input("price given without a base name")
		}
		return pricing.NewBase(name, price), nil
	case name == "" || strings.EqualFold(name, "coffee"):
		return pricing.NewCoffee(), nil
	default:
		return nil, errors.NotSupported("base", name)
	}
}

// Build resolves every beverage block in file order
func (o *Order) Build() ([]Beverage, error) {
	beverages := make([]Beverage, 0, len(o.Beverages))
	for _, b := range o.Beverages {
		item, err := b.Build()
		if err != nil {
			return nil, err
		}
		beverages = append(beverages, Beverage{Name: b.Name, Item: item})
	}
	return beverages, nil
}

type plannedPayment struct {
	block  PaymentBlock
	op     payment.Operation
	amount decimal.Decimal
	refund decimal.Decimal
}

// Run performs every payment block in file order, reporting to r.
// All blocks are validated first; if any is invalid nothing is performed.
func (o *Order) Run(r report.Reporter) error {
	planned := make([]plannedPayment, 0, len(o.Payments))
	for _, p := range o.Payments {
		op, err := payment.SelectWith(p.Processor, r)
		if err != nil {
			return withBlock(err, "payment", p.Name)
		}
		amt, _, err := amount(p.Amount, "amount")
		if err != nil {
			return withBlock(err, "payment", p.Name)
		}
		refund, _, err := amount(p.Refund, "refund")
		if err != nil {
			return withBlock(err, "payment", p.Name)
		}
		planned = append(planned, plannedPayment{block: p, op: op, amount: amt, refund: refund})
	}

	for _, p := range planned {
		logging.Info("running payment",
			zap.String("block", p.block.Name),
			zap.String("processor", p.block.Processor),
		)
		p.op.ProcessPayment(p.amount)
		if !p.refund.IsZero() {
			p.op.RefundPayment(p.refund)
		}
	}
	return nil
}

// amount converts an optional HCL number attribute into a decimal.
// set is false for an omitted attribute.
func amount(v cty.Value, attr string) (d decimal.Decimal, set bool, err error) {
	if v.IsNull() {
		return decimal.Zero, false, nil
	}
	if !v.IsKnown() || !v.Type().Equals(cty.Number) {
		return decimal.Zero, false, errors.Newf(errors.TypeInput, "%s must be a number", attr)
	}

	d, err = decimal.NewFromString(v.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, false, errors.Wrapf(errors.TypeInput, err, "invalid %s", attr)
	}
	if d.IsNegative() {
		return decimal.Zero, false, errors.Newf(errors.TypeInput, "%s must not be negative", attr)
	}
	return d, true, nil
}

func withBlock(err error, kind, name string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithContext(kind, name)
	}
	return err
}
