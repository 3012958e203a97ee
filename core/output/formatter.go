// Package output renders priced chains for the console and for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/core/pricing"
	"storefront/core/types"
	"storefront/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is the "<description> : <cost>" line
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatTable is a per-layer breakdown table
	FormatTable Format = "table"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatCLI, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", errors.NotSupported("output format", name)
	}
}

// ChainResult is the JSON shape of a priced chain
type ChainResult struct {
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Currency    types.Currency  `json:"currency"`
	Layers      []pricing.Layer `json:"layers"`
}

// NewChainResult captures p's cost, description and lineage
func NewChainResult(p pricing.Priceable, currency types.Currency) ChainResult {
	return ChainResult{
		Description: p.Description(),
		Cost:        p.Cost(),
		Currency:    currency,
		Layers:      pricing.Layers(p),
	}
}

// Line formats p the way the console demonstration prints it
func Line(p pricing.Priceable) string {
	return fmt.Sprintf("%s : %s", p.Description(), types.FormatAmount(p.Cost()))
}

// RenderChain writes p in the given format
func RenderChain(w io.Writer, format Format, p pricing.Priceable, currency types.Currency) error {
	switch format {
	case FormatCLI:
		_, err := fmt.Fprintln(w, Line(p))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewChainResult(p, currency))
	case FormatTable:
		return RenderLayers(w, p)
	default:
		return errors.NotSupported("output format", string(format))
	}
}

// RenderSteps prints one line for base and one more after each wrap
func RenderSteps(w io.Writer, base pricing.Priceable, flavors []pricing.Flavor) error {
	p := base
	if _, err := fmt.Fprintln(w, Line(p)); err != nil {
		return err
	}
	for _, f := range flavors {
		p = pricing.Wrap(p, f)
		if _, err := fmt.Fprintln(w, Line(p)); err != nil {
			return err
		}
	}
	return nil
}
