// Package types - Money types shared by pricing and payment
package types

import (
	"github.com/shopspring/decimal"

	"storefront/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyRUB Currency = "RUB"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// FormatAmount renders an amount the way the console reports do:
// no trailing zeros, so 100.0 prints as "100" and 12.50 as "12.5".
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}

// ParseAmount parses a user-supplied amount. Negative amounts are input errors.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeInput, err, "invalid amount %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Newf(errors.TypeInput, "amount must not be negative: %s", s)
	}
	return d, nil
}
