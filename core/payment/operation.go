// Package payment provides a uniform payment interface over the internal
// system and the external payment systems.
package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/core/report"
	"storefront/core/types"
)

// Operation is implemented by every payment backend.
// Calls are independent: no session, no ordering, no balance.
type Operation interface {
	ProcessPayment(amount decimal.Decimal)
	RefundPayment(amount decimal.Decimal)
}

// InternalBackend is the name reported by the internal system
const InternalBackend = "internal system"

// Internal performs payments itself
type Internal struct {
	reporter report.Reporter
}

// NewInternal creates the internal processor
func NewInternal(r report.Reporter) *Internal {
	return &Internal{reporter: r}
}

// ProcessPayment implements Operation
func (p *Internal) ProcessPayment(amount decimal.Decimal) {
	p.reporter.Report(report.Entry{
		Backend: InternalBackend,
		Action:  report.ActionPayment,
		Amount:  amount,
		Message: fmt.Sprintf("Processing payment of %s via %s.", types.FormatAmount(amount), InternalBackend),
	})
}

// RefundPayment implements Operation
func (p *Internal) RefundPayment(amount decimal.Decimal) {
	p.reporter.Report(report.Entry{
		Backend: InternalBackend,
		Action:  report.ActionRefund,
		Amount:  amount,
		Message: fmt.Sprintf("Refunding payment of %s via %s.", types.FormatAmount(amount), InternalBackend),
	})
}
