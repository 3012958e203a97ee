// Package externalb is the client for External Payment System B.
package externalb

import (
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/core/report"
	"storefront/core/types"
)

// Backend is the name reported for this system
const Backend = "External Payment System B"

// System talks to External Payment System B
type System struct {
	reporter report.Reporter
}

// New creates a client that reports to r
func New(r report.Reporter) *System {
	return &System{reporter: r}
}

// SendPayment charges amount
func (s *System) SendPayment(amount decimal.Decimal) {
	s.reporter.Report(report.Entry{
		Backend: Backend,
		Action:  report.ActionPayment,
		Amount:  amount,
		Message: fmt.Sprintf("Sending payment of %s via %s.", types.FormatAmount(amount), Backend),
	})
}

// ProcessRefund returns amount
func (s *System) ProcessRefund(amount decimal.Decimal) {
	s.reporter.Report(report.Entry{
		Backend: Backend,
		Action:  report.ActionRefund,
		Amount:  amount,
		Message: fmt.Sprintf("Processing refund of %s via %s.", types.FormatAmount(amount), Backend),
	})
}
