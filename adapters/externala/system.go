// Package externala is the client for External Payment System A.
// Its API predates the storefront payment interface and is reached
// through payment.AdapterA.
package externala

import (
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/core/report"
	"storefront/core/types"
)

// Backend is the name reported for this system
const Backend = "External Payment System A"

// System talks to External Payment System A
type System struct {
	reporter report.Reporter
}

// New creates a client that reports to r
func New(r report.Reporter) *System {
	return &System{reporter: r}
}

// MakePayment charges amount
func (s *System) MakePayment(amount decimal.Decimal) {
	s.reporter.Report(report.Entry{
		Backend: Backend,
		Action:  report.ActionPayment,
		Amount:  amount,
		Message: fmt.Sprintf("Making payment of %s via %s.", types.FormatAmount(amount), Backend),
	})
}

// MakeRefund returns amount
func (s *System) MakeRefund(amount decimal.Decimal) {
	s.reporter.Report(report.Entry{
		Backend: Backend,
		Action:  report.ActionRefund,
		Amount:  amount,
		Message: fmt.Sprintf("Making refund of %s via %s.", types.FormatAmount(amount), Backend),
	})
}
