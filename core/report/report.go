// Package report carries the console lines produced by payment backends.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/logging"
)

// Action is what a backend did with an amount
type Action string

const (
	ActionPayment Action = "payment"
	ActionRefund  Action = "refund"
)

// Entry is a single reported backend action
type Entry struct {
	// Backend names the system that performed the action
	Backend string `json:"backend"`

	// Action is payment or refund
	Action Action `json:"action"`

	// Amount is passed through unchanged from the caller
	Amount decimal.Decimal `json:"amount"`

	// Message is the human-readable line
	Message string `json:"message"`
}

// Reporter receives backend actions
type Reporter interface {
	Report(e Entry)
}

// WriterReporter prints each entry's message as one line and mirrors it to the logger
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter creates a reporter writing to w
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Stdout returns a reporter printing to standard output
func Stdout() *WriterReporter {
	return NewWriterReporter(os.Stdout)
}

// Report implements Reporter
func (r *WriterReporter) Report(e Entry) {
	fmt.Fprintln(r.w, e.Message)
	logging.Named("report").Debug("backend action",
		zap.String("backend", e.Backend),
		zap.String("action", string(e.Action)),
		zap.String("amount", e.Amount.String()),
	)
}

// Recorder keeps entries in memory
type Recorder struct {
	Entries []Entry
}

// Report implements Reporter
func (r *Recorder) Report(e Entry) {
	r.Entries = append(r.Entries, e)
}

// Total sums the amounts recorded for one action
func (r *Recorder) Total(action Action) decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.Entries {
		if e.Action == action {
			total = total.Add(e.Amount)
		}
	}
	return total
}

type multi []Reporter

func (m multi) Report(e Entry) {
	for _, r := range m {
		r.Report(e)
	}
}

// Multi fans each entry out to every reporter in order
func Multi(reporters ...Reporter) Reporter {
	return multi(reporters)
}
