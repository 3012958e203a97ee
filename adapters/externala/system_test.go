package externala

import (
	"testing"

	"github.com/shopspring/decimal"

	"storefront/core/report"
)

func TestSystemMessages(t *testing.T) {
	rec := &report.Recorder{}
	s := New(rec)

	s.MakePayment(decimal.NewFromInt(200))
	s.MakeRefund(decimal.NewFromInt(100))

	expected := []struct {
		action  report.Action
		amount  int64
		message string
	}{
		{report.ActionPayment, 200, "Making payment of 200 via External Payment System A."},
		{report.ActionRefund, 100, "Making refund of 100 via External Payment System A."},
	}

	if len(rec.Entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(rec.Entries))
	}
	for i, want := range expected {
		got := rec.Entries[i]
		if got.Action != want.action || !got.Amount.Equal(decimal.NewFromInt(want.amount)) || got.Message != want.message {
			t.Errorf("entry %d: expected %+v, got %+v", i, want, got)
		}
		if got.Backend != Backend {
			t.Errorf("entry %d: expected backend %q, got %q", i, Backend, got.Backend)
		}
	}
}
