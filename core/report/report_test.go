package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"storefront/internal/logging"
)

func TestWriterReporterPrintsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logging.Replace(zap.New(core))()

	var buf bytes.Buffer
	r := NewWriterReporter(&buf)
	r.Report(Entry{
		Backend: "internal",
		Action:  ActionPayment,
		Amount:  decimal.NewFromInt(100),
		Message: "Processing payment of 100 via internal system.",
	})

	assert.Equal(t, "Processing payment of 100 via internal system.\n", buf.String())

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "internal", fields["backend"])
	assert.Equal(t, "payment", fields["action"])
	assert.Equal(t, "100", fields["amount"])
}

func TestRecorderTotals(t *testing.T) {
	rec := &Recorder{}
	rec.Report(Entry{Action: ActionPayment, Amount: decimal.NewFromInt(200)})
	rec.Report(Entry{Action: ActionRefund, Amount: decimal.NewFromInt(100)})
	rec.Report(Entry{Action: ActionPayment, Amount: decimal.NewFromInt(300)})

	assert.Equal(t, "500", rec.Total(ActionPayment).String())
	assert.Equal(t, "100", rec.Total(ActionRefund).String())
}

func TestMultiPreservesOrder(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	m := Multi(first, second)

	m.Report(Entry{Message: "a"})
	m.Report(Entry{Message: "b"})

	for _, rec := range []*Recorder{first, second} {
		require.Len(t, rec.Entries, 2)
		assert.Equal(t, "a", rec.Entries[0].Message)
		assert.Equal(t, "b", rec.Entries[1].Message)
	}
}
