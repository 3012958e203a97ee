// Package cmd - demo command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"storefront/core/output"
	"storefront/core/payment"
	"storefront/core/pricing"
	"storefront/core/report"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Price a fully loaded coffee step by step and run one payment and refund per processor",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := output.RenderSteps(out, pricing.NewCoffee(), pricing.Flavors()); err != nil {
				return err
			}
			fmt.Fprintln(out)

			reporter := report.NewWriterReporter(out)
			runs := []struct {
				kind    payment.Kind
				payment int64
				refund  int64
			}{
				{payment.KindInternal, 100, 50},
				{payment.KindExternalA, 200, 100},
				{payment.KindExternalB, 300, 150},
			}
			for _, run := range runs {
				op, err := payment.SelectWith(run.kind.String(), reporter)
				if err != nil {
					return err
				}
				op.ProcessPayment(decimal.NewFromInt(run.payment))
				op.RefundPayment(decimal.NewFromInt(run.refund))
			}
			return nil
		},
	}
}
