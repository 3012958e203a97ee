// Package cmd - pay and refund commands
package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"storefront/core/payment"
	"storefront/core/report"
	"storefront/core/types"
	"storefront/internal/config"
)

func newPayCmd() *cobra.Command {
	return newPaymentCmd("pay", "Charge an amount through a payment processor", payment.Operation.ProcessPayment)
}

func newRefundCmd() *cobra.Command {
	return newPaymentCmd("refund", "Refund an amount through a payment processor", payment.Operation.RefundPayment)
}

func newPaymentCmd(use, short string, action func(payment.Operation, decimal.Decimal)) *cobra.Command {
	var processor string

	paymentCmd := &cobra.Command{
		Use:   use + " <amount>",
		Short: short,
		Long: short + `.

Processors: Internal, ExternalA, ExternalB. Names are case-sensitive.
Without --processor the configured default is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := types.ParseAmount(args[0])
			if err != nil {
				return err
			}

			if processor == "" {
				processor = config.Get().Payment.DefaultProcessor
			}
			op, err := payment.SelectWith(processor, report.NewWriterReporter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			action(op, amount)
			return nil
		},
	}

	paymentCmd.Flags().StringVarP(&processor, "processor", "p", "", "payment processor (Internal, ExternalA, ExternalB)")

	return paymentCmd
}
