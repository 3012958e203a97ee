// Package cmd - order command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront/adapters/order"
	"storefront/core/output"
	"storefront/core/report"
)

func newOrderCmd() *cobra.Command {
	var dryRun bool

	orderCmd := &cobra.Command{
		Use:   "order <file.hcl>",
		Short: "Price the beverages and run the payments in an order file",
		Long: `Read an HCL order file, print each beverage, then run each payment.

Example file:

  beverage "morning" {
    base      = "coffee"
    modifiers = ["milk", "sugar"]
  }

  payment "settle" {
    processor = "ExternalA"
    amount    = 200
    refund    = 100
  }`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := order.Load(args[0])
			if err != nil {
				return err
			}

			beverages, err := o.Build()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range beverages {
				fmt.Fprintf(out, "%s: %s\n", b.Name, output.Line(b.Item))
			}

			if dryRun {
				return o.Run(&report.Recorder{})
			}
			return o.Run(report.NewWriterReporter(out))
		},
	}

	orderCmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate payments without reporting them")

	return orderCmd
}
