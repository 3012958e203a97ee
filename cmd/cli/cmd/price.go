// Package cmd - price command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/core/output"
	"storefront/core/pricing"
	"storefront/internal/config"
	"storefront/internal/logging"
)

func newPriceCmd() *cobra.Command {
	var (
		format string
		steps  bool
	)

	priceCmd := &cobra.Command{
		Use:   "price [flavor...]",
		Short: "Price a coffee with the given flavors",
		Long: `Wrap a coffee with each flavor in order and print the result.

Flavors: milk (+10), sugar (+5), chocolate (+15), vanilla (+12), cinnamon (+8).
The cost does not depend on the order; the description does.

Examples:
  storefront price
  storefront price milk sugar
  storefront price --steps milk sugar chocolate
  storefront price --format json vanilla`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if format == "" {
				format = cfg.Output.DefaultFormat
			}
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			flavors, err := pricing.ParseFlavors(args)
			if err != nil {
				return err
			}

			if steps && f == output.FormatCLI {
				return output.RenderSteps(cmd.OutOrStdout(), pricing.NewCoffee(), flavors)
			}

			chain := pricing.Compose(pricing.NewCoffee(), flavors...)
			logging.Debug("chain priced",
				zap.String("description", chain.Description()),
				zap.String("cost", chain.Cost().String()),
				zap.Int("depth", pricing.Depth(chain)),
			)
			return output.RenderChain(cmd.OutOrStdout(), f, chain, cfg.Pricing.Currency)
		},
	}

	priceCmd.Flags().StringVarP(&format, "format", "f", "", "output format (cli, json, table)")
	priceCmd.Flags().BoolVarP(&steps, "steps", "s", false, "print the price after each flavor is added")

	return priceCmd
}
