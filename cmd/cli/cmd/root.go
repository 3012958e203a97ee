// Package cmd provides the CLI commands for storefront.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/config"
	"storefront/internal/logging"
)

// Version is reported by the version command
const Version = "0.1.0"

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Price beverages and run payments",
		Long: `storefront prices layered beverages and dispatches payments to the
internal payment system or to external payment systems.

Examples:
  storefront price milk sugar
  storefront price --steps milk sugar chocolate vanilla cinnamon
  storefront pay --processor ExternalA 200
  storefront order ./order.hcl
  storefront demo`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.storefront.json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newPriceCmd())
	rootCmd.AddCommand(newPayCmd())
	rootCmd.AddCommand(newRefundCmd())
	rootCmd.AddCommand(newOrderCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

func initConfig(opts *rootOptions) error {
	path := opts.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.Set(cfg)

	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	return logging.Initialize(cfg.Logging)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "storefront version %s\n", Version)
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(config.Get(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})

	return configCmd
}
