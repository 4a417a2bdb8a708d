package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath     string
	exchangeCode   string
	priceSource    string
	metricsEnabled bool
	verbose        bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prun",
		Short: "Prosperous Universe production cost engine",
		Long: `prun prices production in Prosperous Universe: the cost of a recipe run
and the cost of goods manufactured (COGM) per unit of output, for single
recipes or for a whole empire plan where planets feed each other.

Examples:
  prun recipe find --item OVE
  prun cost --item OVE --planet UV-351a --experts manufacturing=3 --program manufacturing
  prun cogm --recipe "BMP:100xPE-25xPG=>20xOVE" --planet Katoa
  prun cogm --item LST --planet UV-351a
  prun empire --plan empire.yaml --exchange CI1
  prun experts --current 2 --target 5 --buildings 4`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs or /etc/prun)")
	rootCmd.PersistentFlags().StringVar(&exchangeCode, "exchange", "",
		"Commodity exchange for market prices (AI1, CI1, CI2, IC1, NC1, NC2)")
	rootCmd.PersistentFlags().StringVar(&priceSource, "price-source", "",
		"Where market prices come from: database or fio")
	rootCmd.PersistentFlags().BoolVar(&metricsEnabled, "metrics", false,
		"Print collected metrics to stderr after the command")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewRecipeCommand())
	rootCmd.AddCommand(NewCostCommand())
	rootCmd.AddCommand(NewCOGMCommand())
	rootCmd.AddCommand(NewEmpireCommand())
	rootCmd.AddCommand(NewExpertsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
