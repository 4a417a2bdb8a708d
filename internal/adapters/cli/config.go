package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prun-cogm/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect the effective configuration.

Configuration is loaded from multiple sources with priority:
1. Global flags (--exchange, --price-source, --metrics)
2. Environment variables (PRUN_* prefix, DATABASE_URL)
3. Config file (config.yaml)
4. Default values

Examples:
  prun config show
  prun config show --exchange CI1`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}
			if err := applyFlagOverrides(cfg); err != nil {
				return err
			}

			shown := *cfg
			shown.Database.URL = maskPassword(cfg.Database.URL)
			if shown.Database.Password != "" {
				shown.Database.Password = "xxxxx"
			}

			fmt.Println("prun configuration")
			fmt.Println("==================")
			fmt.Println(prettyPrint(shown))
			return nil
		},
	}

	return cmd
}

// maskPassword masks the password of a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
