// Package cli implements the footprint command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the footprint CLI. It loads
// the configuration, wires logging and tracing, and registers the
// estimate, activities, assumptions and config commands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "footprint",
		Short:         "Estimate the CO2-eq emissions of everyday activities",
		Long:          rootCmdLong,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $FOOTPRINT_HOME/config.yaml or ~/.footprint/config.yaml)")
	cmd.AddCommand(NewEstimateCmd(), NewActivitiesCmd(), NewAssumptionsCmd(), newConfigCmd())

	return cmd
}

// loadConfig loads the global configuration. Commands under `config` must
// keep working on a broken file, so for them a load failure only warns.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if _, err := config.LoadGlobalConfig(path); err != nil {
		if !isConfigCommand(cmd) {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cmd.PrintErrf("Warning: %v\n", err)
		config.ResetGlobalConfig()
	}
	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.Parent() != nil {
			return true
		}
	}
	return false
}

// validatedConfig returns the global config or the problems with it.
func validatedConfig() (*config.Config, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid configuration (see `footprint config validate`)"), err)
	}
	return cfg, nil
}

const rootCmdLong = `footprint converts everyday activity quantities (kilometers travelled,
kilograms of food eaten, showers taken, ...) into estimated CO2-equivalent
emissions, grouped into Food, Transport, Consumption and Household.`

const rootCmdExample = `  # Estimate a week of commuting and food
  footprint estimate --set bus=40 --set beef=0.3 --set bread=14

  # Answer one question per activity
  footprint estimate --prompt

  # Edit all quantities in an interactive form
  footprint estimate --interactive

  # Read quantities from a file and print JSON
  footprint estimate --input week.yaml --output json

  # List activities and their emission factors
  footprint activities --category transport

  # Show the assumptions behind the factors
  footprint assumptions

  # Initialize configuration
  footprint config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigGetCmd(), NewConfigSetCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
