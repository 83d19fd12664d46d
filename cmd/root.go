package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"billdesk/internal/config"
	"billdesk/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "billdesk",
	Short: "Billdesk - console desks for clinic billing and sale tracking",
	Long: `Billdesk bundles two small interactive console desks:

  bill   MediSure Clinic patient billing (create, view and clear the last bill)
  sale   QuickMart Traders profit/loss tracker (record, view and recalculate the last sale)

Each desk keeps only the last record in memory; nothing is saved between runs.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Billdesk executed")

		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to Billdesk!")
		fmt.Fprintln(cmd.OutOrStdout(), "Use --help to see available desks.")
	},
}

// appConfig is set by Execute before any subcommand runs.
var appConfig *config.Config

func Execute(cfg *config.Config) {
	log := logger.WithComponent("cmd")
	appConfig = cfg

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// currentConfig returns the configuration passed to Execute, or the
// environment defaults when a command runs without it (tests).
func currentConfig() (*config.Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}
	return config.Load()
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
