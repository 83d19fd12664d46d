package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"billdesk/internal/console"
	"billdesk/internal/logger"
	"billdesk/internal/sales"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Run the sale profit/loss tracker",
	Long: `Interactive sale transaction tracker.

Menu:
  1. Create New Transaction (Enter Purchase & Selling Details)
  2. View Last Transaction
  3. Calculate Profit/Loss (Recompute & Print)
  4. Exit

Status is PROFIT, LOSS or BREAK-EVEN. The margin is the profit or loss
amount as a percentage of the purchase amount.

Optional environment variables:
  STORE_NAME - Title shown above the menu (default "QuickMart Traders")`,
	Example: `  # Start the sale tracker
  billdesk sale`,
	Args: cobra.NoArgs,
	RunE: runSale,
}

func init() {
	rootCmd.AddCommand(saleCmd)
}

func runSale(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("sale")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	log.Info().Str("store", cfg.StoreName).Msg("Starting sale tracker")

	session := console.NewSaleSession(cfg.StoreName, sales.NewService(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err := session.Run(cmd.Context()); err != nil {
		return fmt.Errorf("sale tracker stopped: %w", err)
	}
	return nil
}
