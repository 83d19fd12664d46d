package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"billdesk/internal/billing"
	"billdesk/internal/console"
	"billdesk/internal/logger"
)

var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Run the clinic billing desk",
	Long: `Interactive patient billing form.

Menu:
  1. Create New Bill (Enter Patient Details)
  2. View Last Bill
  3. Clear Last Bill
  4. Exit

Insured patients receive a 10% discount on the gross amount
(consultation fee + lab charges + medicine charges).

Optional environment variables:
  CLINIC_NAME - Title shown above the menu (default "MediSure Clinic Billing")`,
	Example: `  # Start the billing desk
  billdesk bill

  # Feed answers from a file
  billdesk bill < answers.txt`,
	Args: cobra.NoArgs,
	RunE: runBill,
}

func init() {
	rootCmd.AddCommand(billCmd)
}

func runBill(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("bill")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	log.Info().Str("clinic", cfg.ClinicName).Msg("Starting billing desk")

	session := console.NewBillSession(cfg.ClinicName, billing.NewService(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err := session.Run(cmd.Context()); err != nil {
		return fmt.Errorf("billing desk stopped: %w", err)
	}
	return nil
}
