package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jorgeamayapabon/design-patterns/logging"
	"github.com/Jorgeamayapabon/design-patterns/payment"
)

var adapterCmd = &cobra.Command{
	Use:   "adapter",
	Short: "Checkout flow adapting a foreign payment SDK to the local interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), "adapter", demoAdapter)
	},
}

func init() {
	rootCmd.AddCommand(adapterCmd)
}

func demoAdapter(ctx context.Context, log logging.Logger) error {
	sdk, err := payment.NewExternalSDK()
	if err != nil {
		return err
	}
	defer sdk.Close()

	// Checkout through the adapter: float amounts are translated to the
	// SDK's integer cents.
	service := payment.NewCheckoutService(payment.NewSDKAdapter(sdk), log)
	if err := service.Checkout(ctx, 100.50); err != nil {
		return err
	}

	// Checkout against a processor that already speaks the local interface.
	direct := payment.NewCheckoutService(payment.DirectProcessor{Log: log}, log)
	if err := direct.Checkout(ctx, 200.95); err != nil {
		return err
	}

	ledger, err := sdk.Transactions(ctx)
	if err != nil {
		return err
	}
	for _, tx := range ledger {
		log.Info("ledger: %s %d %s %s", tx.ID, tx.TotalCents, tx.Currency, tx.Status)
	}
	return nil
}
