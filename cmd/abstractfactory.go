package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jorgeamayapabon/design-patterns/logging"
	"github.com/Jorgeamayapabon/design-patterns/provider"
)

var abstractFactoryCmd = &cobra.Command{
	Use:   "abstract-factory",
	Short: "Provider factories producing matched email and SMS sender families",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), "abstract-factory", demoAbstractFactory)
	},
}

func init() {
	rootCmd.AddCommand(abstractFactoryCmd)
}

func demoAbstractFactory(ctx context.Context, log logging.Logger) error {
	factories := []provider.Factory{
		provider.TwilioFactory{Log: log},
		provider.AWSFactory{Log: log},
	}
	for _, f := range factories {
		svc := provider.NewNotificationService(f)
		if err := svc.Notify("test@test.com", "1234567890", "Hello, world!"); err != nil {
			return err
		}
	}
	return nil
}
