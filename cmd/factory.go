package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jorgeamayapabon/design-patterns/logging"
	"github.com/Jorgeamayapabon/design-patterns/notification"
)

var factoryCmd = &cobra.Command{
	Use:   "factory-method",
	Short: "Notification creators deciding which channel to build",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), "factory-method", demoFactoryMethod)
	},
}

func init() {
	rootCmd.AddCommand(factoryCmd)
}

func demoFactoryMethod(ctx context.Context, log logging.Logger) error {
	creators := []notification.Creator{
		notification.EmailCreator{Log: log},
		notification.SMSCreator{Log: log},
		notification.WhatsAppCreator{Log: log},
	}
	for _, c := range creators {
		if err := notification.Send(c, "Hello, world!"); err != nil {
			return err
		}
	}

	// The same channels can be resolved by name via the factory registry.
	for _, name := range []string{"email", "sms", "whatsapp"} {
		n, err := notification.New(name, log)
		if err != nil {
			return err
		}
		if err := n.Send("Hello from the registry!"); err != nil {
			return err
		}
	}
	return nil
}
