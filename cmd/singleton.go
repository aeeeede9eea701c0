package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jorgeamayapabon/design-patterns/logging"
	"github.com/Jorgeamayapabon/design-patterns/singleton"
)

var singletonCmd = &cobra.Command{
	Use:   "singleton",
	Short: "Process-wide database configuration read from the environment once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), "singleton", demoSingleton)
	},
}

func init() {
	rootCmd.AddCommand(singletonCmd)
}

func demoSingleton(ctx context.Context, log logging.Logger) error {
	first := singleton.Instance()
	second := singleton.Instance()
	third := singleton.Instance()

	log.Info("all callers share one instance: %t", first == second && second == third)
	log.Info("configuration: %s", first)
	log.Info("connection string (password hidden): %s", first.ConnString(true))
	log.Info("connection parameters: %v", redactPassword(first.ConnMap()))

	// Several "modules" asking for configuration independently still end up
	// on the same instance.
	for _, module := range []string{"connection", "migration", "backup"} {
		cfg := singleton.Instance()
		log.Info("[%s module] using database %s (same instance: %t)", module, cfg.Database, cfg == first)
	}
	return nil
}

func redactPassword(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k == "password" {
			out[k] = "****"
			continue
		}
		out[k] = v
	}
	return out
}
