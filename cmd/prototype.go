package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jorgeamayapabon/design-patterns/logging"
	"github.com/Jorgeamayapabon/design-patterns/prototype"
)

var manifestPath string

var prototypeCmd = &cobra.Command{
	Use:   "prototype",
	Short: "Template registry handing out deep clones of job configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), "prototype", demoPrototype)
	},
}

func init() {
	prototypeCmd.Flags().StringVar(&manifestPath, "manifest", "", "load templates from a YAML manifest instead of the built-ins")
	rootCmd.AddCommand(prototypeCmd)
}

func demoPrototype(ctx context.Context, log logging.Logger) error {
	registry := prototype.NewRegistry()

	if manifestPath != "" {
		if err := registry.LoadManifest(manifestPath); err != nil {
			return err
		}
		log.Info("loaded %d templates from %s", registry.Count(), manifestPath)
	} else {
		registry.Register("fast", prototype.NewJobConfig(
			"fast-job", 1, 5*time.Second, map[string]any{"priority": "high"}))
		registry.Register("safe", prototype.NewJobConfig(
			"safe-job", 5, 30*time.Second, map[string]any{"priority": "low"}))
	}

	job1, err := registry.Get("fast")
	if err != nil {
		return err
	}
	job2, err := registry.Get("fast")
	if err != nil {
		return err
	}
	job3, err := registry.Get("safe")
	if err != nil {
		return err
	}

	// Mutating one clone leaves the canonical template and every other
	// clone untouched.
	job2.Metadata["priority"] = "critical"

	log.Info("%s", job1)
	log.Info("%s", job2)
	log.Info("%s", job3)
	return nil
}
