package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jorgeamayapabon/design-patterns/builder"
	"github.com/Jorgeamayapabon/design-patterns/logging"
)

var builderCmd = &cobra.Command{
	Use:   "builder",
	Short: "Step-by-step HTTP request construction with director recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context(), "builder", demoBuilder)
	},
}

func init() {
	rootCmd.AddCommand(builderCmd)
}

func demoBuilder(ctx context.Context, log logging.Logger) error {
	b := builder.NewRequestBuilder()
	director := builder.NewDirector(b)

	director.BuildGet()
	log.Info("%s", b.Request())

	director.BuildPost()
	log.Info("%s", b.Request())

	director.BuildPut()
	log.Info("%s", b.Request())

	// Using the builder directly, without the director.
	b.Reset()
	b.SetURL("https://example.com")
	b.SetMethod(http.MethodGet)
	b.SetTimeout(10 * time.Second)
	b.AddHeader("Authorization", "Bearer 1234567890")
	log.Info("%s", b.Request())

	return nil
}
