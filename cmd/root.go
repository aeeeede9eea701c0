// Package cmd wires the pattern demos into a cobra CLI. Each subcommand
// walks through one pattern the way the original catalogue scripts did.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/Jorgeamayapabon/design-patterns/logging"
)

var rootCmd = &cobra.Command{
	Use:   "design-patterns",
	Short: "Walkthroughs of classic design patterns",
	Long: `design-patterns runs small, self-contained demonstrations of classic
object-oriented design patterns: prototype, factory method, abstract
factory, builder, singleton and adapter.

Each subcommand prints a walkthrough of one pattern. Run "all" to see
every pattern in sequence.`,
	SilenceUsage: true,
}

var (
	traceFlag      bool
	tracerProvider *sdktrace.TracerProvider
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "emit OpenTelemetry spans for each demo to stdout")
	rootCmd.PersistentPreRunE = setupTracing
	rootCmd.PersistentPostRunE = shutdownTracing
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupTracing(cmd *cobra.Command, args []string) error {
	if !traceFlag {
		return nil
	}
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("setting up trace exporter: %w", err)
	}
	tracerProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tracerProvider)
	return nil
}

func shutdownTracing(cmd *cobra.Command, args []string) error {
	if tracerProvider == nil {
		return nil
	}
	return tracerProvider.Shutdown(cmd.Context())
}

func demoTracer() trace.Tracer {
	return otel.Tracer("github.com/Jorgeamayapabon/design-patterns/cmd")
}

// runDemo prints a banner and runs one pattern walkthrough under a span.
func runDemo(ctx context.Context, name string, fn func(ctx context.Context, log logging.Logger) error) error {
	ctx, span := demoTracer().Start(ctx, "demo."+name)
	defer span.End()

	log := logging.NewConsole()
	log.Info("=== %s ===", name)
	if err := fn(ctx, log); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%s demo: %w", name, err)
	}
	return nil
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every pattern walkthrough in sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		demos := []struct {
			name string
			fn   func(ctx context.Context, log logging.Logger) error
		}{
			{"prototype", demoPrototype},
			{"factory-method", demoFactoryMethod},
			{"abstract-factory", demoAbstractFactory},
			{"builder", demoBuilder},
			{"singleton", demoSingleton},
			{"adapter", demoAdapter},
		}
		for _, d := range demos {
			if err := runDemo(ctx, d.name, d.fn); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
