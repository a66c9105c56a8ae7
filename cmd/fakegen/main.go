package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meschbach/fakegen/internal/junk/telemetry"
	"github.com/spf13/cobra"
)

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fakegen",
		Short:         "Deterministic synthetic test data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger.quiet = a.quiet
		},
	}
	flags := root.PersistentFlags()
	flags.Int64Var(&a.seed, "seed", 1, "Seed of the run; equal seeds reproduce equal output")
	flags.StringVarP(&a.configFile, "config", "c", "", "JSON configuration file")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Suppress status output")
	flags.BoolVar(&a.progress, "progress", false, "Show a progress bar on stderr")
	flags.IntVarP(&a.count, "count", "n", 10, "Number of values to produce")

	root.AddCommand(mailCommand(a), phoneCommand(a), ssnCommand(a), uuidCommand(a), namesCommand(a), batchCommand(a))
	return root
}

func main() {
	ctx, done, err := telemetry.TraceApplication(context.Background(), telemetry.DefaultConfig("fakegen"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start telemetry: %s\n", err.Error())
		os.Exit(-1)
	}

	a := &app{out: os.Stdout, logger: &statusLogger{}}
	problem := newRoot(a).ExecuteContext(ctx)
	if err := done(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush telemetry: %s\n", err.Error())
	}
	if problem != nil {
		fmt.Fprintf(os.Stderr, "Encountered error while generating: %s\n", problem.Error())
		os.Exit(-1)
	}
}
