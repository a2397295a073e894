// Command idfsweep generates design tables for building-simulation
// experiments and resolves simulation-input templates against them.
//
//	idfsweep sample --experiment exp.yaml --out design.csv
//	idfsweep render --template base.idf --design design.csv --out runs/
//
// It never invokes the simulator; the resolved documents are handed to
// whatever runs the simulations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	debug  bool
	logger *zap.Logger
	// injected marks a logger supplied by the caller (tests); it is not rebuilt.
	injected bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. A nil logger is built from flags at
// start-up.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger, injected: logger != nil}

	root := &cobra.Command{
		Use:           "idfsweep",
		Short:         "Parametric simulation-input generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.injected {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.debug {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil && !a.injected {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(newSampleCmd(a), newRenderCmd(a))
	return root
}
