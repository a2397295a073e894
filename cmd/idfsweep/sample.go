package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/idfsweep/sampling"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sampleFlags struct {
	experiment string
	out        string
	seed       int64
	maxRows    int
}

func newSampleCmd(a *app) *cobra.Command {
	var f sampleFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a design table from a YAML experiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSample(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.experiment, "experiment", "e", "", "experiment YAML file")
	cmd.Flags().StringVarP(&f.out, "out", "o", "-", "design table CSV (- for stdout)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "override the experiment seed")
	cmd.Flags().IntVar(&f.maxRows, "max-rows", 0, "override the experiment row ceiling")
	_ = cmd.MarkFlagRequired("experiment")
	return cmd
}

func (a *app) runSample(cmd *cobra.Command, f sampleFlags) error {
	in, err := os.Open(f.experiment)
	if err != nil {
		return fmt.Errorf("open experiment: %w", err)
	}
	defer in.Close()

	e, err := sampling.LoadExperiment(in)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		e.Seed = f.seed
	}
	if cmd.Flags().Changed("max-rows") {
		e.MaxRows = f.maxRows
	}

	rows, err := e.Rows()
	if err != nil {
		return err
	}
	a.logger.Info("generating design table",
		zap.String("strategy", string(e.Strategy)),
		zap.Int("rows", rows),
		zap.Strings("columns", e.Variables.Names()),
		zap.Int64("seed", e.Seed))

	table, err := e.Generate()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if f.out != "-" {
		out, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("create design table: %w", err)
		}
		defer out.Close()
		w = out
	}
	if err = table.WriteCSV(w); err != nil {
		return err
	}
	a.logger.Info("design table written", zap.String("out", f.out), zap.Int("rows", table.Len()))
	return nil
}
