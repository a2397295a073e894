package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/katalvlaran/idfsweep/idf"
	"github.com/katalvlaran/idfsweep/infiltration"
	"github.com/katalvlaran/idfsweep/sampling"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type renderFlags struct {
	template     string
	design       string
	out          string
	prefix       string
	workers      int
	openingWidth float64
	leakageArea  bool
	zones        int
}

func newRenderCmd(a *app) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resolve a template once per design-table row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "template document with @token@ placeholders")
	cmd.Flags().StringVarP(&f.design, "design", "d", "", "design table CSV")
	cmd.Flags().StringVarP(&f.out, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&f.prefix, "prefix", "run", "output file name prefix")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", runtime.NumCPU(), "concurrent renders")
	cmd.Flags().Float64Var(&f.openingWidth, "opening-width", 0.15, "casement vent strip width in metres")
	cmd.Flags().BoolVar(&f.leakageArea, "leakage-area", false, "also resolve ELA_* tokens")
	cmd.Flags().IntVar(&f.zones, "zones", infiltration.DefaultZones, "zones sharing the infiltration flow")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("design")
	return cmd
}

func (a *app) runRender(ctx context.Context, f renderFlags) error {
	if f.workers < 1 {
		return fmt.Errorf("render: workers=%d must be positive", f.workers)
	}
	if f.zones < 1 {
		return fmt.Errorf("render: zones=%d must be positive", f.zones)
	}
	if f.openingWidth < 0 {
		return fmt.Errorf("render: opening-width=%g must be non-negative", f.openingWidth)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := os.ReadFile(f.template)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	template := string(raw)

	in, err := os.Open(f.design)
	if err != nil {
		return fmt.Errorf("open design table: %w", err)
	}
	table, err := sampling.ReadCSV(in)
	in.Close()
	if err != nil {
		return err
	}
	if err = os.MkdirAll(f.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	inf := infiltration.DefaultOptions()
	inf.Zones = f.zones
	opts := []idf.Option{idf.WithOpeningWidth(f.openingWidth), idf.WithInfiltration(inf)}
	if f.leakageArea {
		opts = append(opts, idf.WithLeakageArea())
	}

	a.logger.Info("rendering design table",
		zap.String("template", f.template),
		zap.Int("rows", table.Len()),
		zap.Int("workers", f.workers))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(f.workers)
	for i := 0; i < table.Len(); i++ {
		i := i // per-iteration copy (go directive lowered to 1.21 for the local toolchain)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			params := idf.ParametersFrom(table.Columns, table.Row(i))
			doc, err := idf.Resolve(template, params, opts...)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			if left := idf.Unresolved(doc); len(left) > 0 {
				a.logger.Warn("unresolved placeholders", zap.Int("row", i), zap.Strings("tokens", left))
			}
			name := filepath.Join(f.out, fmt.Sprintf("%s_%04d.idf", f.prefix, i))
			if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			a.logger.Debug("rendered", zap.Int("row", i), zap.String("file", name))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	a.logger.Info("render complete", zap.Int("files", table.Len()), zap.String("out", f.out))
	return nil
}
