package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidipath/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		cfgPath     string
		format      string
		metricsPath string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm on the benchmark scenarios and cross-check results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := bench.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := bench.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if a.logLevel == "" {
				a.log.SetLevel(cfg.Level())
			}

			scenarios, err := cfg.Select()
			if err != nil {
				return err
			}
			opts, err := cfg.RunnerOptions()
			if err != nil {
				return err
			}
			opts = append(opts, bench.WithLogger(a.log))

			reg := prometheus.NewRegistry()
			if metricsPath != "" {
				m, err := bench.NewMetrics(reg)
				if err != nil {
					return fmt.Errorf("metrics: %w", err)
				}
				opts = append(opts, bench.WithMetrics(m))
			}

			rep, runErr := bench.NewRunner(opts...).Run(cmd.Context(), scenarios)
			if rep != nil {
				if err := rep.Write(cmd.OutOrStdout(), f); err != nil {
					return errors.Join(runErr, fmt.Errorf("write report: %w", err))
				}
			}
			if metricsPath != "" {
				if err := writeMetrics(a.log, reg, metricsPath); err != nil {
					return errors.Join(runErr, err)
				}
			}
			if runErr != nil {
				a.log.WithError(runErr).Error("bench: checks failed")
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file (env: BIDIPATH_RUNS, BIDIPATH_SEED, BIDIPATH_LOG_LEVEL)")
	cmd.Flags().StringVar(&format, "format", string(bench.FormatTable), "Output format: table|json|yaml")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "Write Prometheus metrics in text format to this file")

	return cmd
}

// writeMetrics dumps every gathered family in the text exposition format.
func writeMetrics(log logrus.FieldLogger, g prometheus.Gatherer, path string) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	log.WithField("file", path).Debug("bench: metrics written")

	return f.Close()
}
