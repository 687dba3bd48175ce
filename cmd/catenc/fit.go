package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arloliu/catenc/pipeline"
)

type fitFlags struct {
	config     string
	input      string
	output     string
	metricsOut string
}

func newFitCmd() *cobra.Command {
	flags := &fitFlags{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit encoders from a CSV file and save the model",
		Long: `Fit one encoder per configured column from a CSV file with a header row and
write the fitted model as JSON.

Example:
  catenc fit --config catenc.yaml --input train.csv --output model.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFit(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Path to the YAML config (required)")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "-", "Path to the CSV input, - for stdin")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Path to the model output (required)")
	cmd.Flags().StringVar(&flags.metricsOut, "metrics-out", "", "Write fit metrics in Prometheus text format to this file")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runFit(cmd *cobra.Command, flags *fitFlags) error {
	cfg, err := pipeline.LoadConfig(flags.config)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	est, err := pipeline.NewEstimator(cfg, pipeline.WithRegisterer(registry))
	if err != nil {
		return err
	}

	in, err := openCSV(flags.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	tbl, err := readTable(in, est.Bindings())
	if err != nil {
		return err
	}
	defer tbl.Release()

	tr, err := est.Fit(cmd.Context(), tbl)
	if err != nil {
		return err
	}

	out, err := os.Create(flags.output)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}

	if err := tr.SaveModel(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close model file: %w", err)
	}

	if flags.metricsOut != "" {
		if err := prometheus.WriteToTextfile(flags.metricsOut, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fitted %d columns from %d rows into %s\n",
		len(tr.Bindings()), tbl.NumRows(), flags.output)

	return nil
}
