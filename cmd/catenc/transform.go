package main

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"

	"github.com/arloliu/catenc/pipeline"
)

type transformFlags struct {
	model string
	input string
}

func newTransformCmd() *cobra.Command {
	flags := &transformFlags{}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Append category index columns to a CSV file",
		Long: `Encode the bound columns of a CSV file with a fitted model and print the input
columns followed by one index column per binding. Null inputs stay empty.

Example:
  catenc transform --model model.json --input data.csv > encoded.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTransform(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Path to the fitted model (required)")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "-", "Path to the CSV input, - for stdin")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func loadModel(path string) (*pipeline.Transformer, error) {
	f, err := os.Open(path) //nolint:gosec // path is a user-supplied model file
	if err != nil {
		return nil, fmt.Errorf("failed to open model: %w", err)
	}
	defer f.Close()

	return pipeline.LoadModel(f)
}

func runTransform(cmd *cobra.Command, flags *transformFlags) error {
	tr, err := loadModel(flags.model)
	if err != nil {
		return err
	}

	in, err := openCSV(flags.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	reader, err := newCSVReader(in, tr.Bindings())
	if err != nil {
		return err
	}
	defer reader.Release()

	var writer *csv.Writer
	for reader.Next() {
		out, err := tr.Transform(reader.Record())
		if err != nil {
			return err
		}

		if writer == nil {
			writer = csv.NewWriter(cmd.OutOrStdout(), out.Schema(), csv.WithHeader(true))
		}

		err = writer.Write(out)
		out.Release()
		if err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}

	if writer == nil {
		// No data rows: still emit the output header.
		schema, err := tr.OutputSchema(reader.Schema())
		if err != nil {
			return err
		}

		empty := array.NewRecordBuilder(memory.DefaultAllocator, schema)
		defer empty.Release()
		rec := empty.NewRecord()
		defer rec.Release()

		writer = csv.NewWriter(cmd.OutOrStdout(), schema, csv.WithHeader(true))
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return writer.Error()
}
