package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arloliu/catenc/blob"
	"github.com/arloliu/catenc/pipeline"
)

// maxListed is the number of categories printed per column in text output.
const maxListed = 20

type columnReport struct {
	Name   string    `json:"name"`
	Source string    `json:"source,omitempty"`
	Info   blob.Info `json:"blob"`
}

func newInspectCmd() *cobra.Command {
	var (
		model  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe the encoders of a fitted model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(model) //nolint:gosec // path is a user-supplied model file
			if err != nil {
				return fmt.Errorf("failed to open model: %w", err)
			}
			defer f.Close()

			m, err := pipeline.ReadManifest(f)
			if err != nil {
				return err
			}

			reports := make([]columnReport, 0, len(m.Columns))
			for _, mc := range m.Columns {
				info, err := blob.Inspect(mc.Blob)
				if err != nil {
					return fmt.Errorf("column %q: %w", mc.Name, err)
				}
				reports = append(reports, columnReport{Name: mc.Name, Source: mc.Source, Info: info})
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}

			for _, r := range reports {
				src := r.Source
				if src == "" {
					src = r.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "column %s (source %s)\n", r.Name, src)
				writeInfo(cmd.OutOrStdout(), r.Info)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Path to the fitted model (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func newInspectBlobCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect-blob FILE",
		Short: "Describe a raw encoder blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read blob: %w", err)
			}

			info, err := blob.Inspect(data)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			writeInfo(cmd.OutOrStdout(), info)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeInfo(w io.Writer, info blob.Info) {
	order := "little"
	if info.BigEndian {
		order = "big"
	}

	fmt.Fprintf(w, "  version:      %d\n", info.Version)
	fmt.Fprintf(w, "  type:         %s\n", info.SourceType)
	fmt.Fprintf(w, "  unseen:       %s\n", info.UnseenPolicy)
	fmt.Fprintf(w, "  compression:  %s\n", info.Compression)
	fmt.Fprintf(w, "  byte order:   %s\n", order)
	fmt.Fprintf(w, "  size:         %d stored, %d payload\n", info.StoredSize, info.PayloadSize)
	fmt.Fprintf(w, "  checksum:     %016x\n", info.Checksum)
	fmt.Fprintf(w, "  categories:   %d\n", info.Count)

	listed := info.Categories
	if len(listed) > maxListed {
		listed = listed[:maxListed]
	}
	for i, c := range listed {
		fmt.Fprintf(w, "    %4d  %q\n", i, c)
	}
	if rest := len(info.Categories) - len(listed); rest > 0 {
		fmt.Fprintf(w, "    ... %d more\n", rest)
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
}
