package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/catenc/pipeline"
)

func newInitCmd() *cobra.Command {
	var (
		output  string
		columns []string
		cfg     = pipeline.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file for the given columns",
		Long: `Write a YAML config with one binding per --column flag. A column is given as
name:type or name=source:type.

Example:
  catenc init --column color:string --column size_idx=size:int32 --output catenc.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, spec := range columns {
				cc, err := parseColumnFlag(spec)
				if err != nil {
					return err
				}
				cfg.Columns = append(cfg.Columns, cc)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return pipeline.SaveConfig(output, cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "catenc.yaml", "Path of the config to write")
	cmd.Flags().StringArrayVar(&columns, "column", nil, "Column binding name[=source]:type (repeatable)")
	cmd.Flags().StringVar(&cfg.UnseenPolicy, "unseen-policy", cfg.UnseenPolicy, "Unseen policy (reserved, sentinel, zero)")
	cmd.Flags().StringVar(&cfg.Compression, "compression", cfg.Compression, "Blob compression (none, zstd, s2, lz4)")
	cmd.Flags().StringVar(&cfg.ByteOrder, "byte-order", cfg.ByteOrder, "Blob byte order (little, big)")
	cmd.Flags().IntVar(&cfg.MaxCategories, "max-categories", 0, "Maximum categories per column, 0 for no cap")
	cmd.Flags().IntVar(&cfg.MinCategories, "min-categories", 0, "Minimum categories per column")
	cmd.Flags().IntVar(&cfg.Parallelism, "parallelism", 0, "Columns fitted at once, 0 for all")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

// parseColumnFlag parses name:type or name=source:type.
func parseColumnFlag(spec string) (pipeline.ColumnConfig, error) {
	binding, typ, ok := strings.Cut(spec, ":")
	if !ok || typ == "" {
		return pipeline.ColumnConfig{}, fmt.Errorf("invalid column %q, want name[=source]:type", spec)
	}

	name, source, _ := strings.Cut(binding, "=")

	return pipeline.ColumnConfig{Name: name, Source: source, Type: typ}, nil
}
