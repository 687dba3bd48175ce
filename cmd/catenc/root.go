package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/pipeline"
)

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "catenc",
		Short: "catenc - streaming categorical encoder",
		Long: `catenc learns category-to-index mappings from columns of CSV data in a single
pass, stores them as compact versioned blobs inside a JSON model, and applies them
to new data with a fixed policy for unseen categories.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(flags.logLevel, flags.logFormat)
			if err != nil {
				return err
			}
			column.SetLogger(logger)
			pipeline.SetLogger(logger)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format (console, json)")

	root.AddCommand(
		newInitCmd(),
		newFitCmd(),
		newTransformCmd(),
		newInspectCmd(),
		newInspectBlobCmd(),
		newVersionCmd(),
	)

	return root
}
