package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arloliu/catenc/pipeline"
	"github.com/arloliu/catenc/section"
)

var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "catenc %s\n", version)
			fmt.Fprintf(w, "Blob format version: %d\n", section.CurrentFormatVersion)
			fmt.Fprintf(w, "Model version: %d\n", pipeline.ModelVersion)
			fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
