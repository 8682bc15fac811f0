// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vim-daily/internal/extract"
	"github.com/pdiddy/vim-daily/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress through the current round",
	Long: `Progress prints the current round, how many lessons have been seen in it,
which remain, and which rounds have been archived. Use --format yaml or json
for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	ex, tr, err := open()
	if err != nil {
		return err
	}
	return showProgress(os.Stdout, ex, tr, format)
}

func showProgress(w io.Writer, ex *extract.Extractor, tr *progress.Tracker, format string) error {
	report, err := tr.Report(ex.AvailableLessons(), ex.Order().Compare())
	if err != nil {
		return err
	}

	switch format {
	case "text", "":
		return report.WriteText(w)
	case "yaml":
		return report.WriteYAML(w)
	case "json":
		return report.WriteJSON(w)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}
