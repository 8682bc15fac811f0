// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vim-daily/internal/extract"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons with their titles, grouped by chapter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return listLessons(os.Stdout, openExtractor(cfg.Extractor))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listLessons(w io.Writer, ex *extract.Extractor) error {
	chapters := ex.Chapters()
	total := 0
	for _, ch := range chapters {
		total += len(ch.Lessons)
	}
	fmt.Fprintf(w, "Found %d lessons in the tutorial:\n", total)

	for _, ch := range chapters {
		fmt.Fprintf(w, "\nChapter %d:\n", ch.Number)
		for _, l := range ch.Lessons {
			if l.Title == "" {
				fmt.Fprintf(w, "  - Lesson %s\n", l.ID)
				continue
			}
			fmt.Fprintf(w, "  - Lesson %s: %s\n", l.ID, l.Title)
		}
	}
	return nil
}
