// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vim-daily/internal/extract"
	"github.com/pdiddy/vim-daily/internal/progress"
	"github.com/pdiddy/vim-daily/pkg/types"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <lesson>",
	Short: "Write a specific lesson without affecting progress",
	Long: `Practice renders one lesson (e.g. 1.2) to practice_lesson_1_2.txt in the
lessons directory. The history and round are not touched; use cleanup to
remove practice files.`,
	Args: cobra.ExactArgs(1),
	RunE: runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}

func runPractice(cmd *cobra.Command, args []string) error {
	ex, tr, err := open()
	if err != nil {
		return err
	}
	return deliverPractice(os.Stdout, ex, tr, types.LessonID(args[0]))
}

func deliverPractice(w io.Writer, ex *extract.Extractor, tr *progress.Tracker, id types.LessonID) error {
	if !ex.Has(id) {
		fmt.Fprintf(w, "Lesson %s not found. Use list to see available lessons.\n", id)
		return nil
	}

	content, err := ex.ExtractLesson(id)
	if err != nil {
		return err
	}
	path, err := tr.SaveLesson(id, content, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Practice lesson %s is ready: %s\n", id, path)
	fmt.Fprintf(w, "Open it with: vim %s\n", path)
	fmt.Fprintln(w, "Note: This practice session won't affect your regular progress.")
	return nil
}
