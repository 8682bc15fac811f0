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

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Write the next lesson of the current round (default action)",
	Long: `Next picks a lesson you have not seen this round, writes it to the lessons
directory, and records it in the history. When every lesson has been seen the
round's files are moved to rounds/round_NN and a new round starts.`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	ex, tr, err := open()
	if err != nil {
		return err
	}
	return deliverNext(os.Stdout, ex, tr)
}

func deliverNext(w io.Writer, ex *extract.Extractor, tr *progress.Tracker) error {
	id, ok, err := tr.NextLesson(ex.AvailableLessons())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, "No lessons available. Check the tutorial source.")
		return nil
	}

	content, err := ex.ExtractLesson(id)
	if err != nil {
		return err
	}
	path, err := tr.SaveLesson(id, content, false)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Your daily Vim lesson is ready: %s\n", path)
	fmt.Fprintf(w, "Open it with: vim %s\n", path)
	fmt.Fprintf(w, "This is lesson %s in round %d\n", id, tr.CurrentRound())
	return nil
}
