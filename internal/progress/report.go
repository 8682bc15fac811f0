// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vim-daily/pkg/types"
)

// Report summarizes progress through the current round.
type Report struct {
	Round     int              `json:"round" yaml:"round"`
	Total     int              `json:"total" yaml:"total"`
	Completed []types.LessonID `json:"completed" yaml:"completed"`
	Remaining []types.LessonID `json:"remaining" yaml:"remaining"`
	Percent   float64          `json:"percent" yaml:"percent"`
	Archived  []int            `json:"archived_rounds" yaml:"archived_rounds"`
}

// Report builds a progress summary against the available lessons. Both
// lists are sorted with compare.
func (t *Tracker) Report(available []types.LessonID, compare func(a, b types.LessonID) int) (Report, error) {
	archived, err := t.store.Archives()
	if err != nil {
		return Report{}, fmt.Errorf("listing archives: %w", err)
	}

	available = lo.Uniq(available)
	completed := knownCompleted(t.history.Completed, available)
	remaining := lo.Without(available, completed...)
	slices.SortStableFunc(completed, compare)
	slices.SortStableFunc(remaining, compare)

	r := Report{
		Round:     t.history.Round,
		Total:     len(available),
		Completed: completed,
		Remaining: remaining,
		Archived:  archived,
	}
	if r.Archived == nil {
		r.Archived = []int{}
	}
	if r.Total > 0 {
		r.Percent = float64(len(completed)) / float64(r.Total) * 100
	}
	return r, nil
}

// WriteText prints the report in human-readable form.
func (r Report) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Current round: %d\n", r.Round)
	fmt.Fprintf(w, "Lessons completed this round: %d/%d (%.1f%%)\n", len(r.Completed), r.Total, r.Percent)
	fmt.Fprintf(w, "Lessons remaining: %d\n", len(r.Remaining))

	if len(r.Completed) > 0 {
		fmt.Fprintln(w, "\nLessons completed this round:")
		for _, id := range r.Completed {
			fmt.Fprintf(w, "  - Lesson %s\n", id)
		}
	}
	if len(r.Archived) > 0 {
		fmt.Fprintln(w, "\nArchived rounds:")
		for _, n := range r.Archived {
			fmt.Fprintf(w, "  - %s\n", ArchiveName(n))
		}
	}
	return nil
}

// WriteYAML encodes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON encodes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
