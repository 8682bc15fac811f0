// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import (
	"errors"
	"fmt"

	"github.com/pdiddy/vim-daily/pkg/types"
)

var (
	// ErrNoHistory is returned by Store.LoadHistory when no history has been
	// written yet (missing or empty file).
	ErrNoHistory = errors.New("no history")

	// ErrMalformedHistory is returned by Store.LoadHistory when the stored
	// record cannot be decoded or violates its invariants.
	ErrMalformedHistory = errors.New("malformed history")

	// ErrStorage marks a failure to persist history or a lesson file.
	// Progress state is not guaranteed consistent past such a failure.
	ErrStorage = errors.New("storage write failure")
)

// File naming for rendered lessons.
const (
	LessonPrefix   = "lesson_"
	PracticePrefix = "practice_" + LessonPrefix
	LessonExt      = ".txt"
)

// FileName returns the file name a rendered lesson is stored under:
// lesson_1_2.txt, or practice_lesson_1_2.txt for a practice render.
func FileName(id types.LessonID, practice bool) string {
	prefix := LessonPrefix
	if practice {
		prefix = PracticePrefix
	}
	return prefix + id.Stem() + LessonExt
}

// ArchiveName returns the directory name for a finished round (round_03).
func ArchiveName(round int) string {
	return fmt.Sprintf("round_%02d", round)
}

// Store is the persistence port a Tracker drives. Implementations own the
// history record, the working set of lesson files, and the round archives.
type Store interface {
	// LoadHistory returns the stored history. It returns an error wrapping
	// ErrNoHistory or ErrMalformedHistory when there is nothing usable.
	LoadHistory() (types.History, error)

	// SaveHistory durably replaces the stored history.
	SaveHistory(h types.History) error

	// WriteLesson stores content under name in the working set, replacing
	// any existing file, and returns its location.
	WriteLesson(name, content string) (string, error)

	// ArchiveRound moves every regular lesson file in the working set into
	// the archive for round.
	ArchiveRound(round int) error

	// ClearLessons deletes every regular lesson file from the working set.
	// Practice files and archives are untouched.
	ClearLessons() error

	// ClearPractice deletes every practice file and reports how many.
	ClearPractice() (int, error)

	// ClearArchives deletes every round archive.
	ClearArchives() error

	// Archives lists the archived round numbers in ascending order.
	Archives() ([]int, error)
}
