// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress tracks which lessons have been presented across rounds
// and selects the next one.
//
// Within a round lessons are drawn without replacement. Once every
// available lesson has been presented the round rolls over: its lesson
// files are archived, the round counter increments and the completed set
// empties. All persistence goes through the Store port.
package progress

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/pdiddy/vim-daily/pkg/types"
)

// Tracker owns the History for one invocation.
type Tracker struct {
	store   Store
	history types.History
	chooser Chooser
	logger  *zap.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithChooser replaces the random selection source.
func WithChooser(c Chooser) Option {
	return func(t *Tracker) {
		if c != nil {
			t.chooser = c
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// New loads history from store. Missing, empty, or malformed history is
// replaced by the first-run state and written back; the caller sees no
// error for those cases.
func New(store Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store:   store,
		chooser: RandomChooser,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	h, err := store.LoadHistory()
	switch {
	case err == nil:
		t.history = h.Clone()
		return t, nil
	case errors.Is(err, ErrNoHistory):
		t.logger.Debug("no history, starting round 1")
	case errors.Is(err, ErrMalformedHistory):
		t.logger.Warn("history unreadable, reinitializing", zap.Error(err))
	default:
		return nil, fmt.Errorf("loading history: %w", err)
	}

	if err := t.commit(types.NewHistory()); err != nil {
		return nil, err
	}
	return t, nil
}

// commit persists h and, on success, makes it the current history.
func (t *Tracker) commit(h types.History) error {
	if err := t.store.SaveHistory(h); err != nil {
		return fmt.Errorf("%w: saving history: %w", ErrStorage, err)
	}
	t.history = h
	return nil
}

// CurrentRound returns the current round number.
func (t *Tracker) CurrentRound() int { return t.history.Round }

// Completed returns the lessons presented this round, in order.
func (t *Tracker) Completed() []types.LessonID {
	return slices.Clone(t.history.Completed)
}

// History returns a copy of the current state.
func (t *Tracker) History() types.History { return t.history.Clone() }

// NextLesson picks a lesson from available that has not been presented this
// round, records it, and persists the history. When every available lesson
// has been presented it rolls the round over first. ok is false only when
// available is empty.
func (t *Tracker) NextLesson(available []types.LessonID) (id types.LessonID, ok bool, err error) {
	if len(available) == 0 {
		return "", false, nil
	}

	plan := PlanNext(t.history.Completed, available)
	if plan.Rollover {
		if err := t.rollover(); err != nil {
			return "", false, err
		}
	}

	n := len(plan.Remaining)
	i := t.chooser.Choose(n)
	if i < 0 || i >= n {
		return "", false, fmt.Errorf("chooser returned index %d for %d candidates", i, n)
	}
	id = plan.Remaining[i]

	next := types.History{
		Round:     t.history.Round,
		Completed: append(slices.Clone(plan.Completed), id),
	}
	if err := t.commit(next); err != nil {
		return "", false, err
	}
	t.logger.Debug("lesson selected",
		zap.String("lesson", string(id)),
		zap.Int("round", next.Round),
		zap.Int("remaining", n-1))
	return id, true, nil
}

// rollover archives the finished round's lesson files and starts the next
// round with nothing completed.
func (t *Tracker) rollover() error {
	finished := t.history.Round
	if err := t.store.ArchiveRound(finished); err != nil {
		return fmt.Errorf("%w: archiving round %d: %w", ErrStorage, finished, err)
	}
	if err := t.commit(types.History{Round: finished + 1, Completed: []types.LessonID{}}); err != nil {
		return err
	}
	t.logger.Info("round complete",
		zap.Int("round", finished),
		zap.String("archive", ArchiveName(finished)))
	return nil
}

// SaveLesson stores a rendered lesson and returns its location. Practice
// saves use a distinct file name and never touch history.
func (t *Tracker) SaveLesson(id types.LessonID, content string, practice bool) (string, error) {
	path, err := t.store.WriteLesson(FileName(id, practice), content)
	if err != nil {
		return "", fmt.Errorf("%w: writing lesson %s: %w", ErrStorage, id, err)
	}
	t.logger.Debug("lesson saved", zap.String("path", path), zap.Bool("practice", practice))
	return path, nil
}

// ResetHistory returns to round 1 with nothing completed and deletes the
// regular lesson files in the working set. Archives are kept.
func (t *Tracker) ResetHistory() error {
	if err := t.commit(types.NewHistory()); err != nil {
		return err
	}
	if err := t.store.ClearLessons(); err != nil {
		return fmt.Errorf("%w: clearing lessons: %w", ErrStorage, err)
	}
	t.logger.Info("history reset")
	return nil
}

// FullReset performs ResetHistory and then deletes every round archive.
func (t *Tracker) FullReset() error {
	if err := t.ResetHistory(); err != nil {
		return err
	}
	if err := t.store.ClearArchives(); err != nil {
		return fmt.Errorf("%w: clearing archives: %w", ErrStorage, err)
	}
	t.logger.Info("archives removed")
	return nil
}

// CleanupPractice deletes all practice files and reports how many.
func (t *Tracker) CleanupPractice() (int, error) {
	n, err := t.store.ClearPractice()
	if err != nil {
		return n, fmt.Errorf("%w: clearing practice files: %w", ErrStorage, err)
	}
	return n, nil
}

// Archives lists the archived round numbers.
func (t *Tracker) Archives() ([]int, error) {
	return t.store.Archives()
}
