// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace stores progress on the local filesystem: a JSON history
// file under the data directory, rendered lessons under the lessons
// directory, and one round_NN archive per finished round.
//
// Files are written to a temporary sibling and renamed into place, so a
// failed write leaves the previous version intact.
package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdiddy/vim-daily/internal/progress"
	"github.com/pdiddy/vim-daily/pkg/types"
)

const historyFile = "history.json"

// archivePattern matches round archive directory names.
var archivePattern = regexp.MustCompile(`^round_(\d+)$`)

// Workspace implements progress.Store on a set of directories.
type Workspace struct {
	dataDir    string
	lessonsDir string
	roundsDir  string
	logger     *zap.Logger
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates any missing directories named by cfg and returns a Workspace
// over them. Empty fields fall back to data, lessons, and rounds.
func New(cfg types.WorkspaceConfig, opts ...Option) (*Workspace, error) {
	w := &Workspace{
		dataDir:    orDefault(cfg.DataDir, "data"),
		lessonsDir: orDefault(cfg.LessonsDir, "lessons"),
		roundsDir:  orDefault(cfg.RoundsDir, "rounds"),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, dir := range []string{w.dataDir, w.lessonsDir, w.roundsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return w, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// HistoryPath returns the location of the history file.
func (w *Workspace) HistoryPath() string {
	return filepath.Join(w.dataDir, historyFile)
}

// LessonsDir returns the working-set directory.
func (w *Workspace) LessonsDir() string { return w.lessonsDir }

// ArchiveDir returns the archive directory for round.
func (w *Workspace) ArchiveDir(round int) string {
	return filepath.Join(w.roundsDir, progress.ArchiveName(round))
}

// LoadHistory reads and validates the history file.
func (w *Workspace) LoadHistory() (types.History, error) {
	path := w.HistoryPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.History{}, fmt.Errorf("%w: %s does not exist", progress.ErrNoHistory, path)
		}
		return types.History{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return types.History{}, fmt.Errorf("%w: %s is empty", progress.ErrNoHistory, path)
	}

	var h types.History
	if err := json.Unmarshal(data, &h); err != nil {
		return types.History{}, fmt.Errorf("%w: %s: %v", progress.ErrMalformedHistory, path, err)
	}
	if err := validate(h); err != nil {
		return types.History{}, fmt.Errorf("%w: %s: %v", progress.ErrMalformedHistory, path, err)
	}
	if h.Completed == nil {
		h.Completed = []types.LessonID{}
	}
	return h, nil
}

func validate(h types.History) error {
	if h.Round < 1 {
		return fmt.Errorf("current_round %d is not positive", h.Round)
	}
	seen := make(map[types.LessonID]bool, len(h.Completed))
	for _, id := range h.Completed {
		if !id.Valid() {
			return fmt.Errorf("invalid lesson id %q", string(id))
		}
		if seen[id] {
			return fmt.Errorf("lesson %s completed twice", id)
		}
		seen[id] = true
	}
	return nil
}

// SaveHistory writes h as indented JSON.
func (w *Workspace) SaveHistory(h types.History) error {
	if h.Completed == nil {
		h.Completed = []types.LessonID{}
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	return writeFileAtomic(w.HistoryPath(), append(data, '\n'))
}

// WriteLesson writes content to name inside the lessons directory.
func (w *Workspace) WriteLesson(name, content string) (string, error) {
	path := filepath.Join(w.lessonsDir, name)
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return "", err
	}
	return path, nil
}

// ArchiveRound moves the regular lesson files into rounds/round_NN,
// replacing files of the same name already there.
func (w *Workspace) ArchiveRound(round int) error {
	dest := w.ArchiveDir(round)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	files, err := w.glob(progress.LessonPrefix + "*" + progress.LessonExt)
	if err != nil {
		return err
	}
	for _, src := range files {
		target := filepath.Join(dest, filepath.Base(src))
		if err := os.Rename(src, target); err != nil {
			return fmt.Errorf("archiving %s: %w", src, err)
		}
		w.logger.Debug("archived lesson", zap.String("from", src), zap.String("to", target))
	}
	return nil
}

// ClearLessons removes the regular lesson files from the lessons directory.
func (w *Workspace) ClearLessons() error {
	_, err := w.removeMatching(progress.LessonPrefix + "*" + progress.LessonExt)
	return err
}

// ClearPractice removes practice files and reports how many were removed.
func (w *Workspace) ClearPractice() (int, error) {
	return w.removeMatching(progress.PracticePrefix + "*" + progress.LessonExt)
}

// ClearArchives removes every round_* directory. Other entries in the
// rounds directory are left alone.
func (w *Workspace) ClearArchives() error {
	dirs, err := filepath.Glob(filepath.Join(w.roundsDir, "round_*"))
	if err != nil {
		return fmt.Errorf("listing archives: %w", err)
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
		w.logger.Debug("removed archive", zap.String("dir", dir))
	}
	return nil
}

// Archives lists the round numbers that have an archive directory.
func (w *Workspace) Archives() ([]int, error) {
	entries, err := os.ReadDir(w.roundsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", w.roundsDir, err)
	}

	seen := make(map[int]bool)
	rounds := []int{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := archivePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		rounds = append(rounds, n)
	}
	sort.Ints(rounds)
	return rounds, nil
}

func (w *Workspace) glob(pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(w.lessonsDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", pattern, err)
	}
	return files, nil
}

func (w *Workspace) removeMatching(pattern string) (int, error) {
	files, err := w.glob(pattern)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, f := range files {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return n, fmt.Errorf("removing %s: %w", f, err)
		}
		n++
	}
	return n, nil
}

// writeFileAtomic writes data to a temporary file beside path and renames
// it over path.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
