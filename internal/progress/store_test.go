// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/vim-daily/pkg/types"
)

// memStore is an in-memory Store for tracker tests.
type memStore struct {
	history  *types.History
	loadErr  error
	saveErr  error
	writeErr error
	saves    int
	files    map[string]string
	archives map[int]map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		files:    map[string]string{},
		archives: map[int]map[string]string{},
	}
}

func (m *memStore) LoadHistory() (types.History, error) {
	if m.loadErr != nil {
		return types.History{}, m.loadErr
	}
	if m.history == nil {
		return types.History{}, ErrNoHistory
	}
	return m.history.Clone(), nil
}

func (m *memStore) SaveHistory(h types.History) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	c := h.Clone()
	m.history = &c
	m.saves++
	return nil
}

func (m *memStore) WriteLesson(name, content string) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.files[name] = content
	return "lessons/" + name, nil
}

func (m *memStore) ArchiveRound(round int) error {
	if m.archives[round] == nil {
		m.archives[round] = map[string]string{}
	}
	for name, content := range m.files {
		if strings.HasPrefix(name, LessonPrefix) {
			m.archives[round][name] = content
			delete(m.files, name)
		}
	}
	return nil
}

func (m *memStore) ClearLessons() error {
	for name := range m.files {
		if strings.HasPrefix(name, LessonPrefix) {
			delete(m.files, name)
		}
	}
	return nil
}

func (m *memStore) ClearPractice() (int, error) {
	n := 0
	for name := range m.files {
		if strings.HasPrefix(name, PracticePrefix) {
			delete(m.files, name)
			n++
		}
	}
	return n, nil
}

func (m *memStore) ClearArchives() error {
	m.archives = map[int]map[string]string{}
	return nil
}

func (m *memStore) Archives() ([]int, error) {
	rounds := make([]int, 0, len(m.archives))
	for n := range m.archives {
		rounds = append(rounds, n)
	}
	sort.Ints(rounds)
	return rounds, nil
}

func TestFileName(t *testing.T) {
	tests := []struct {
		id       types.LessonID
		practice bool
		want     string
	}{
		{"1.1", false, "lesson_1_1.txt"},
		{"2.10", false, "lesson_2_10.txt"},
		{"1.1", true, "practice_lesson_1_1.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.id, tt.practice))
	}
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "round_01", ArchiveName(1))
	assert.Equal(t, "round_12", ArchiveName(12))
	assert.Equal(t, "round_100", ArchiveName(100))
}

var errDisk = errors.New("disk full")
