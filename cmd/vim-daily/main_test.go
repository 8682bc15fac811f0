// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/vim-daily/internal/extract"
	"github.com/pdiddy/vim-daily/internal/progress"
	"github.com/pdiddy/vim-daily/internal/workspace"
	"github.com/pdiddy/vim-daily/pkg/types"
)

const tutorial = `Intro

Lesson 1.1: MOVING THE CURSOR
hjkl

Lesson 1.2: EXITING VIM
:q!

Lesson 2.1: DELETION COMMANDS
dw
`

func testApp(t *testing.T) (*extract.Extractor, *progress.Tracker, string) {
	t.Helper()
	root := t.TempDir()
	ws, err := workspace.New(types.WorkspaceConfig{
		DataDir:    filepath.Join(root, "data"),
		LessonsDir: filepath.Join(root, "lessons"),
		RoundsDir:  filepath.Join(root, "rounds"),
	})
	require.NoError(t, err)
	tr, err := progress.New(ws, progress.WithChooser(progress.ChooserFunc(func(int) int { return 0 })))
	require.NoError(t, err)
	return extract.New(tutorial), tr, root
}

func TestDeliverNext(t *testing.T) {
	ex, tr, root := testApp(t)

	var out bytes.Buffer
	require.NoError(t, deliverNext(&out, ex, tr))

	path := filepath.Join(root, "lessons", "lesson_1_1.txt")
	assert.Contains(t, out.String(), "Your daily Vim lesson is ready: "+path)
	assert.Contains(t, out.String(), "This is lesson 1.1 in round 1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Vim Daily - Lesson 1.1\n\nLesson 1.1: MOVING THE CURSOR\nhjkl\n\n", string(data))
}

func TestDeliverNextNoLessons(t *testing.T) {
	_, tr, _ := testApp(t)
	ex := extract.Load(filepath.Join(t.TempDir(), "missing.txt"))

	var out bytes.Buffer
	require.NoError(t, deliverNext(&out, ex, tr))
	assert.Contains(t, out.String(), "No lessons available")
	assert.Empty(t, tr.Completed())
}

func TestDeliverPractice(t *testing.T) {
	ex, tr, root := testApp(t)

	var out bytes.Buffer
	require.NoError(t, deliverPractice(&out, ex, tr, "1.2"))
	assert.Contains(t, out.String(), "Practice lesson 1.2 is ready")
	assert.FileExists(t, filepath.Join(root, "lessons", "practice_lesson_1_2.txt"))
	assert.Empty(t, tr.Completed())

	out.Reset()
	require.NoError(t, deliverPractice(&out, ex, tr, "9.9"))
	assert.Equal(t, "Lesson 9.9 not found. Use list to see available lessons.\n", out.String())
}

func TestListLessons(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listLessons(&out, extract.New(tutorial)))
	assert.Equal(t, `Found 3 lessons in the tutorial:

Chapter 1:
  - Lesson 1.1: MOVING THE CURSOR
  - Lesson 1.2: EXITING VIM

Chapter 2:
  - Lesson 2.1: DELETION COMMANDS
`, out.String())
}

func TestShowProgress(t *testing.T) {
	ex, tr, _ := testApp(t)
	require.NoError(t, deliverNext(&bytes.Buffer{}, ex, tr))

	var out bytes.Buffer
	require.NoError(t, showProgress(&out, ex, tr, "text"))
	assert.Contains(t, out.String(), "Lessons completed this round: 1/3 (33.3%)")

	out.Reset()
	require.NoError(t, showProgress(&out, ex, tr, "json"))
	var report progress.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, []types.LessonID{"1.2", "2.1"}, report.Remaining)

	assert.Error(t, showProgress(&out, ex, tr, "xml"))
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
