// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/vim-daily/pkg/types"
)

const sampleTutorial = `===============================================
=    W e l c o m e   t o   t h e   T U T O R    =
===============================================

     Vim is a very powerful editor.

                        Lesson 1.1: MOVING THE CURSOR

   ** To move the cursor, press the h,j,k,l keys as indicated. **

LESSON 1.2: EXITING VIM

  1. Press the <ESC> key.
  2. Type :q! <ENTER>.

Lesson 1.2 SUMMARY

  See Lesson 1.1 for cursor movement.

   lesson 2.1: DELETION COMMANDS

   ** Type  dw  to delete a word. **
`

func ids(ss ...string) []types.LessonID {
	out := make([]types.LessonID, len(ss))
	for i, s := range ss {
		out[i] = types.LessonID(s)
	}
	return out
}

func TestIdentifyLessons(t *testing.T) {
	tests := []struct {
		name    string
		content string
		order   types.SortOrder
		want    []types.LessonID
	}{
		{
			name:    "tutorial markers deduplicated and sorted",
			content: sampleTutorial,
			want:    ids("1.1", "1.2", "2.1"),
		},
		{
			name:    "structured order puts 2.10 after 2.9",
			content: "Lesson 2.10\nLesson 2.9\nLesson 1.3\n",
			want:    ids("1.3", "2.9", "2.10"),
		},
		{
			name:    "numeric order compares as decimal",
			content: "Lesson 1.9\nLesson 1.10\nLesson 1.2\n",
			order:   types.SortNumeric,
			want:    ids("1.10", "1.2", "1.9"),
		},
		{
			name:    "numeric ties keep source order",
			content: "Lesson 1.10\nLesson 1.1\n",
			order:   types.SortNumeric,
			want:    ids("1.10", "1.1"),
		},
		{
			name:    "mid-line mentions are not markers",
			content: "see Lesson 4.4 later\nLesson 3.1\n",
			want:    ids("3.1"),
		},
		{
			name:    "malformed numbers are ignored",
			content: "Lesson 5\nLesson .2\nLesson x.y\n",
			want:    ids(),
		},
		{
			name:    "empty source",
			content: "",
			want:    ids(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.order != "" {
				opts = append(opts, WithSortOrder(tt.order))
			}
			e := New(tt.content, opts...)
			assert.Equal(t, tt.want, e.IdentifyLessons())
			assert.Equal(t, tt.want, e.AvailableLessons())
		})
	}
}

func TestAvailableLessonsReturnsCopy(t *testing.T) {
	e := New(sampleTutorial)
	got := e.AvailableLessons()
	got[0] = "9.9"
	assert.Equal(t, ids("1.1", "1.2", "2.1"), e.AvailableLessons())
}

func TestExtractLesson(t *testing.T) {
	e := New(sampleTutorial)

	text, err := e.ExtractLesson("1.2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "# Vim Daily - Lesson 1.2\n\nLESSON 1.2: EXITING VIM"))
	assert.Contains(t, text, "Lesson 1.2 SUMMARY")
	assert.NotContains(t, text, "DELETION COMMANDS")

	last, err := e.ExtractLesson("2.1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(last, "to delete a word. **\n"))
}

func TestExtractLessonTitle(t *testing.T) {
	e := New(sampleTutorial, WithTitle("Neovim Daily"))
	text, err := e.ExtractLesson("1.1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "# Neovim Daily - Lesson 1.1\n\n"))
}

func TestExtractLessonNotFound(t *testing.T) {
	e := New(sampleTutorial)
	_, err := e.ExtractLesson("7.7")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBodiesAreContiguous(t *testing.T) {
	e := New(sampleTutorial)
	title := strings.Index(sampleTutorial, "Lesson 1.1: MOVING")
	require.GreaterOrEqual(t, title, 0)
	first := strings.LastIndex(sampleTutorial[:title], "\n") + 1

	var b strings.Builder
	for _, id := range e.AvailableLessons() {
		body, err := e.Body(id)
		require.NoError(t, err)
		b.WriteString(body)
	}
	assert.Equal(t, sampleTutorial[first:], b.String())
}

func TestMarkerDoesNotMatchLongerIndex(t *testing.T) {
	e := New("Lesson 1.10: TEN\nten\nLesson 1.1: ONE\none\nLesson 1.2: TWO\ntwo\n")
	assert.Equal(t, ids("1.1", "1.2", "1.10"), e.AvailableLessons())

	body, err := e.Body("1.1")
	require.NoError(t, err)
	assert.Equal(t, "Lesson 1.1: ONE\none\n", body)

	// 1.10 is last in order; it runs to the end of the source.
	body, err = e.Body("1.10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(body, "Lesson 1.10: TEN"))
}

func TestInvalidUTF8IsReplaced(t *testing.T) {
	e := New("Lesson 1.1: BAD \xff BYTE\n")
	assert.Equal(t, ids("1.1"), e.AvailableLessons())
	assert.Contains(t, e.Content(), "BAD � BYTE")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimtutor.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleTutorial), 0o644))

	e := Load(path)
	require.NoError(t, e.Err())
	assert.Equal(t, ids("1.1", "1.2", "2.1"), e.AvailableLessons())
}

func TestLoadMissingSourceDegrades(t *testing.T) {
	e := Load(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, e.Err())
	assert.ErrorIs(t, e.Err(), ErrSourceUnavailable)
	assert.Empty(t, e.AvailableLessons())
	assert.Equal(t, UnavailableContent, e.Content())

	_, err := e.ExtractLesson("1.1")
	assert.ErrorIs(t, err, ErrNotFound)
}
