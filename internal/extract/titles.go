// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pdiddy/vim-daily/pkg/types"
)

// Entry pairs a lesson id with the title from its "Lesson N.M: TITLE" line.
// Title is empty when the start line carries none.
type Entry struct {
	ID    types.LessonID `json:"id" yaml:"id"`
	Title string         `json:"title" yaml:"title"`
}

// Chapter groups the entries of one chapter in lesson order.
type Chapter struct {
	Number  int     `json:"number" yaml:"number"`
	Lessons []Entry `json:"lessons" yaml:"lessons"`
}

// Titles returns one entry per available lesson, in lesson order. When a
// lesson has several titled start lines the first one wins.
func (e *Extractor) Titles() []Entry {
	titles := make(map[types.LessonID]string)
	for _, m := range titlePattern.FindAllStringSubmatch(e.content, -1) {
		id := types.LessonID(m[1])
		if _, ok := titles[id]; ok {
			continue
		}
		titles[id] = strings.TrimSpace(m[2])
	}

	entries := make([]Entry, 0, len(e.lessons))
	for _, id := range e.lessons {
		entries = append(entries, Entry{ID: id, Title: titles[id]})
	}
	return entries
}

// Chapters groups Titles by chapter number, chapters ascending.
func (e *Extractor) Chapters() []Chapter {
	byNumber := make(map[int]*Chapter)
	for _, entry := range e.Titles() {
		n := entry.ID.Chapter()
		ch, ok := byNumber[n]
		if !ok {
			ch = &Chapter{Number: n}
			byNumber[n] = ch
		}
		ch.Lessons = append(ch.Lessons, entry)
	}

	chapters := make([]Chapter, 0, len(byNumber))
	for _, ch := range byNumber {
		chapters = append(chapters, *ch)
	}
	slices.SortFunc(chapters, func(a, b Chapter) int { return cmp.Compare(a.Number, b.Number) })
	return chapters
}
