// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses a tutorial text into numbered lessons and slices
// out the body of any lesson on demand.
//
// A lesson starts at a line whose first word is "Lesson" (any case)
// followed by a chapter.index number, and runs until the start of the
// next lesson in sorted order or the end of the text.
package extract

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/vim-daily/pkg/types"
)

var (
	// ErrSourceUnavailable is reported when the tutorial text cannot be read.
	ErrSourceUnavailable = errors.New("tutorial source unavailable")

	// ErrNotFound is returned for a lesson id the source does not contain.
	ErrNotFound = errors.New("lesson not found")
)

// UnavailableContent is the body a degraded Extractor exposes in place of
// the tutorial text.
const UnavailableContent = "ERROR: Could not read tutorial content from the source file."

const defaultTitle = "Vim Daily"

// markerPattern matches a lesson start line. The trailing \b keeps
// "Lesson 1.1" from matching the prefix of "Lesson 1.10".
var markerPattern = regexp.MustCompile(`(?im)^[ \t]*lesson[ \t]+(\d+\.\d+)\b`)

// titlePattern matches "Lesson N.M: TITLE" lines.
var titlePattern = regexp.MustCompile(`(?im)^[ \t]*lesson[ \t]+(\d+\.\d+):[ \t]+(.*)$`)

// marker is one occurrence of a lesson start line.
type marker struct {
	id     types.LessonID
	offset int
}

// Extractor holds an immutable tutorial text and the lessons found in it.
type Extractor struct {
	content string
	err     error
	markers []marker
	lessons []types.LessonID
	title   string
	order   types.SortOrder
	logger  *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTitle sets the name used in generated lesson headers.
func WithTitle(title string) Option {
	return func(e *Extractor) {
		if title != "" {
			e.title = title
		}
	}
}

// WithSortOrder selects how lesson ids are ordered.
func WithSortOrder(order types.SortOrder) Option {
	return func(e *Extractor) { e.order = order }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an Extractor over content. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func New(content string, opts ...Option) *Extractor {
	e := newExtractor(opts)
	e.setContent(content)
	return e
}

// Load reads the tutorial at path. A missing or unreadable file does not
// fail: the Extractor is degraded, exposes no lessons, and Err reports
// ErrSourceUnavailable.
func Load(path string, opts ...Option) *Extractor {
	e := newExtractor(opts)
	data, err := os.ReadFile(path)
	if err != nil {
		e.err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		e.logger.Warn("tutorial source unavailable", zap.String("path", path), zap.Error(err))
		e.content = UnavailableContent
		e.lessons = []types.LessonID{}
		return e
	}
	e.setContent(string(data))
	e.logger.Debug("tutorial loaded",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("lessons", len(e.lessons)))
	return e
}

func newExtractor(opts []Option) *Extractor {
	e := &Extractor{
		title:  defaultTitle,
		order:  types.SortStructured,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) setContent(content string) {
	e.content = strings.ToValidUTF8(content, "�")
	e.markers = scanMarkers(e.content)
	e.lessons = e.IdentifyLessons()
}

// Err returns the load error of a degraded Extractor, or nil.
func (e *Extractor) Err() error { return e.err }

// Content returns the tutorial text, or UnavailableContent when degraded.
func (e *Extractor) Content() string { return e.content }

// Order returns the ordering used for lesson ids.
func (e *Extractor) Order() types.SortOrder { return e.order }

func scanMarkers(content string) []marker {
	var markers []marker
	for _, m := range markerPattern.FindAllStringSubmatchIndex(content, -1) {
		markers = append(markers, marker{
			id:     types.LessonID(content[m[2]:m[3]]),
			offset: m[0],
		})
	}
	return markers
}

// IdentifyLessons returns every distinct lesson id in the source, sorted
// by the configured order. Ids that compare equal keep source order.
func (e *Extractor) IdentifyLessons() []types.LessonID {
	seen := make(map[types.LessonID]bool)
	lessons := []types.LessonID{}
	for _, m := range e.markers {
		if seen[m.id] {
			continue
		}
		seen[m.id] = true
		lessons = append(lessons, m.id)
	}
	slices.SortStableFunc(lessons, e.order.Compare())
	return lessons
}

// AvailableLessons returns the lesson ids identified at construction.
// The returned slice is a copy.
func (e *Extractor) AvailableLessons() []types.LessonID {
	return slices.Clone(e.lessons)
}

// Has reports whether id is one of the available lessons.
func (e *Extractor) Has(id types.LessonID) bool {
	return slices.Contains(e.lessons, id)
}

// ExtractLesson returns the text of lesson id, from its first start line up
// to the start line of the following lesson (or the end of the source),
// prefixed with a generated header.
func (e *Extractor) ExtractLesson(id types.LessonID) (string, error) {
	body, err := e.Body(id)
	if err != nil {
		return "", err
	}
	return e.Header(id) + body, nil
}

// Header returns the generated header line that precedes a lesson body.
func (e *Extractor) Header(id types.LessonID) string {
	return fmt.Sprintf("# %s - Lesson %s\n\n", e.title, id)
}

// Body returns the raw slice of the source for lesson id, without header.
func (e *Extractor) Body(id types.LessonID) (string, error) {
	idx := slices.Index(e.lessons, id)
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	start := e.markerOffset(id, 0)
	if start < 0 {
		return "", fmt.Errorf("%w: no start line for lesson %s", ErrNotFound, id)
	}

	end := len(e.content)
	if idx+1 < len(e.lessons) {
		if off := e.markerOffset(e.lessons[idx+1], start); off >= 0 {
			end = off
		}
	}
	return e.content[start:end], nil
}

// markerOffset returns the offset of the first start line for id at or
// after from, or -1.
func (e *Extractor) markerOffset(id types.LessonID, from int) int {
	for _, m := range e.markers {
		if m.id == id && m.offset >= from {
			return m.offset
		}
	}
	return -1
}
