// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// LessonID names one tutorial lesson as "<chapter>.<index>" (e.g. "1.2").
type LessonID string

// Parts splits the identifier into its chapter and index numbers.
func (id LessonID) Parts() (chapter, index int, err error) {
	c, i, ok := strings.Cut(string(id), ".")
	if !ok {
		return 0, 0, fmt.Errorf("lesson id %q: missing '.'", string(id))
	}
	if chapter, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("lesson id %q: bad chapter: %w", string(id), err)
	}
	if index, err = strconv.Atoi(i); err != nil {
		return 0, 0, fmt.Errorf("lesson id %q: bad index: %w", string(id), err)
	}
	return chapter, index, nil
}

// Valid reports whether the identifier has the chapter.index shape.
func (id LessonID) Valid() bool {
	_, _, err := id.Parts()
	return err == nil
}

// Chapter returns the chapter number, or 0 for a malformed identifier.
func (id LessonID) Chapter() int {
	c, _, _ := id.Parts()
	return c
}

// Stem returns the identifier with dots replaced by underscores, suitable
// for use in a file name ("1.2" -> "1_2").
func (id LessonID) Stem() string {
	return strings.ReplaceAll(string(id), ".", "_")
}

// SortOrder selects how LessonIDs are ordered.
type SortOrder string

const (
	// SortStructured compares (chapter, index) as an integer pair, so
	// "2.10" follows "2.9".
	SortStructured SortOrder = "structured"

	// SortNumeric compares the whole identifier as a decimal number. This
	// is the legacy ordering: "1.10" equals "1.1" and precedes "1.9".
	SortNumeric SortOrder = "numeric"
)

// ParseSortOrder maps a configuration value to a SortOrder. The empty
// string selects SortStructured.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortStructured, "":
		return SortStructured, nil
	case SortNumeric:
		return SortNumeric, nil
	default:
		return "", fmt.Errorf("unsupported sort order %q: use structured or numeric", s)
	}
}

// Compare returns the comparison function for the order, suitable for
// slices.SortStableFunc.
func (o SortOrder) Compare() func(a, b LessonID) int {
	if o == SortNumeric {
		return CompareNumeric
	}
	return CompareStructured
}

// CompareStructured orders identifiers by chapter, then index.
func CompareStructured(a, b LessonID) int {
	ac, ai, _ := a.Parts()
	bc, bi, _ := b.Parts()
	if c := cmp.Compare(ac, bc); c != 0 {
		return c
	}
	return cmp.Compare(ai, bi)
}

// CompareNumeric orders identifiers by their value as a decimal number.
// Identifiers with equal value compare as equal.
func CompareNumeric(a, b LessonID) int {
	af, _ := strconv.ParseFloat(string(a), 64)
	bf, _ := strconv.ParseFloat(string(b), 64)
	return cmp.Compare(af, bf)
}

// History is the durable progress state: the lessons presented in the
// current round, in presentation order, and the round number.
type History struct {
	// Completed lists lessons already presented this round. Each appears once.
	Completed []LessonID `json:"completed" yaml:"completed"`

	// Round is the current round number, starting at 1.
	Round int `json:"current_round" yaml:"current_round"`
}

// NewHistory returns the first-run state: round 1, nothing completed.
func NewHistory() History {
	return History{Completed: []LessonID{}, Round: 1}
}

// Clone returns a copy that shares no memory with h.
func (h History) Clone() History {
	c := History{Round: h.Round, Completed: make([]LessonID, len(h.Completed))}
	copy(c.Completed, h.Completed)
	return c
}
