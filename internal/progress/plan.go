// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import (
	"github.com/samber/lo"

	"github.com/pdiddy/vim-daily/pkg/types"
)

// Plan is the selection decision for one NextLesson call, computed without
// touching storage.
type Plan struct {
	// Completed is the round's completed list restricted to available
	// lessons, duplicates dropped, order preserved. Empty after a rollover.
	Completed []types.LessonID

	// Remaining holds the candidates to choose from.
	Remaining []types.LessonID

	// Rollover is set when every available lesson was already completed and
	// a new round must start before choosing.
	Rollover bool
}

// Empty reports whether there is nothing to choose from.
func (p Plan) Empty() bool { return len(p.Remaining) == 0 }

// PlanNext computes remaining = available - completed. When that is empty
// and available is not, it plans a rollover and every available lesson
// becomes a candidate again.
func PlanNext(completed, available []types.LessonID) Plan {
	available = lo.Uniq(available)
	known := knownCompleted(completed, available)

	remaining := lo.Without(available, known...)
	if len(remaining) == 0 && len(available) > 0 {
		return Plan{
			Completed: []types.LessonID{},
			Remaining: available,
			Rollover:  true,
		}
	}
	return Plan{Completed: known, Remaining: remaining}
}

// knownCompleted drops duplicates and lessons no longer available from
// completed, keeping presentation order.
func knownCompleted(completed, available []types.LessonID) []types.LessonID {
	return lo.Filter(lo.Uniq(completed), func(id types.LessonID, _ int) bool {
		return lo.Contains(available, id)
	})
}
