package tracker

import (
	"time"

	"github.com/fitstack/exercise-tracker/internal/models"
)

// FilterLogByDates keeps entries whose date falls within [from, to] inclusive
// on whichever bounds are non-nil, preserving order. Entries whose stored date
// cannot be parsed are dropped when a bound is set.
func FilterLogByDates(log []models.Exercise, from, to *time.Time) []models.Exercise {
	if from == nil && to == nil {
		return log
	}
	filtered := make([]models.Exercise, 0, len(log))
	for _, e := range log {
		d, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// FilterLogByLimit truncates the log to its first limit entries. Zero means
// unlimited. Truncation is positional from the head of the already-ordered,
// most-recent-first log, not a "most recent N" re-sort.
func FilterLogByLimit(log []models.Exercise, limit int) []models.Exercise {
	if limit == 0 || limit >= len(log) {
		return log
	}
	return log[:limit]
}
