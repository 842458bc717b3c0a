package repository

import (
	"context"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
)

// WorkoutRepository is the record store: the ordered, newest-first
// collection of workout records held for the session.
//
// The store performs no validation beyond id assignment; callers are
// expected to submit well-formed records.
type WorkoutRepository interface {
	// Append assigns a fresh unique id when the record has none and
	// inserts the record at the front of the collection.
	Append(ctx context.Context, record domain.WorkoutRecord) (domain.WorkoutRecord, error)

	// ReplaceTemplatesForWeek removes every template record whose date
	// matches one of the given records' dates, then prepends the given
	// records. Non-template records and templates for other weeks are
	// untouched. This is the only bulk mutation the store supports.
	ReplaceTemplatesForWeek(ctx context.Context, templates []domain.WorkoutRecord) error

	// All returns a snapshot copy of the collection in display order
	// (newest-first).
	All(ctx context.Context) ([]domain.WorkoutRecord, error)
}
