package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
	"github.com/iris-j-yan/workout-tracker/internal/repository"
)

// workoutRepository implements repository.WorkoutRepository with an
// in-memory, newest-first slice. State lives for the process lifetime
// only; there is no persistence by design.
type workoutRepository struct {
	mu      sync.RWMutex
	records []domain.WorkoutRecord
}

// NewWorkoutRepository creates an empty in-memory workout store.
func NewWorkoutRepository() repository.WorkoutRepository {
	return &workoutRepository{}
}

// Append assigns an id when absent and inserts at the front.
func (r *workoutRepository) Append(ctx context.Context, record domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	r.records = append([]domain.WorkoutRecord{record}, r.records...)
	return record, nil
}

// ReplaceTemplatesForWeek drops existing templates whose dates collide
// with the incoming batch, then prepends the batch. Template ids are
// stable per weekday, so reloading the same week is idempotent.
func (r *workoutRepository) ReplaceTemplatesForWeek(ctx context.Context, templates []domain.WorkoutRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dates := make(map[string]struct{}, len(templates))
	for _, t := range templates {
		dates[t.Date] = struct{}{}
	}

	kept := make([]domain.WorkoutRecord, 0, len(r.records))
	for _, rec := range r.records {
		if rec.IsTemplate {
			if _, clash := dates[rec.Date]; clash {
				continue
			}
		}
		kept = append(kept, rec)
	}

	r.records = append(append([]domain.WorkoutRecord{}, templates...), kept...)
	return nil
}

// All returns a copy of the collection in display order.
func (r *workoutRepository) All(ctx context.Context) ([]domain.WorkoutRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.WorkoutRecord, len(r.records))
	copy(snapshot, r.records)
	return snapshot, nil
}
