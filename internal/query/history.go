package query

import (
	"sort"
	"strings"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
)

// SortField selects the history sort key.
type SortField string

const (
	SortByDate      SortField = "date"
	SortByDuration  SortField = "duration"
	SortByIntensity SortField = "intensity"
)

// SortOrder selects ascending or descending history order.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// HistoryParams filters and orders the history view.
// Zero values mean: no search term, all types, date descending.
type HistoryParams struct {
	Search string
	Type   domain.WorkoutType
	SortBy SortField
	Order  SortOrder
}

// History filters records by search term and type, then sorts them.
//
// The search term matches case-insensitively against any exercise name,
// the workout notes and the display name of the workout type. The type
// filter is an exact match. Sorting is stable: ties keep their original
// insertion order.
func History(records []domain.WorkoutRecord, params HistoryParams) []domain.WorkoutRecord {
	filtered := make([]domain.WorkoutRecord, 0, len(records))
	term := strings.ToLower(params.Search)
	for _, rec := range records {
		if term != "" && !matchesSearch(rec, term) {
			continue
		}
		if params.Type != "" && rec.Type != params.Type {
			continue
		}
		filtered = append(filtered, rec)
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = SortByDate
	}
	desc := params.Order != OrderAsc

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		var less, greater bool
		switch sortBy {
		case SortByDuration:
			less, greater = a.Duration < b.Duration, a.Duration > b.Duration
		case SortByIntensity:
			less, greater = a.Intensity < b.Intensity, a.Intensity > b.Intensity
		default:
			// ISO dates order lexicographically.
			less, greater = a.Date < b.Date, a.Date > b.Date
		}
		if desc {
			return greater
		}
		return less
	})
	return filtered
}

func matchesSearch(rec domain.WorkoutRecord, term string) bool {
	for _, ex := range rec.Exercises {
		if strings.Contains(strings.ToLower(ex.Name), term) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(rec.Notes), term) {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Type.DisplayName()), term)
}
