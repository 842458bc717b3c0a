package domain

// ExerciseCategory tags an exercise within a workout (warm-up block,
// strength block, core finisher, ...).
type ExerciseCategory string

const (
	CategoryWarmUp   ExerciseCategory = "warm-up"
	CategoryStrength ExerciseCategory = "strength"
	CategoryCore     ExerciseCategory = "core"
	CategoryCardio   ExerciseCategory = "cardio"
	CategoryMobility ExerciseCategory = "mobility"
	CategoryRecovery ExerciseCategory = "recovery"
)

// ExerciseEntry is a single exercise performed within a workout.
// Which measures are populated depends on the exercise: strength work
// carries sets/reps/weight, cardio carries duration/distance. None are
// mutually exclusive.
type ExerciseEntry struct {
	ID       string           `json:"id"` // unique within the parent workout
	Name     string           `json:"name"`
	Sets     int              `json:"sets,omitempty"`
	Reps     int              `json:"reps,omitempty"`
	Weight   float64          `json:"weight,omitempty"`   // lbs
	Duration int              `json:"duration,omitempty"` // minutes, or hold time in seconds for holds
	Distance float64          `json:"distance,omitempty"` // miles
	Notes    string           `json:"notes,omitempty"`    // progression cues etc.
	Category ExerciseCategory `json:"category,omitempty"`
}
