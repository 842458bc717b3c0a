package domain

import "time"

// DateLayout is the calendar-date format used throughout the app.
// Workout dates carry no time-of-day component.
const DateLayout = "2006-01-02"

// WorkoutType classifies a workout session.
type WorkoutType string

const (
	TypeZone2    WorkoutType = "zone2"
	TypeCore     WorkoutType = "core"
	TypeArms     WorkoutType = "arms"
	TypeLegs     WorkoutType = "legs"
	TypeCardio   WorkoutType = "cardio"
	TypeFullBody WorkoutType = "full-body"
	TypeMobility WorkoutType = "mobility"
	TypeRecovery WorkoutType = "recovery"
)

// WorkoutTypes is the canonical enumeration order. Tie-breaks (e.g. the
// "most trained" pick of a week) resolve to the earliest entry here.
var WorkoutTypes = []WorkoutType{
	TypeZone2,
	TypeCore,
	TypeArms,
	TypeLegs,
	TypeCardio,
	TypeFullBody,
	TypeMobility,
	TypeRecovery,
}

var workoutTypeNames = map[WorkoutType]string{
	TypeZone2:    "Zone 2",
	TypeCore:     "Core",
	TypeArms:     "Arms",
	TypeLegs:     "Legs",
	TypeCardio:   "Cardio",
	TypeFullBody: "Full Body",
	TypeMobility: "Mobility",
	TypeRecovery: "Recovery",
}

// DisplayName returns the human-readable label for the type,
// or the raw value for an unknown type.
func (t WorkoutType) DisplayName() string {
	if name, ok := workoutTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// Valid reports whether the type is one of the known workout types.
func (t WorkoutType) Valid() bool {
	_, ok := workoutTypeNames[t]
	return ok
}

// WorkoutRecord represents a single workout session, either logged by the
// user or placed on the calendar by the weekly plan generator.
type WorkoutRecord struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"` // YYYY-MM-DD, the sole grouping/filtering key
	Type      WorkoutType     `json:"type"`
	Duration  int             `json:"duration"`  // minutes
	Intensity int             `json:"intensity"` // 1-5
	Exercises []ExerciseEntry `json:"exercises"`
	Notes     string          `json:"notes,omitempty"`

	// IsTemplate marks records produced by the weekly plan generator.
	// TemplateName is set only on template records.
	IsTemplate   bool   `json:"isTemplate,omitempty"`
	TemplateName string `json:"templateName,omitempty"`
}

// Day parses the record's calendar date.
func (w WorkoutRecord) Day() (time.Time, error) {
	return time.Parse(DateLayout, w.Date)
}
