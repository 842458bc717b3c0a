package plan

import "github.com/iris-j-yan/workout-tracker/internal/domain"

// DemoWorkouts returns a few pre-logged workouts used to seed the store
// when demo data is enabled, newest first.
func DemoWorkouts() []domain.WorkoutRecord {
	return []domain.WorkoutRecord{
		{
			ID:        "1",
			Date:      "2025-01-20",
			Type:      domain.TypeArms,
			Duration:  45,
			Intensity: 4,
			Exercises: []domain.ExerciseEntry{
				{ID: "1", Name: "Bicep Curls", Sets: 3, Reps: 12, Weight: 25},
				{ID: "2", Name: "Push-ups", Sets: 3, Reps: 15},
				{ID: "3", Name: "Tricep Dips", Sets: 3, Reps: 10},
			},
			Notes: "Great session, felt strong",
		},
		{
			ID:        "2",
			Date:      "2025-01-18",
			Type:      domain.TypeZone2,
			Duration:  60,
			Intensity: 2,
			Exercises: []domain.ExerciseEntry{
				{ID: "4", Name: "Easy Run", Duration: 60, Distance: 8},
			},
			Notes: "Perfect heart rate zone",
		},
		{
			ID:        "3",
			Date:      "2025-01-16",
			Type:      domain.TypeLegs,
			Duration:  50,
			Intensity: 5,
			Exercises: []domain.ExerciseEntry{
				{ID: "5", Name: "Squats", Sets: 4, Reps: 12, Weight: 135},
				{ID: "6", Name: "Deadlifts", Sets: 3, Reps: 8, Weight: 185},
				{ID: "7", Name: "Lunges", Sets: 3, Reps: 10},
			},
		},
	}
}
