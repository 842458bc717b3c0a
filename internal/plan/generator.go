package plan

import (
	"time"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
)

// WeekStart returns the most recent Sunday on or before ref, with the
// time-of-day zeroed out.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Generate produces the seven template workouts for the week containing
// ref, Sunday through Saturday. The function is pure: the same calendar
// week always yields identical records, template ids included, which
// keeps reloading the weekly plan idempotent.
func Generate(ref time.Time) []domain.WorkoutRecord {
	weekStart := WeekStart(ref)
	dateFor := func(offset int) string {
		return weekStart.AddDate(0, 0, offset).Format(domain.DateLayout)
	}

	return []domain.WorkoutRecord{
		// Monday – Lower Body + Core (55 min)
		{
			ID:           "template-monday",
			Date:         dateFor(1),
			Type:         domain.TypeLegs,
			Duration:     55,
			Intensity:    4,
			IsTemplate:   true,
			TemplateName: "Lower Body + Core",
			Exercises: []domain.ExerciseEntry{
				// PT warm-up (10 min)
				{ID: "mon-1", Name: "SL Heel Drop Calf Raise", Sets: 3, Reps: 12, Category: domain.CategoryWarmUp},
				{ID: "mon-2", Name: "SL Balance Tip Toe Hold", Sets: 6, Duration: 10, Notes: "10 sec each leg", Category: domain.CategoryWarmUp},
				{ID: "mon-3", Name: "Lunge with Elevated Heel", Sets: 4, Duration: 20, Notes: "20 sec hold", Category: domain.CategoryWarmUp},
				// Strength (25 min)
				{ID: "mon-4", Name: "Banded Split DL", Sets: 4, Reps: 8, Weight: 35, Category: domain.CategoryStrength},
				{ID: "mon-5", Name: "Deadlift", Sets: 5, Reps: 8, Weight: 50, Notes: "Progress weekly", Category: domain.CategoryStrength},
				{ID: "mon-6", Name: "Front Rack Squat", Sets: 6, Reps: 8, Weight: 30, Category: domain.CategoryStrength},
				{ID: "mon-7", Name: "Standing Lunge Step Backs", Sets: 4, Reps: 12, Weight: 15, Notes: "15 lb DB", Category: domain.CategoryStrength},
				// Core (15 min)
				{ID: "mon-8", Name: "TRX Leg Lifts", Sets: 3, Reps: 10, Notes: "Heels in straps, extend legs from bridge", Category: domain.CategoryCore},
				{ID: "mon-9", Name: "Hanging Side-to-Side Raises", Sets: 3, Reps: 10, Notes: "Lift legs toward right, then left", Category: domain.CategoryCore},
				{ID: "mon-10", Name: "Reverse Crunch on Bench", Sets: 3, Reps: 12, Category: domain.CategoryCore},
			},
			Notes: "Lower body focus with core integration. Progress deadlift weight weekly.",
		},

		// Tuesday – Upper Back/Shoulders + Core (55 min)
		{
			ID:           "template-tuesday",
			Date:         dateFor(2),
			Type:         domain.TypeArms,
			Duration:     55,
			Intensity:    4,
			IsTemplate:   true,
			TemplateName: "Upper Back/Shoulders + Core",
			Exercises: []domain.ExerciseEntry{
				{ID: "tue-1", Name: "Hip Hinge + External Rotation Press", Sets: 5, Reps: 8, Category: domain.CategoryWarmUp},
				{ID: "tue-2", Name: "Cable ER 90/90", Sets: 4, Reps: 8, Weight: 5, Category: domain.CategoryWarmUp},
				{ID: "tue-3", Name: "Lat Pull", Sets: 4, Reps: 8, Weight: 30, Category: domain.CategoryStrength},
				{ID: "tue-4", Name: "OVP on Wall Military Press", Sets: 4, Reps: 8, Weight: 10, Category: domain.CategoryStrength},
				{ID: "tue-5", Name: "Banded Batwing V1", Sets: 1, Reps: 10, Category: domain.CategoryStrength},
				{ID: "tue-6", Name: "Banded Batwing V2", Sets: 1, Reps: 7, Category: domain.CategoryStrength},
				{ID: "tue-7", Name: "Floor Bench Press", Sets: 4, Reps: 8, Weight: 10, Category: domain.CategoryStrength},
				{ID: "tue-8", Name: "TRX Pikes", Sets: 3, Reps: 12, Notes: `Hips to inverted "V"`, Category: domain.CategoryCore},
				{ID: "tue-9", Name: "TRX Oblique Knee Tucks", Sets: 3, Reps: 10, Notes: "Knees to opposite elbow, each side", Category: domain.CategoryCore},
				{ID: "tue-10", Name: "Side Plank Hip Dips", Sets: 3, Reps: 8, Notes: "Each side", Category: domain.CategoryCore},
			},
			Notes: "Upper body strength with posterior chain focus and core stability.",
		},

		// Wednesday – Zone 2 + Core (50-55 min)
		{
			ID:           "template-wednesday",
			Date:         dateFor(3),
			Type:         domain.TypeZone2,
			Duration:     55,
			Intensity:    2,
			IsTemplate:   true,
			TemplateName: "Zone 2 + Core",
			Exercises: []domain.ExerciseEntry{
				{ID: "wed-1", Name: "Zone 2 Cardio", Duration: 35, Notes: "Jog, bike, or row at HR 65-75% max (nasal breathing)", Category: domain.CategoryCardio},
				{ID: "wed-2", Name: "TRX Atomic Push-Ups", Sets: 3, Reps: 10, Notes: "Push-up + knee tuck", Category: domain.CategoryCore},
				{ID: "wed-3", Name: "TRX Side Plank with Reach-Through", Sets: 3, Reps: 8, Notes: "Thread top arm under, extend back up, each side", Category: domain.CategoryCore},
				{ID: "wed-4", Name: "Banded Pallof Press", Sets: 3, Reps: 10, Notes: "Anti-rotation, each side", Category: domain.CategoryCore},
			},
			Notes: "Aerobic base building with core stability. Focus on nasal breathing during cardio.",
		},

		// Thursday – Lower Body Plyo + Core (55 min)
		{
			ID:           "template-thursday",
			Date:         dateFor(4),
			Type:         domain.TypeLegs,
			Duration:     55,
			Intensity:    4,
			IsTemplate:   true,
			TemplateName: "Lower Body Plyo + Core",
			Exercises: []domain.ExerciseEntry{
				{ID: "thu-1", Name: "Tip Toe Carry", Sets: 2, Duration: 30, Weight: 15, Notes: "10-15 lbs, 30 sec", Category: domain.CategoryWarmUp},
				{ID: "thu-2", Name: "Supported DL Calf Raise", Sets: 2, Reps: 12, Category: domain.CategoryWarmUp},
				{ID: "thu-3", Name: "SL Calf Raise", Sets: 2, Reps: 12, Category: domain.CategoryWarmUp},
				{ID: "thu-4", Name: "Lateral Lunge Jump", Sets: 4, Reps: 12, Weight: 15, Notes: "15 lb DB", Category: domain.CategoryStrength},
				{ID: "thu-5", Name: "Banded Split DL", Sets: 4, Reps: 8, Weight: 35, Category: domain.CategoryStrength},
				{ID: "thu-6", Name: "Curtsy/Skater Lunge", Sets: 3, Reps: 12, Notes: "Each leg", Category: domain.CategoryStrength},
				{ID: "thu-7", Name: "Glute Bridge March", Sets: 3, Reps: 12, Category: domain.CategoryStrength},
				{ID: "thu-8", Name: "Ab Rollouts", Sets: 3, Reps: 10, Notes: "Wheel/barbell, slow out + back", Category: domain.CategoryCore},
				{ID: "thu-9", Name: "Hanging Leg Lifts", Sets: 3, Reps: 10, Notes: "To 90°, controlled", Category: domain.CategoryCore},
				{ID: "thu-10", Name: "Flutter Kicks", Sets: 3, Duration: 20, Notes: "Hover, 20 sec", Category: domain.CategoryCore},
			},
			Notes: "Plyometric lower body training with explosive movements and core finisher.",
		},

		// Friday – Upper Posterior Chain + Core (55 min)
		{
			ID:           "template-friday",
			Date:         dateFor(5),
			Type:         domain.TypeArms,
			Duration:     55,
			Intensity:    4,
			IsTemplate:   true,
			TemplateName: "Upper Posterior Chain + Core",
			Exercises: []domain.ExerciseEntry{
				{ID: "fri-1", Name: "OVP on Wall Military Press", Sets: 4, Reps: 8, Weight: 10, Category: domain.CategoryWarmUp},
				{ID: "fri-2", Name: "Banded Batwing V2", Sets: 3, Reps: 7, Category: domain.CategoryWarmUp},
				{ID: "fri-3", Name: "DB or Barbell Row", Sets: 4, Reps: 8, Category: domain.CategoryStrength},
				{ID: "fri-4", Name: "Reverse Fly", Sets: 3, Reps: 15, Category: domain.CategoryStrength},
				{ID: "fri-5", Name: "Arnold Press", Sets: 3, Reps: 10, Notes: "Light/moderate weight", Category: domain.CategoryStrength},
				{ID: "fri-6", Name: "Farmer Carry", Sets: 3, Duration: 30, Notes: "30 sec", Category: domain.CategoryStrength},
				{ID: "fri-7", Name: "Hanging Knee-to-Elbow", Sets: 3, Reps: 10, Notes: "Slow, avoid swinging", Category: domain.CategoryCore},
				{ID: "fri-8", Name: "Weighted Russian Twist", Sets: 3, Reps: 12, Notes: "Hold DB/plate, rotate torso, each side", Category: domain.CategoryCore},
				{ID: "fri-9", Name: "Plank Shoulder Taps", Sets: 3, Duration: 30, Notes: "Keep hips steady, 30 sec", Category: domain.CategoryCore},
			},
			Notes: "Posterior chain focus with pulling movements and anti-rotation core work.",
		},

		// Saturday – Long Zone 2 + Mobility (60 min)
		{
			ID:           "template-saturday",
			Date:         dateFor(6),
			Type:         domain.TypeZone2,
			Duration:     60,
			Intensity:    2,
			IsTemplate:   true,
			TemplateName: "Long Zone 2 + Mobility",
			Exercises: []domain.ExerciseEntry{
				{ID: "sat-1", Name: "Zone 2 Endurance", Duration: 50, Notes: "Steady jog, bike, or hike (HR 65-70% max, sustainable pace)", Category: domain.CategoryCardio},
				{ID: "sat-2", Name: "Nelson Kneeling on Wall T-Spine Rotation", Sets: 2, Reps: 6, Notes: "Each side", Category: domain.CategoryMobility},
				{ID: "sat-3", Name: "Seated Nelson Rotation with Leans", Sets: 2, Reps: 6, Category: domain.CategoryMobility},
				{ID: "sat-4", Name: "90/90 Reaching with Breathwork", Sets: 2, Duration: 30, Notes: "30 sec each position", Category: domain.CategoryMobility},
			},
			Notes: "Longer aerobic session with mobility work for recovery and movement quality.",
		},

		// Sunday – Active Recovery (40 min)
		{
			ID:           "template-sunday",
			Date:         dateFor(0),
			Type:         domain.TypeRecovery,
			Duration:     40,
			Intensity:    1,
			IsTemplate:   true,
			TemplateName: "Active Recovery",
			Exercises: []domain.ExerciseEntry{
				{ID: "sun-1", Name: "Gentle Yoga or Walk", Duration: 30, Notes: "Light movement for recovery", Category: domain.CategoryRecovery},
				{ID: "sun-2", Name: "Rolling to Glute Med on Wall", Duration: 5, Notes: "Hip flexion/extension, controlled", Category: domain.CategoryMobility},
				{ID: "sun-3", Name: "DLR Mid-Back Extension Reps", Duration: 5, Notes: "Focus on thoracic extension", Category: domain.CategoryMobility},
			},
			Notes: "Active recovery with gentle movement and mobility work.",
		},
	}
}
