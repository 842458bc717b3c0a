package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "workouts",
		Name:      "logged_total",
		Help:      "Number of workouts logged, labeled by workout type.",
	}, []string{"type"})

	planLoads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "workouts",
		Name:      "plan_loads_total",
		Help:      "Number of times the weekly training plan was loaded.",
	})

	installPromptOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_tracker",
		Subsystem: "install",
		Name:      "prompt_outcomes_total",
		Help:      "Install prompt replies, labeled by outcome (accepted or dismissed).",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(workoutsLogged, planLoads, installPromptOutcomes)
}

// RecordWorkoutLogged counts a logged workout of the given type.
func RecordWorkoutLogged(workoutType string) {
	workoutsLogged.WithLabelValues(workoutType).Inc()
}

// RecordPlanLoaded counts a weekly plan load.
func RecordPlanLoaded() {
	planLoads.Inc()
}

// RecordInstallPromptOutcome counts an install prompt reply.
func RecordInstallPromptOutcome(outcome string) {
	installPromptOutcomes.WithLabelValues(outcome).Inc()
}
