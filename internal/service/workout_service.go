package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
	"github.com/iris-j-yan/workout-tracker/internal/observability"
	"github.com/iris-j-yan/workout-tracker/internal/plan"
	"github.com/iris-j-yan/workout-tracker/internal/query"
	"github.com/iris-j-yan/workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("workout validation failed")
)

// AnalyticsReport bundles every aggregation the analytics view renders,
// derived from one record snapshot filtered to the requested range.
type AnalyticsReport struct {
	Range            query.Range            `json:"range"`
	Stats            query.Summary          `json:"stats"`
	WeeklyFrequency  []query.WeekBucket     `json:"weeklyFrequency"`
	TypeDistribution []query.TypeCount      `json:"typeDistribution"`
	DurationTrend    []query.PeriodBucket   `json:"durationTrend"`
	IntensityTrend   []query.IntensityPoint `json:"intensityTrend"`
}

// HistoryResult is the filtered history list plus the unfiltered total,
// for "showing N of M" style displays.
type HistoryResult struct {
	Workouts []domain.WorkoutRecord `json:"workouts"`
	Total    int                    `json:"total"`
}

// WorkoutService is the application surface over the record store and
// the query layer: it validates user input, loads the weekly plan and
// derives the calendar, history and analytics views.
type WorkoutService interface {
	LogWorkout(ctx context.Context, record domain.WorkoutRecord) (domain.WorkoutRecord, error)
	LoadWeeklyPlan(ctx context.Context, ref time.Time) ([]domain.WorkoutRecord, error)
	History(ctx context.Context, params query.HistoryParams) (HistoryResult, error)
	WeekView(ctx context.Context, ref time.Time) (query.WeekView, error)
	Analytics(ctx context.Context, rng query.Range, now time.Time) (AnalyticsReport, error)
	SeedDemoData(ctx context.Context) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
	}
}

// LogWorkout validates a user-authored workout and appends it to the
// store. Validation happens here, not in the store: the record store
// assumes well-formed input, and invalid workouts never reach it.
func (s *workoutService) LogWorkout(ctx context.Context, record domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	if err := validateWorkout(record); err != nil {
		return domain.WorkoutRecord{}, err
	}

	record.ID = ""
	for i := range record.Exercises {
		if record.Exercises[i].ID == "" {
			record.Exercises[i].ID = uuid.NewString()
		}
	}

	saved, err := s.workoutRepo.Append(ctx, record)
	if err != nil {
		return domain.WorkoutRecord{}, err
	}
	observability.RecordWorkoutLogged(string(saved.Type))
	return saved, nil
}

// LoadWeeklyPlan generates the template workouts for the week of ref
// and swaps them into the store, replacing any templates already placed
// on those dates. Reloading the same calendar week is idempotent.
func (s *workoutService) LoadWeeklyPlan(ctx context.Context, ref time.Time) ([]domain.WorkoutRecord, error) {
	templates := plan.Generate(ref)
	if err := s.workoutRepo.ReplaceTemplatesForWeek(ctx, templates); err != nil {
		return nil, err
	}
	observability.RecordPlanLoaded()
	return templates, nil
}

// History returns the filtered, sorted history view.
func (s *workoutService) History(ctx context.Context, params query.HistoryParams) (HistoryResult, error) {
	records, err := s.workoutRepo.All(ctx)
	if err != nil {
		return HistoryResult{}, err
	}
	return HistoryResult{
		Workouts: query.History(records, params),
		Total:    len(records),
	}, nil
}

// WeekView returns the calendar week containing ref.
func (s *workoutService) WeekView(ctx context.Context, ref time.Time) (query.WeekView, error) {
	records, err := s.workoutRepo.All(ctx)
	if err != nil {
		return query.WeekView{}, err
	}
	return query.Week(records, ref), nil
}

// Analytics derives every chart series and the summary stats over the
// records within the requested range.
func (s *workoutService) Analytics(ctx context.Context, rng query.Range, now time.Time) (AnalyticsReport, error) {
	if !rng.Valid() {
		rng = query.RangeMonth
	}
	records, err := s.workoutRepo.All(ctx)
	if err != nil {
		return AnalyticsReport{}, err
	}

	inRange := query.FilterSince(records, rng, now)
	return AnalyticsReport{
		Range:            rng,
		Stats:            query.SummaryStats(inRange),
		WeeklyFrequency:  query.WeeklyFrequency(inRange),
		TypeDistribution: query.TypeDistribution(inRange),
		DurationTrend:    query.DurationByPeriod(inRange, rng),
		IntensityTrend:   query.IntensityTrend(inRange),
	}, nil
}

// SeedDemoData loads a few sample workouts plus the current week's plan
// into an empty store. Used at startup when demo seeding is enabled.
func (s *workoutService) SeedDemoData(ctx context.Context) error {
	demo := plan.DemoWorkouts()
	// Append oldest-first so the store ends up newest-first.
	for i := len(demo) - 1; i >= 0; i-- {
		if _, err := s.workoutRepo.Append(ctx, demo[i]); err != nil {
			return err
		}
	}
	_, err := s.LoadWeeklyPlan(ctx, time.Now())
	return err
}

func validateWorkout(record domain.WorkoutRecord) error {
	if _, err := time.Parse(domain.DateLayout, record.Date); err != nil {
		return fmt.Errorf("%w: date must be a valid YYYY-MM-DD date", ErrValidationFailed)
	}
	if !record.Type.Valid() {
		return fmt.Errorf("%w: unknown workout type %q", ErrValidationFailed, record.Type)
	}
	if record.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidationFailed)
	}
	if record.Intensity < 1 || record.Intensity > 5 {
		return fmt.Errorf("%w: intensity must be between 1 and 5", ErrValidationFailed)
	}
	if len(record.Exercises) == 0 {
		return fmt.Errorf("%w: at least one exercise is required", ErrValidationFailed)
	}
	for _, ex := range record.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
		}
	}
	if record.IsTemplate || record.TemplateName != "" {
		return fmt.Errorf("%w: template workouts are generated, not logged", ErrValidationFailed)
	}
	return nil
}
