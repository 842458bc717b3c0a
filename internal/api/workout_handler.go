package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
	"github.com/iris-j-yan/workout-tracker/internal/query"
	"github.com/iris-j-yan/workout-tracker/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest is one exercise of a logged workout.
type ExerciseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Sets     int     `json:"sets" binding:"omitempty,min=1"`
	Reps     int     `json:"reps" binding:"omitempty,min=1"`
	Weight   float64 `json:"weight" binding:"omitempty,gt=0"`
	Duration int     `json:"duration" binding:"omitempty,gt=0"`
	Distance float64 `json:"distance" binding:"omitempty,gt=0"`
	Notes    string  `json:"notes"`
	Category string  `json:"category" binding:"omitempty,oneof=warm-up strength core cardio mobility recovery"`
}

// LogWorkoutRequest defines the expected JSON for logging a workout.
// The UI disables submit until at least one exercise exists; the same
// rule is enforced again here.
type LogWorkoutRequest struct {
	Date      string            `json:"date" binding:"required"`
	Type      string            `json:"type" binding:"required"`
	Duration  int               `json:"duration" binding:"required,gt=0"`
	Intensity int               `json:"intensity" binding:"required,min=1,max=5"`
	Exercises []ExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
	Notes     string            `json:"notes"`
}

func (r LogWorkoutRequest) toDomain() domain.WorkoutRecord {
	exercises := make([]domain.ExerciseEntry, len(r.Exercises))
	for i, ex := range r.Exercises {
		exercises[i] = domain.ExerciseEntry{
			Name:     ex.Name,
			Sets:     ex.Sets,
			Reps:     ex.Reps,
			Weight:   ex.Weight,
			Duration: ex.Duration,
			Distance: ex.Distance,
			Notes:    ex.Notes,
			Category: domain.ExerciseCategory(ex.Category),
		}
	}
	return domain.WorkoutRecord{
		Date:      r.Date,
		Type:      domain.WorkoutType(r.Type),
		Duration:  r.Duration,
		Intensity: r.Intensity,
		Exercises: exercises,
		Notes:     r.Notes,
	}
}

// WorkoutResponse is the DTO for returning a workout record.
type WorkoutResponse struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	Type         string                 `json:"type"`
	TypeName     string                 `json:"typeName"`
	Duration     int                    `json:"duration"`
	Intensity    int                    `json:"intensity"`
	Exercises    []domain.ExerciseEntry `json:"exercises"`
	Notes        string                 `json:"notes,omitempty"`
	IsTemplate   bool                   `json:"isTemplate,omitempty"`
	TemplateName string                 `json:"templateName,omitempty"`
}

// MapWorkoutToResponse converts a domain.WorkoutRecord to WorkoutResponse.
func MapWorkoutToResponse(w domain.WorkoutRecord) WorkoutResponse {
	return WorkoutResponse{
		ID:           w.ID,
		Date:         w.Date,
		Type:         string(w.Type),
		TypeName:     w.Type.DisplayName(),
		Duration:     w.Duration,
		Intensity:    w.Intensity,
		Exercises:    w.Exercises,
		Notes:        w.Notes,
		IsTemplate:   w.IsTemplate,
		TemplateName: w.TemplateName,
	}
}

// MapWorkoutsToResponse converts a slice of records to response DTOs.
func MapWorkoutsToResponse(workouts []domain.WorkoutRecord) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(w)
	}
	return responses
}

// HistoryResponse is the history list plus counts for the
// "showing N of M workouts" line.
type HistoryResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
	Count    int               `json:"count"`
	Total    int               `json:"total"`
}

// --- Handler Methods ---

// LogWorkout handles POST /api/v1/workouts.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	saved, err := h.workoutService.LogWorkout(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutToResponse(saved))
}

// GetHistory handles GET /api/v1/workouts with optional q, type, sort
// and order query params.
func (h *WorkoutHandler) GetHistory(c *gin.Context) {
	params := query.HistoryParams{
		Search: c.Query("q"),
		SortBy: query.SortField(c.DefaultQuery("sort", string(query.SortByDate))),
		Order:  query.SortOrder(c.DefaultQuery("order", string(query.OrderDesc))),
	}

	if typeParam := c.Query("type"); typeParam != "" && typeParam != "all" {
		t := domain.WorkoutType(typeParam)
		if !t.Valid() {
			abortWithError(c, http.StatusBadRequest, "Unknown workout type: "+typeParam)
			return
		}
		params.Type = t
	}
	switch params.SortBy {
	case query.SortByDate, query.SortByDuration, query.SortByIntensity:
	default:
		abortWithError(c, http.StatusBadRequest, "Sort must be one of date, duration, intensity.")
		return
	}
	switch params.Order {
	case query.OrderAsc, query.OrderDesc:
	default:
		abortWithError(c, http.StatusBadRequest, "Order must be asc or desc.")
		return
	}

	result, err := h.workoutService.History(c.Request.Context(), params)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout history.")
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Workouts: MapWorkoutsToResponse(result.Workouts),
		Count:    len(result.Workouts),
		Total:    result.Total,
	})
}

// LoadWeeklyPlan handles POST /api/v1/workouts/plan. Reloading the plan
// for the same calendar week replaces the week's templates in place.
func (h *WorkoutHandler) LoadWeeklyPlan(c *gin.Context) {
	templates, err := h.workoutService.LoadWeeklyPlan(c.Request.Context(), time.Now())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load weekly plan.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(templates))
}

// GetWeek handles GET /api/v1/weeks?date=YYYY-MM-DD, defaulting to the
// current week.
func (h *WorkoutHandler) GetWeek(c *gin.Context) {
	ref := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.Parse(domain.DateLayout, dateParam)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Date must be formatted as YYYY-MM-DD.")
			return
		}
		ref = parsed
	}

	week, err := h.workoutService.WeekView(c.Request.Context(), ref)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load week view.")
		return
	}
	c.JSON(http.StatusOK, week)
}
