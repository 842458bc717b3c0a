package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iris-j-yan/workout-tracker/internal/domain"
	"github.com/iris-j-yan/workout-tracker/internal/repository/memory"
	"github.com/iris-j-yan/workout-tracker/internal/service"
)

func setupRouter() (*gin.Engine, service.WorkoutService) {
	gin.SetMode(gin.TestMode)
	workoutService := service.NewWorkoutService(memory.NewWorkoutRepository())
	router := gin.New()
	SetupRoutes(router, workoutService)
	return router, workoutService
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func logWorkoutBody() LogWorkoutRequest {
	return LogWorkoutRequest{
		Date:      time.Now().Format(domain.DateLayout),
		Type:      "arms",
		Duration:  45,
		Intensity: 4,
		Exercises: []ExerciseRequest{
			{Name: "Bicep Curls", Sets: 3, Reps: 12, Weight: 25},
			{Name: "Push-ups", Sets: 3, Reps: 15},
		},
		Notes: "felt strong",
	}
}

func TestPing(t *testing.T) {
	router, _ := setupRouter()
	rr := doJSON(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogWorkout(t *testing.T) {
	router, _ := setupRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/workouts", logWorkoutBody())
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp WorkoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "arms", resp.Type)
	assert.Equal(t, "Arms", resp.TypeName)
	assert.Len(t, resp.Exercises, 2)
}

func TestLogWorkoutRejectsEmptyExercises(t *testing.T) {
	router, _ := setupRouter()

	body := logWorkoutBody()
	body.Exercises = nil
	rr := doJSON(t, router, http.MethodPost, "/api/v1/workouts", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogWorkoutRejectsUnknownType(t *testing.T) {
	router, _ := setupRouter()

	body := logWorkoutBody()
	body.Type = "chest"
	rr := doJSON(t, router, http.MethodPost, "/api/v1/workouts", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetHistorySearchAndFilter(t *testing.T) {
	router, _ := setupRouter()

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/v1/workouts", logWorkoutBody()).Code)

	legs := logWorkoutBody()
	legs.Type = "legs"
	legs.Exercises = []ExerciseRequest{{Name: "Squats", Sets: 4, Reps: 12}}
	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/v1/workouts", legs).Code)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/workouts?q=SQUAT", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Workouts, 1)
	assert.Equal(t, "legs", resp.Workouts[0].Type)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/workouts?type=arms", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestGetHistoryRejectsBadParams(t *testing.T) {
	router, _ := setupRouter()

	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, router, http.MethodGet, "/api/v1/workouts?type=chest", nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, router, http.MethodGet, "/api/v1/workouts?sort=name", nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, router, http.MethodGet, "/api/v1/workouts?order=up", nil).Code)
}

func TestLoadWeeklyPlan(t *testing.T) {
	router, _ := setupRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/workouts/plan", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var templates []WorkoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &templates))
	require.Len(t, templates, 7)
	for _, tpl := range templates {
		assert.True(t, tpl.IsTemplate)
		assert.NotEmpty(t, tpl.TemplateName)
	}

	// Reloading replaces rather than duplicates.
	doJSON(t, router, http.MethodPost, "/api/v1/workouts/plan", nil)
	var resp HistoryResponse
	list := doJSON(t, router, http.MethodGet, "/api/v1/workouts", nil)
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Total)
}

func TestGetWeek(t *testing.T) {
	router, _ := setupRouter()

	doJSON(t, router, http.MethodPost, "/api/v1/workouts/plan", nil)

	ref := time.Now().Format(domain.DateLayout)
	rr := doJSON(t, router, http.MethodGet, "/api/v1/weeks?date="+ref, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var view struct {
		Start string `json:"start"`
		Days  []struct {
			Date     string            `json:"date"`
			Workouts []WorkoutResponse `json:"workouts"`
		} `json:"days"`
		Summary struct {
			Workouts int `json:"workouts"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Days, 7)
	assert.Equal(t, 7, view.Summary.Workouts)
}

func TestGetWeekRejectsBadDate(t *testing.T) {
	router, _ := setupRouter()
	rr := doJSON(t, router, http.MethodGet, "/api/v1/weeks?date=tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAnalytics(t *testing.T) {
	router, _ := setupRouter()

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/v1/workouts", logWorkoutBody()).Code)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/analytics?range=month", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report struct {
		Range string `json:"range"`
		Stats struct {
			TotalWorkouts int     `json:"totalWorkouts"`
			TotalDuration int     `json:"totalDuration"`
			AvgIntensity  float64 `json:"avgIntensity"`
		} `json:"stats"`
		TypeDistribution []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"typeDistribution"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "month", report.Range)
	assert.Equal(t, 1, report.Stats.TotalWorkouts)
	assert.Equal(t, 45, report.Stats.TotalDuration)
	assert.Equal(t, 4.0, report.Stats.AvgIntensity)
	require.Len(t, report.TypeDistribution, 1)
	assert.Equal(t, "Arms", report.TypeDistribution[0].Name)
}

func TestGetAnalyticsRejectsBadRange(t *testing.T) {
	router, _ := setupRouter()
	rr := doJSON(t, router, http.MethodGet, "/api/v1/analytics?range=fortnight", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecordInstallPrompt(t *testing.T) {
	router, _ := setupRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/install-prompt",
		InstallPromptRequest{Outcome: "accepted"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/install-prompt",
		InstallPromptRequest{Outcome: "maybe"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
