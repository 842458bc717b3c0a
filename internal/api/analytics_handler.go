package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iris-j-yan/workout-tracker/internal/query"
	"github.com/iris-j-yan/workout-tracker/internal/service"
)

// AnalyticsHandler serves the progress analytics view.
type AnalyticsHandler struct {
	workoutService service.WorkoutService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(workoutService service.WorkoutService) *AnalyticsHandler {
	return &AnalyticsHandler{workoutService: workoutService}
}

// GetAnalytics handles GET /api/v1/analytics?range=week|month|year.
// The default range is the last month.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	rng := query.Range(c.DefaultQuery("range", string(query.RangeMonth)))
	if !rng.Valid() {
		abortWithError(c, http.StatusBadRequest, "Range must be one of week, month, year.")
		return
	}

	report, err := h.workoutService.Analytics(c.Request.Context(), rng, time.Now())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute analytics.")
		return
	}
	c.JSON(http.StatusOK, report)
}
