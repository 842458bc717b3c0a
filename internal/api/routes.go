package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iris-j-yan/workout-tracker/internal/service"
)

// SetupRoutes registers all API routes on the router.
func SetupRoutes(
	router *gin.Engine,
	workoutService service.WorkoutService,
) {
	workoutHandler := NewWorkoutHandler(workoutService)
	analyticsHandler := NewAnalyticsHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		workoutGroup := apiV1.Group("/workouts")
		{
			// POST /api/v1/workouts - log a workout
			workoutGroup.POST("", workoutHandler.LogWorkout)
			// GET /api/v1/workouts - history with search/filter/sort
			workoutGroup.GET("", workoutHandler.GetHistory)
			// POST /api/v1/workouts/plan - (re)load the weekly training plan
			workoutGroup.POST("/plan", workoutHandler.LoadWeeklyPlan)
		}

		// GET /api/v1/weeks?date=YYYY-MM-DD - calendar week view
		apiV1.GET("/weeks", workoutHandler.GetWeek)

		// GET /api/v1/analytics?range=week|month|year
		apiV1.GET("/analytics", analyticsHandler.GetAnalytics)

		// POST /api/v1/install-prompt - deferred install prompt outcome
		apiV1.POST("/install-prompt", RecordInstallPrompt)
	}
}
