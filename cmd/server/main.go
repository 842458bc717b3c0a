package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iris-j-yan/workout-tracker/internal/api"
	"github.com/iris-j-yan/workout-tracker/internal/config"
	"github.com/iris-j-yan/workout-tracker/internal/repository/memory"
	"github.com/iris-j-yan/workout-tracker/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("could not load config")
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	logger.Info("configuration loaded")

	// --- Initialize Store & Services ---
	// Workout state is held in memory for the lifetime of the process;
	// there is no persistence layer by design.
	workoutRepo := memory.NewWorkoutRepository()
	workoutService := service.NewWorkoutService(workoutRepo)

	if cfg.Server.SeedDemoData {
		if err := workoutService.SeedDemoData(context.Background()); err != nil {
			logger.WithError(err).Fatal("could not seed demo data")
		}
		logger.Info("demo workouts and weekly plan seeded")
	}

	// --- Initialize Gin Engine ---
	router := gin.New()
	router.Use(api.RequestLogger(logger), gin.Recovery())

	// --- Setup Routes ---
	api.SetupRoutes(router, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.WithField("address", cfg.Server.Address).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("listen and serve failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exiting")
}
