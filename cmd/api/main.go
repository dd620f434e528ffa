// ABOUTME: Main entry point for the week calendar API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weekcal-api/api"
	"weekcal-api/api/handlers"
	"weekcal-api/core/interfaces"
	"weekcal-api/core/week"
	"weekcal-api/infrastructure/cache"
	"weekcal-api/infrastructure/logger/logrus"
	"weekcal-api/pkg/config"
	"weekcal-api/pkg/featureflags"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logrus.New(logrus.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	// Validate already parsed the policy once
	policy, _ := cfg.Calendar.Policy()

	logger.Info("Starting week calendar API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"policy":     policy.String(),
	})

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags", featureflags.Labels(flags.GetAllFlags()))
	ctx := context.Background()

	deps := interfaces.Dependencies{
		Logger: logger,
		Clock:  interfaces.SystemClock,
	}
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		weekCache, closeCache := cache.NewFromConfig(cfg.Cache, logger)
		defer func() {
			if err := closeCache(); err != nil {
				logger.Warn("Failed to close cache", map[string]interface{}{"error": err.Error()})
			}
		}()
		deps.Cache = weekCache
	}
	weekService := week.NewService(deps, cfg.Calendar.CacheTTL)

	rateLimit := cfg.RateLimit.RequestsPerSecond
	if !flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		rateLimit = 0
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:    logger,
		RateLimit: rateLimit,
		RateBurst: cfg.RateLimit.Burst,
		Flags:     flags,
	})

	handlers.NewWeekHandler(weekService, policy).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}
