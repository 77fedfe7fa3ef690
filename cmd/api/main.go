package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/usecase/duration"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		warnInsecureProductionSettings(cfg)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()

	repo, healthCheck, closeStore, err := setupStore(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to set up saved duration store", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
	defer closeStore()

	durationService := duration.NewDurationService(repo, tp, appLogger, duration.Options{
		MaxSavedDurations: cfg.Engine.MaxSavedDurations,
		RatioPlaces:       cfg.Engine.DefaultRatioPlaces,
	})

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(
		router,
		handler.NewDurationHandler(durationService, appLogger),
		handler.NewHealthHandler(healthCheck),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"database": cfg.Database.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			appLogger.Flush()
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// setupStore connects and migrates PostgreSQL when enabled and falls back to memory otherwise
func setupStore(
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (persistence.DurationRepository, func() bool, func(), error) {
	if !cfg.Database.Enabled {
		appLogger.Warn("Database disabled, saved durations are kept in memory", nil)
		return repository.NewMemoryDurationRepository(), nil, func() {}, nil
	}

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
		closeDB()
		return nil, nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	healthCheck := func() bool { return dbManager.PoolMetrics().Healthy }
	return repository.NewDurationRepository(dbManager, appLogger), healthCheck, closeDB, nil
}

// warnInsecureProductionSettings reports weak settings without refusing to start
func warnInsecureProductionSettings(cfg *config.Config) {
	var warnings []string

	if cfg.Database.Enabled {
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "server.allowedOrigins allows any origin")
		}
	}

	if len(warnings) > 0 {
		log.Printf("Warning: potential security issues in production configuration: %v", warnings)
	}
}
