package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/finflowhq/finflow_bot/internal/ai"
	"github.com/finflowhq/finflow_bot/internal/core/services"
	"github.com/finflowhq/finflow_bot/internal/handlers"
	"github.com/finflowhq/finflow_bot/internal/middleware"
	"github.com/finflowhq/finflow_bot/internal/platform/config"
	"github.com/finflowhq/finflow_bot/internal/repositories/database/pgsql"
	"github.com/finflowhq/finflow_bot/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title FinFlow Assistant API
// @version 1.0
// @description Personal finance chat assistant backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the gateway-issued JWT.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLogging(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, assembleBackends(cfg))

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// assembleBackends builds the AI fallback chain in priority order: both Groq
// credentials first, Gemini last. Backends without credentials are skipped.
func assembleBackends(cfg *config.Config) []ai.Backend {
	var backends []ai.Backend
	if cfg.GroqAPIKey1 != "" {
		backends = append(backends, ai.NewGroqClient("groq-1", cfg.GroqAPIKey1, cfg.GroqModel, cfg.GroqWhisperModel))
	}
	if cfg.GroqAPIKey2 != "" {
		backends = append(backends, ai.NewGroqClient("groq-2", cfg.GroqAPIKey2, cfg.GroqModel, cfg.GroqWhisperModel))
	}
	if cfg.GeminiAPIKey != "" {
		backends = append(backends, ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel))
	}
	return backends
}

func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
		return nil
	}
	if upErr != nil {
		return upErr
	}
	logger.Info("Database migrations applied successfully.")
	return nil
}
