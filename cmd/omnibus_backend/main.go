package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/omnibuskit/price_history_app/internal/adapters/catalog"
	portssvc "github.com/omnibuskit/price_history_app/internal/core/ports/services"
	"github.com/omnibuskit/price_history_app/internal/core/services"
	"github.com/omnibuskit/price_history_app/internal/handlers"
	"github.com/omnibuskit/price_history_app/internal/hooks"
	"github.com/omnibuskit/price_history_app/internal/jobs"
	"github.com/omnibuskit/price_history_app/internal/middleware"
	"github.com/omnibuskit/price_history_app/internal/platform/config"
	"github.com/omnibuskit/price_history_app/internal/repositories/database/pgsql"
	"github.com/omnibuskit/price_history_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/gin-contrib/cors"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Omnibus Price History API
// @version 1.0
// @description Records historical variant prices and serves the lowest price over a trailing window for EU Omnibus Directive compliance.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the core: repository -> service -> HTTP / hooks / job
	priceHistoryRepo := pgsql.NewPgxPriceHistoryRepository(dbPool)
	priceHistoryService := services.NewPriceHistoryService(priceHistoryRepo)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIToken)

	serviceContainer := &portssvc.ServiceContainer{
		PriceHistory: priceHistoryService,
		Catalog:      catalogClient,
	}

	// Lifecycle hooks feed the write path from platform events
	dispatcher := hooks.NewMuxDispatcher()
	hooks.Register(dispatcher, priceHistoryService, logger)

	// Retention job runs on the configured cron schedule
	runner := jobs.NewRunner(logger, context.Background())
	retentionJob := jobs.NewRetentionJob(priceHistoryService, cfg.RetentionDays, logger)
	if _, err := runner.Add(cfg.CleanupSchedule, retentionJob.Run); err != nil {
		logger.Error("Failed to schedule retention job", slog.String("error", err.Error()))
		os.Exit(1)
	}
	runner.Start()
	defer runner.Stop()

	// Rate limiter for the storefront read surface
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	storeLimiter := limiter.New(memory.NewStore(), rate)

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the storefront)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, dispatcher, storeLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending database migrations.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations,
	// using pgx/v5/stdlib to be compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
