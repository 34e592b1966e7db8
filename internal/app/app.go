package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/handler"
	"github.com/noah-isme/timetable-api/internal/repository"
	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/cache"
	"github.com/noah-isme/timetable-api/pkg/config"
	"github.com/noah-isme/timetable-api/pkg/database"
)

// App holds the shared infrastructure and services used by the HTTP server and the CLI.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	DB    *sqlx.DB
	Redis *redis.Client

	cacheRepo *repository.CacheRepository

	Metrics     *service.MetricsService
	Cache       *service.CacheService
	Auth        *service.AuthService
	Timetable   *service.TimetableService
	Assignments *service.AssignmentService
}

// New connects to PostgreSQL (and Redis when the view cache is enabled) and builds the services.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(db.DB, logger.Named("migrate")); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisClient, err := cache.NewRedis(cfg.Redis, cfg.Timetable.CacheEnabled)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return Build(cfg, logger, db, redisClient), nil
}

// Build wires repositories and services over already opened connections. redisClient may be nil.
func Build(cfg *config.Config, logger *zap.Logger, db *sqlx.DB, redisClient *redis.Client) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := validator.New()

	catalogRepo := repository.NewCatalogRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, cfg.Redis.KeyPrefix, logger.Named("cache"))

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Timetable.CacheTTL, logger.Named("cache"), redisClient != nil)
	authSvc := service.NewAuthService(logger.Named("auth"), service.AuthConfig{
		AccessTokenSecret: cfg.Auth.Secret,
		Issuer:            "timetable-api",
	})

	timetableSvc := service.NewTimetableService(
		catalogRepo,
		assignmentRepo,
		timetableRepo,
		db,
		cacheSvc,
		metrics,
		validate,
		logger.Named("timetable"),
		service.TimetableConfig{CacheTTL: cfg.Timetable.CacheTTL},
	)
	assignmentSvc := service.NewAssignmentService(catalogRepo, assignmentRepo, validate, logger.Named("assignments"))

	return &App{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Redis:       redisClient,
		cacheRepo:   cacheRepo,
		Metrics:     metrics,
		Cache:       cacheSvc,
		Auth:        authSvc,
		Timetable:   timetableSvc,
		Assignments: assignmentSvc,
	}
}

// ReadinessProbes returns the dependency checks exposed on /ready.
func (a *App) ReadinessProbes() map[string]handler.ReadinessProbe {
	probes := map[string]handler.ReadinessProbe{
		"database": func(ctx context.Context) error { return database.Ping(ctx, a.DB) },
	}
	if a.Redis != nil {
		probes["redis"] = a.cacheRepo.Ping
	}
	return probes
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var firstErr error
	if a.cacheRepo != nil {
		if err := a.cacheRepo.Close(); err != nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
