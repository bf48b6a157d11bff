// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	OverridesRepo             repository.OverridesRepositoryInterface
	PackedStateRepo           repository.PackedStateRepositoryInterface
	LoggingService            service.LoggingService
	OverridesCircuitBreaker   *circuitbreaker.CircuitBreaker
	PackedStateCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; overrides and
// packed state are then unavailable and the engine runs with defaults only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	overridesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-overrides",
	})

	packedCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-packed-state",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	overridesRepo := repository.NewOverridesRepository(db)
	overridesRepoWithCB := repository.NewOverridesRepositoryWithCircuitBreaker(overridesRepo, overridesCB)

	packedRepo := repository.NewPackedStateRepository(db)
	packedRepoWithCB := repository.NewPackedStateRepositoryWithCircuitBreaker(packedRepo, packedCB)

	return &DatabaseComponents{
		OverridesRepo:             overridesRepoWithCB,
		PackedStateRepo:           packedRepoWithCB,
		LoggingService:            loggingService,
		OverridesCircuitBreaker:   overridesCB,
		PackedStateCircuitBreaker: packedCB,
		LogsCircuitBreaker:        logsCB,
	}
}
