// Package app provides router configuration.
package app

import (
	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/http"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/guttosm/packlist-service/internal/weather"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	generator service.PacklistGenerator,
	dbComponents *DatabaseComponents,
	resolver weather.Resolver,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var overridesService service.OverridesService
	var packedService service.PackedStateService

	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.OverridesRepo != nil {
			overridesService = service.NewOverridesService(dbComponents.OverridesRepo)
		}
		if dbComponents.PackedStateRepo != nil {
			packedService = service.NewPackedStateService(dbComponents.PackedStateRepo)
		}
	}

	handler := http.NewHandler(generator, overridesService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.OverridesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_overrides", dbComponents.OverridesCircuitBreaker)
		}
		if dbComponents.PackedStateCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_packed_state", dbComponents.PackedStateCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		EnableAuth:         cfg.Auth.Enabled,
		APIKeys:            cfg.Auth.APIKeys,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		LoggingService:     loggingService,
		Generator:          generator,
		OverridesService:   overridesService,
		PackedStateService: packedService,
		WeatherResolver:    resolver,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
