package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/packlist-service/internal/service"
	"github.com/guttosm/packlist-service/internal/weather"
)

// PacklistRoutes handles packing-list route registration.
type PacklistRoutes struct {
	handler          *Handler
	overridesHandler *OverridesHandler
	packedHandler    *PackedHandler
	weatherHandler   *WeatherHandler
}

// NewPacklistRoutes creates a new PacklistRoutes instance. Handlers for
// overrides, packed state, and weather are only wired when their backing
// service is configured.
func NewPacklistRoutes(
	generator service.PacklistGenerator,
	overridesService service.OverridesService,
	packedService service.PackedStateService,
	resolver weather.Resolver,
) *PacklistRoutes {
	handler := NewHandler(generator, overridesService)

	var overridesHandler *OverridesHandler
	if overridesService != nil {
		overridesHandler = NewOverridesHandler(overridesService, handler)
	}

	var packedHandler *PackedHandler
	if packedService != nil {
		packedHandler = NewPackedHandler(packedService)
	}

	var weatherHandler *WeatherHandler
	if resolver != nil {
		weatherHandler = NewWeatherHandler(resolver)
	}

	return &PacklistRoutes{
		handler:          handler,
		overridesHandler: overridesHandler,
		packedHandler:    packedHandler,
		weatherHandler:   weatherHandler,
	}
}

// RegisterPublicRoutes registers all packing-list routes.
func (r *PacklistRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/packlists/generate", r.handler.GeneratePacklist)
	rg.POST("/packlists/export", r.handler.ExportPacklist)

	if r.overridesHandler != nil {
		rg.GET("/overrides", r.overridesHandler.ListOverrides)
		rg.PUT("/overrides", r.overridesHandler.SetOverride)
		rg.DELETE("/overrides", r.overridesHandler.DeleteOverride)
	}

	if r.packedHandler != nil {
		rg.GET("/packed", r.packedHandler.GetPackedState)
		rg.PUT("/packed", r.packedHandler.SetPacked)
		rg.DELETE("/packed", r.packedHandler.ClearPacked)
	}

	if r.weatherHandler != nil {
		rg.POST("/weather/resolve", r.weatherHandler.ResolveWeather)
	}
}

// GetHandler returns the underlying packlist handler.
func (r *PacklistRoutes) GetHandler() *Handler {
	return r.handler
}
