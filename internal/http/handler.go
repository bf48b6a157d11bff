package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/metrics"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/service"
)

// overridesCache provides thread-safe caching of the stored override map.
type overridesCache struct {
	overrides atomic.Value // holds map[model.ItemKey]model.Bag
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newOverridesCache creates a new overrides cache with the given TTL.
func newOverridesCache(ttl time.Duration) *overridesCache {
	c := &overridesCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached override map if valid, or nil if expired/empty.
func (c *overridesCache) get() map[model.ItemKey]model.Bag {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if overrides := c.overrides.Load(); overrides != nil {
				if m, ok := overrides.(map[model.ItemKey]model.Bag); ok {
					return m
				}
			}
		}
	}
	return nil
}

// set stores the override map in the cache with TTL.
func (c *overridesCache) set(overrides map[model.ItemKey]model.Bag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.overrides.Store(overrides)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *overridesCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for packing list routes.
type Handler struct {
	generator        service.PacklistGenerator
	overridesService service.OverridesService
	overridesCache   *overridesCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithOverridesCacheTTL sets the TTL for override map caching.
func WithOverridesCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.overridesCache = newOverridesCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(generator service.PacklistGenerator, overridesService service.OverridesService, opts ...HandlerOption) *Handler {
	h := &Handler{
		generator:        generator,
		overridesService: overridesService,
		overridesCache:   newOverridesCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getOverrides retrieves the override map from cache or database.
// Returns nil when no overrides are stored or the store is unavailable;
// the engine's default bag assignments apply in that case.
func (h *Handler) getOverrides(ctx context.Context) map[model.ItemKey]model.Bag {
	if overrides := h.overridesCache.get(); overrides != nil {
		return overrides
	}

	if h.overridesService == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	overrides, err := h.overridesService.GetAll(ctx)
	if err != nil || len(overrides) == 0 {
		return nil
	}

	h.overridesCache.set(overrides)
	return overrides
}

// InvalidateOverridesCache invalidates the override map cache.
// Call this when overrides are updated.
func (h *Handler) InvalidateOverridesCache() {
	h.overridesCache.invalidate()
}

// generateWithOverrides runs a generation for the request and applies any
// stored bag overrides to the result.
func (h *Handler) generateWithOverrides(ctx context.Context, req *dto.GeneratePacklistRequest) model.Packlist {
	list := h.generator.Generate(req.Segments, req.Params)

	if overrides := h.getOverrides(ctx); len(overrides) > 0 {
		list.Items = h.generator.ApplyOverrides(list.Items, overrides)
	}

	return list
}

// GeneratePacklist handles POST /api/packlists/generate requests.
//
// @Summary      Generate a packing list
// @Description  Derives a categorized, bag-assigned packing list from the trip's segments and trip-wide parameters. The same request always yields the same list. Stored bag overrides are applied on top of the engine's default bag assignments.
// @Tags         Packlists
// @Accept       json
// @Produce      json
// @Param        request body dto.GeneratePacklistRequest true "Trip description"
// @Success      200 {object} dto.SuccessResponse "Generated packing list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/packlists/generate [post]
func (h *Handler) GeneratePacklist(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.GeneratePacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordGeneration(0, "validation_error", 0)
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSegments, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "generate", "Packing list requested", map[string]interface{}{
				"segments": len(req.Segments),
				"washes":   req.Params.Washes,
			})
		}
	}

	start := time.Now()
	list := h.generateWithOverrides(c.Request.Context(), &req)
	duration := time.Since(start)

	metrics.RecordGeneration(duration, "success", len(list.Items))
	builder.SuccessOK(list)
}

// ExportPacklist handles POST /api/packlists/export requests.
//
// @Summary      Export a packing list as text
// @Description  Generates the packing list for the trip and renders it in the plain-text copy/print format, grouped by bag and category with quantity suffixes.
// @Tags         Packlists
// @Accept       json
// @Produce      plain
// @Param        request body dto.GeneratePacklistRequest true "Trip description"
// @Success      200 {string} string "Plain-text packing list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/packlists/export [post]
func (h *Handler) ExportPacklist(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.GeneratePacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSegments, err)
		return
	}

	list := h.generateWithOverrides(c.Request.Context(), &req)
	text := h.generator.Export(list.Items)

	c.String(http.StatusOK, text)
}
