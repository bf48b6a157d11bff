package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/service"
)

// OverridesHandler provides HTTP handlers for bag-override routes.
type OverridesHandler struct {
	overridesService service.OverridesService
	packlistHandler  *Handler
}

// NewOverridesHandler creates a new OverridesHandler instance.
// The packlist handler is optional; when set, its override cache is
// invalidated on every write.
func NewOverridesHandler(overridesService service.OverridesService, packlistHandler *Handler) *OverridesHandler {
	return &OverridesHandler{
		overridesService: overridesService,
		packlistHandler:  packlistHandler,
	}
}

// invalidateCaches drops cached override state after a write.
func (h *OverridesHandler) invalidateCaches() {
	if h.packlistHandler != nil {
		h.packlistHandler.InvalidateOverridesCache()
	}
}

// ListOverrides handles GET /api/overrides requests.
//
// @Summary      List bag overrides
// @Description  Returns all stored bag overrides, most recently updated first.
// @Tags         Overrides
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Stored overrides"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Override store unavailable"
// @Router       /api/overrides [get]
func (h *OverridesHandler) ListOverrides(c *gin.Context) {
	builder := NewResponseBuilder(c)

	overrides, err := h.overridesService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(overrides)
}

// SetOverride handles PUT /api/overrides requests.
//
// @Summary      Store a bag override
// @Description  Forces the item identified by category and name into the given bag on every future generation. Storing an override for the same identity replaces the previous one.
// @Tags         Overrides
// @Accept       json
// @Produce      json
// @Param        request body dto.SetOverrideRequest true "Override to store"
// @Success      200 {object} dto.SuccessResponse "Stored override"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/overrides [put]
func (h *OverridesHandler) SetOverride(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SetOverrideRequest](c)
	if err != nil {
		if verr, ok := err.(*dto.ValidationError); ok && verr == dto.ErrInvalidBag {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBag, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	doc, err := h.overridesService.Set(c.Request.Context(), req.ItemKey(), req.Bag)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCaches()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "set_override", "Bag override stored", map[string]interface{}{
				"category": req.Category,
				"name":     req.Name,
				"bag":      string(req.Bag),
			})
		}
	}

	builder.SuccessOK(doc)
}

// DeleteOverride handles DELETE /api/overrides requests.
//
// @Summary      Delete a bag override
// @Description  Removes the stored override for the item identified by the category and name query parameters. The item reverts to the engine's default bag on the next generation.
// @Tags         Overrides
// @Produce      json
// @Param        category query string true "Item category"
// @Param        name query string true "Item name"
// @Success      200 {object} dto.SuccessResponse "Override removed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing identity"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/overrides [delete]
func (h *OverridesHandler) DeleteOverride(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category := c.Query("category")
	name := c.Query("name")
	if category == "" || name == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItemKey, dto.ErrEmptyItemKey)
		return
	}

	key := model.ItemKey{Category: category, Name: name}
	if err := h.overridesService.Delete(c.Request.Context(), key); err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCaches()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "delete_override", "Bag override removed", map[string]interface{}{
				"category": category,
				"name":     name,
			})
		}
	}

	builder.SuccessOK(gin.H{"deleted": key.StorageKey()})
}
