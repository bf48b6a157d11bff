package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/service"
)

// PackedHandler provides HTTP handlers for packed-state routes.
type PackedHandler struct {
	packedService service.PackedStateService
}

// NewPackedHandler creates a new PackedHandler instance.
func NewPackedHandler(packedService service.PackedStateService) *PackedHandler {
	return &PackedHandler{packedService: packedService}
}

// GetPackedState handles GET /api/packed requests.
//
// @Summary      Get packed state
// @Description  Returns the packed flag for every item that has been checked off, keyed by bag, category, and name.
// @Tags         Packed
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Packed-state map"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/packed [get]
func (h *PackedHandler) GetPackedState(c *gin.Context) {
	builder := NewResponseBuilder(c)

	state, err := h.packedService.GetAll(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(state)
}

// SetPacked handles PUT /api/packed requests.
//
// @Summary      Mark an item packed or unpacked
// @Description  Stores the packed flag for one item. Packed state survives regeneration; an item keeps its checkmark as long as it stays in the same bag.
// @Tags         Packed
// @Accept       json
// @Produce      json
// @Param        request body dto.SetPackedRequest true "Item and packed flag"
// @Success      200 {object} dto.SuccessResponse "Stored packed state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/packed [put]
func (h *PackedHandler) SetPacked(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SetPackedRequest](c)
	if err != nil {
		if verr, ok := err.(*dto.ValidationError); ok && verr == dto.ErrInvalidBag {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBag, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	doc, err := h.packedService.Set(c.Request.Context(), req.StateKey(), req.Packed)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "set_packed", "Packed state stored", map[string]interface{}{
				"key":    req.StateKey(),
				"packed": req.Packed,
			})
		}
	}

	builder.SuccessOK(doc)
}

// ClearPacked handles DELETE /api/packed requests.
//
// @Summary      Clear all packed state
// @Description  Removes every stored packed flag, unchecking the whole list.
// @Tags         Packed
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Packed state cleared"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/packed [delete]
func (h *PackedHandler) ClearPacked(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.packedService.Clear(c.Request.Context()); err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "clear_packed", "Packed state cleared", nil)
		}
	}

	builder.SuccessOK(gin.H{"cleared": true})
}
