package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/guttosm/packlist-service/internal/weather"
)

// WeatherHandler provides HTTP handlers for weather resolution routes.
type WeatherHandler struct {
	resolver weather.Resolver
}

// NewWeatherHandler creates a new WeatherHandler instance.
func NewWeatherHandler(resolver weather.Resolver) *WeatherHandler {
	return &WeatherHandler{resolver: resolver}
}

// segmentWeather pairs a segment index with its resolved weather, or the
// reason resolution failed.
type segmentWeather struct {
	Index    int               `json:"index"`
	Resolved *weather.Resolved `json:"resolved,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ResolveWeather handles POST /api/weather/resolve requests.
//
// @Summary      Resolve segment weather
// @Description  Looks up temperature extremes and rain/sun/humidity flags for each trip segment from the external forecast provider. Segments that cannot be resolved carry an error instead; manual entry remains the fallback.
// @Tags         Weather
// @Accept       json
// @Produce      json
// @Param        request body dto.ResolveWeatherRequest true "Segments to resolve"
// @Success      200 {object} dto.SuccessResponse "Per-segment weather"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Weather provider unavailable"
// @Router       /api/weather/resolve [post]
func (h *WeatherHandler) ResolveWeather(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ResolveWeatherRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSegments, err)
		return
	}

	results := make([]segmentWeather, 0, len(req.Segments))
	unavailable := 0

	for i, segment := range req.Segments {
		resolved, err := h.resolver.Resolve(c.Request.Context(), segment)
		if err != nil {
			results = append(results, segmentWeather{Index: i, Error: lookupErrorMessage(c, err)})
			if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
				unavailable++
			}

			if loggingService, exists := c.Get("logging_service"); exists {
				if ls, ok := loggingService.(service.LoggingService); ok {
					middleware.AuditLogError(ls, c, "resolve_weather", "Weather lookup failed", err, map[string]interface{}{
						"location": segment.Location,
					})
				}
			}
			continue
		}
		results = append(results, segmentWeather{Index: i, Resolved: resolved})
	}

	// Every lookup short-circuited: the provider is down, say so.
	if unavailable == len(req.Segments) && len(req.Segments) > 0 {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyWeatherUnavailable, circuitbreaker.ErrCircuitOpen)
		return
	}

	builder.SuccessOK(results)
}

// lookupErrorMessage maps a lookup error to a translated user-facing message.
func lookupErrorMessage(c *gin.Context, err error) string {
	locale := i18n.GetLocale(c)
	switch {
	case errors.Is(err, weather.ErrLocationNotFound):
		return i18n.GetTranslator().Translate(i18n.ErrKeyLocationNotFound, locale)
	case errors.Is(err, weather.ErrNoDates):
		return err.Error()
	default:
		return i18n.GetTranslator().Translate(i18n.ErrKeyWeatherUnavailable, locale)
	}
}
