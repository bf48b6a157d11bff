// Package app provides weather client initialization.
package app

import (
	"net/http"

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/weather"
)

// InitializeWeather creates the external weather client, or nil when weather
// resolution is disabled. The client shares the database circuit breaker
// thresholds so a flapping provider opens its own breaker the same way.
func InitializeWeather(cfg config.WeatherConfig, dbCfg config.DatabaseConfig) weather.Resolver {
	if !cfg.Enabled {
		return nil
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: dbCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: dbCfg.CircuitBreakerSuccessThreshold,
		Timeout:          dbCfg.CircuitBreakerTimeout,
		Name:             "weather-provider",
	})

	return weather.NewClient(
		cfg.GeocodeBaseURL,
		cfg.ForecastBaseURL,
		weather.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		weather.WithThresholds(weather.Thresholds{
			RainProbability: cfg.RainProbability,
			UVIndex:         cfg.UVIndex,
			HumidityPct:     cfg.HumidityPct,
			HumidShare:      cfg.HumidShare,
		}),
		weather.WithCircuitBreaker(cb),
	)
}
