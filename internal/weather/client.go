// Package weather implements the external weather lookup collaborator: it
// resolves a trip segment's location into temperature extremes and
// rain/sun/humidity flags using a geocoding + forecast HTTP API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/metrics"
)

var (
	// ErrLocationNotFound is returned when geocoding yields no match.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNoDates is returned when a segment has no usable date range.
	ErrNoDates = errors.New("segment has no date range")
)

// Thresholds holds the flag-derivation cutoffs of the lookup contract.
type Thresholds struct {
	// RainProbability is the daily precipitation probability (%) at or
	// above which rain is considered likely.
	RainProbability float64
	// UVIndex is the daily maximum UV index at or above which hot sun is
	// considered likely.
	UVIndex float64
	// HumidityPct is the hourly relative humidity (%) counted as a humid hour.
	HumidityPct float64
	// HumidShare is the share of humid hours at or above which the segment
	// is considered humid.
	HumidShare float64
}

// DefaultThresholds returns the standard lookup thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RainProbability: 40,
		UVIndex:         8,
		HumidityPct:     80,
		HumidShare:      0.5,
	}
}

// Resolved carries the weather fields resolved for one segment. Temperature
// pointers are nil when the forecast had no usable rows in range.
type Resolved struct {
	Location     string   `json:"location"`
	TempMin      *float64 `json:"temp_min,omitempty"`
	TempMax      *float64 `json:"temp_max,omitempty"`
	RainLikely   bool     `json:"rain_likely"`
	HotSunLikely bool     `json:"hot_sun_likely"`
	HumidLikely  bool     `json:"humid_likely"`
}

// Resolver resolves the weather for one trip segment.
type Resolver interface {
	Resolve(ctx context.Context, segment model.TripSegment) (*Resolved, error)
}

// Client looks up weather via a geocoding endpoint and a forecast endpoint.
type Client struct {
	httpClient     *http.Client
	geocodeBaseURL string
	forecastBaseURL string
	thresholds     Thresholds
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithThresholds overrides the flag-derivation thresholds.
func WithThresholds(t Thresholds) ClientOption {
	return func(c *Client) { c.thresholds = t }
}

// WithCircuitBreaker protects lookups with the given breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) ClientOption {
	return func(c *Client) { c.circuitBreaker = cb }
}

// NewClient creates a weather client against the given base URLs.
func NewClient(geocodeBaseURL, forecastBaseURL string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		geocodeBaseURL:  geocodeBaseURL,
		forecastBaseURL: forecastBaseURL,
		thresholds:      DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// geocodeResponse is the geocoding API payload.
type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// forecastResponse is the forecast API payload: parallel arrays of daily and
// hourly rows.
type forecastResponse struct {
	Daily struct {
		Time                        []string   `json:"time"`
		TemperatureMin              []*float64 `json:"temperature_2m_min"`
		TemperatureMax              []*float64 `json:"temperature_2m_max"`
		PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
		UVIndexMax                  []*float64 `json:"uv_index_max"`
	} `json:"daily"`
	Hourly struct {
		Time             []string   `json:"time"`
		RelativeHumidity []*float64 `json:"relative_humidity_2m"`
	} `json:"hourly"`
}

// Resolve looks up the weather for one segment. The segment must carry a
// location and at least one date; lookups run through the circuit breaker
// when one is configured.
func (c *Client) Resolve(ctx context.Context, segment model.TripSegment) (*Resolved, error) {
	if segment.Location == "" {
		return nil, ErrLocationNotFound
	}
	if segment.StartDate == "" && segment.EndDate == "" {
		return nil, ErrNoDates
	}

	start := time.Now()
	var resolved *Resolved
	lookup := func() error {
		var err error
		resolved, err = c.resolve(ctx, segment)
		return err
	}

	var err error
	if c.circuitBreaker != nil {
		err = c.circuitBreaker.Execute(ctx, lookup)
	} else {
		err = lookup()
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordWeatherLookup(time.Since(start), status)

	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// resolve performs the two-step lookup without breaker protection.
func (c *Client) resolve(ctx context.Context, segment model.TripSegment) (*Resolved, error) {
	lat, lon, name, err := c.geocode(ctx, segment.Location)
	if err != nil {
		return nil, err
	}

	forecast, err := c.forecast(ctx, lat, lon, segment.StartDate, segment.EndDate)
	if err != nil {
		return nil, err
	}

	resolved := reduceForecast(forecast, segment.StartDate, segment.EndDate, c.thresholds)
	resolved.Location = name
	return resolved, nil
}

// geocode resolves a free-text location to coordinates.
func (c *Client) geocode(ctx context.Context, location string) (lat, lon float64, name string, err error) {
	q := url.Values{}
	q.Set("name", location)
	q.Set("count", "1")

	var payload geocodeResponse
	if err := c.getJSON(ctx, c.geocodeBaseURL+"/v1/search?"+q.Encode(), &payload); err != nil {
		return 0, 0, "", err
	}
	if len(payload.Results) == 0 {
		return 0, 0, "", ErrLocationNotFound
	}

	r := payload.Results[0]
	return r.Latitude, r.Longitude, r.Name, nil
}

// forecast fetches daily and hourly rows for the coordinate and date range.
func (c *Client) forecast(ctx context.Context, lat, lon float64, startDate, endDate string) (*forecastResponse, error) {
	if startDate == "" {
		startDate = endDate
	}
	if endDate == "" {
		endDate = startDate
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_min,temperature_2m_max,precipitation_probability_max,uv_index_max")
	q.Set("hourly", "relative_humidity_2m")
	q.Set("timezone", "UTC")
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var payload forecastResponse
	if err := c.getJSON(ctx, c.forecastBaseURL+"/v1/forecast?"+q.Encode(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// getJSON performs a GET request and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, rawURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather lookup: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
