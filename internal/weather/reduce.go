package weather

import (
	"time"

	"github.com/guttosm/packlist-service/internal/service"
)

const (
	dailyLayout  = "2006-01-02"
	hourlyLayout = "2006-01-02T15:04"
)

// reduceForecast collapses forecast rows into the resolved per-segment
// weather. Daily rows are filtered with the exclusive-end range predicate;
// hourly rows use the inclusive-end predicate.
func reduceForecast(forecast *forecastResponse, startDate, endDate string, thresholds Thresholds) *Resolved {
	resolved := &Resolved{}

	var rangeStart, rangeEnd *time.Time
	if t, ok := service.ParseDate(startDate); ok {
		rangeStart = &t
	}
	if t, ok := service.ParseDate(endDate); ok {
		rangeEnd = &t
	}

	daily := forecast.Daily
	for i, row := range daily.Time {
		t, err := time.Parse(dailyLayout, row)
		if err != nil {
			continue
		}
		if !service.InRangeExclusiveEnd(t, rangeStart, rangeEnd) {
			continue
		}

		if v := at(daily.TemperatureMin, i); v != nil {
			if resolved.TempMin == nil || *v < *resolved.TempMin {
				value := *v
				resolved.TempMin = &value
			}
		}
		if v := at(daily.TemperatureMax, i); v != nil {
			if resolved.TempMax == nil || *v > *resolved.TempMax {
				value := *v
				resolved.TempMax = &value
			}
		}
		if v := at(daily.PrecipitationProbabilityMax, i); v != nil && *v >= thresholds.RainProbability {
			resolved.RainLikely = true
		}
		if v := at(daily.UVIndexMax, i); v != nil && *v >= thresholds.UVIndex {
			resolved.HotSunLikely = true
		}
	}

	hourly := forecast.Hourly
	usable := 0
	humid := 0
	for i, row := range hourly.Time {
		t, err := time.Parse(hourlyLayout, row)
		if err != nil {
			continue
		}
		if !service.InRangeInclusiveEnd(t, rangeStart, rangeEnd) {
			continue
		}
		v := at(hourly.RelativeHumidity, i)
		if v == nil {
			continue
		}
		usable++
		if *v >= thresholds.HumidityPct {
			humid++
		}
	}
	if usable > 0 && float64(humid)/float64(usable) >= thresholds.HumidShare {
		resolved.HumidLikely = true
	}

	return resolved
}

// at returns the i-th value of a parallel array, tolerating short arrays.
func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
