package service

import (
	"strconv"
	"strings"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// parseTemp parses a free-text temperature field.
// Empty or non-numeric input yields ok=false; such fields are excluded from
// the min/max fold entirely, never treated as zero.
func parseTemp(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SummarizeWeather reduces per-segment weather fields into trip-wide
// extremes and flags. OverallMin/OverallMax stay nil when no segment carries
// a parseable value; each any* flag is true iff at least one segment sets it.
func SummarizeWeather(segments []model.TripSegment) model.WeatherSummary {
	var summary model.WeatherSummary
	for _, seg := range segments {
		if v, ok := parseTemp(seg.TempMin); ok {
			if summary.OverallMin == nil || v < *summary.OverallMin {
				min := v
				summary.OverallMin = &min
			}
		}
		if v, ok := parseTemp(seg.TempMax); ok {
			if summary.OverallMax == nil || v > *summary.OverallMax {
				max := v
				summary.OverallMax = &max
			}
		}
		summary.AnyRain = summary.AnyRain || seg.RainLikely
		summary.AnySun = summary.AnySun || seg.HotSunLikely
		summary.AnyHumid = summary.AnyHumid || seg.HumidLikely
	}
	return summary
}
