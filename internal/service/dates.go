// Package service contains the business logic for the packlist service.
package service

import (
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// dateLayout is the calendar-date form used throughout: YYYY-MM-DD.
// It sorts lexicographically in chronological order, which OverallWindow
// relies on.
const dateLayout = "2006-01-02"

// ParseDate interprets an ISO calendar date at midnight UTC.
// Empty or unparsable input yields ok=false; callers treat the date as absent.
// Midnight UTC avoids off-by-one-day shifts from local timezones and DST.
func ParseDate(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, iso, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TripDays returns the inclusive day count of a date range.
// A same-day range is 1 day; a negative span, or any missing/unparsable
// bound, is 0 days.
func TripDays(startISO, endISO string) int {
	start, ok := ParseDate(startISO)
	if !ok {
		return 0
	}
	end, ok := ParseDate(endISO)
	if !ok {
		return 0
	}
	span := end.Sub(start)
	if span < 0 {
		return 0
	}
	return int(span/(24*time.Hour)) + 1
}

// OverallWindow returns the earliest start date and latest end date across
// all segments, comparing the raw ISO strings lexicographically. Segments
// with an empty date are skipped per field; both strings are empty when no
// segment has any date set.
func OverallWindow(segments []model.TripSegment) model.Window {
	var w model.Window
	for _, seg := range segments {
		if seg.StartDate != "" && (w.Start == "" || seg.StartDate < w.Start) {
			w.Start = seg.StartDate
		}
		if seg.EndDate != "" && (w.End == "" || seg.EndDate > w.End) {
			w.End = seg.EndDate
		}
	}
	return w
}

// InRangeExclusiveEnd reports whether start <= t < end. A nil bound does not
// filter; with both bounds nil every instant is in range. Used for daily
// forecast rows, whose timestamp marks a day-start boundary.
func InRangeExclusiveEnd(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && !t.Before(*end) {
		return false
	}
	return true
}

// InRangeInclusiveEnd reports whether start <= t <= end, with the same nil
// semantics as InRangeExclusiveEnd. Used for hourly forecast rows, which fall
// inside the final day of a range.
//
// The two predicates are intentionally asymmetric; do not unify them.
func InRangeInclusiveEnd(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}
