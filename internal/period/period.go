// Package period maps the dashboard granularity tokens onto canonical UTC
// calendar buckets. Two calls inside the same bucket always produce the same
// key, regardless of sub-day timing or caller timezone.
package period

import (
	"time"

	"execboard/internal/domain"
)

const keyFormat = "2006-01-02"

// Resolve returns the bucket start date for the granularity as YYYY-MM-DD.
// The reference instant is converted to UTC before any calendar arithmetic.
func Resolve(granularity domain.Granularity, reference time.Time) string {
	return Start(granularity, reference).Format(keyFormat)
}

// Start returns the bucket start as a midnight-UTC time.
func Start(granularity domain.Granularity, reference time.Time) time.Time {
	ref := reference.UTC()
	switch granularity {
	case domain.GranularityWeek:
		return weekStart(ref)
	case domain.GranularityMonth:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	case domain.GranularityQuarter:
		return quarterStart(ref)
	default:
		// today
		return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// weekStart returns the Monday of the ISO week. Sunday rolls back six days,
// not forward one.
func weekStart(ref time.Time) time.Time {
	offset := int(ref.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day()-offset, 0, 0, 0, 0, time.UTC)
}

func quarterStart(ref time.Time) time.Time {
	quarter := (int(ref.Month()) - 1) / 3
	startMonth := time.Month(quarter*3 + 1)
	return time.Date(ref.Year(), startMonth, 1, 0, 0, 0, 0, time.UTC)
}

// ValidGranularity reports whether token is one of the four supported
// granularities. Callers reject invalid tokens at the boundary.
func ValidGranularity(token domain.Granularity) bool {
	switch token {
	case domain.GranularityToday, domain.GranularityWeek, domain.GranularityMonth, domain.GranularityQuarter:
		return true
	default:
		return false
	}
}
