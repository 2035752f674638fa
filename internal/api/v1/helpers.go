package v1

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"execboard/internal/domain"
	"execboard/internal/period"
)

// parseID returns a positive int64 from a path segment.
func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// parseGranularity validates the period token at the boundary; the resolver
// itself never sees an invalid one.
func parseGranularity(value string) (domain.Granularity, error) {
	token := domain.Granularity(value)
	if !period.ValidGranularity(token) {
		return "", fmt.Errorf("invalid granularity %q", value)
	}
	return token, nil
}

// parseReference returns the reference instant for period resolution: the
// optional RFC3339 `at` value, or now.
func parseReference(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid at timestamp %q", value)
	}
	return ref, nil
}

// parseIDList parses a comma-separated id list. Empty input is an error: an
// empty id set is a caller mistake, not an empty result.
func parseIDList(value string) ([]int64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("id list required")
	}
	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := parseID(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// validNumber rejects NaN and infinities before they reach the store.
func validNumber(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
