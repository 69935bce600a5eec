package handler

import (
	"time"

	"github.com/dtroode/cogedon-server/internal/model"
)

var (
	minTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// parseBound accepts RFC 3339 timestamps or YYYY-MM-DD dates. Dates are UTC;
// an upper bound given as a date covers the whole day.
func parseBound(field, raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	d, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return time.Time{}, model.NewValidationError(field, "expected YYYY-MM-DD or RFC 3339")
	}
	if upper {
		d = d.Add(24*time.Hour - time.Microsecond)
	}

	return d, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" {
		return time.Time{}, time.Time{}, model.NewValidationError("fechaDesde", "required")
	}
	if to == "" {
		return time.Time{}, time.Time{}, model.NewValidationError("fechaHasta", "required")
	}

	return parseOpenRange(from, to)
}

// parseOpenRange treats a missing bound as unbounded.
func parseOpenRange(from, to string) (time.Time, time.Time, error) {
	start, end := minTime, maxTime

	var err error
	if from != "" {
		if start, err = parseBound("fechaDesde", from, false); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if to != "" {
		if end, err = parseBound("fechaHasta", to, true); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return start, end, nil
}
