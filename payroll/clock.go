package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// hoursPrecision is the fixed fractional precision for hour values. Rounding
// every duration before it enters a sum keeps downstream totals free of
// floating-point drift.
const hoursPrecision = 4

// ParseTimeOfDay parses "H:MM" or "HH:MM" (surrounding whitespace ignored).
// A trailing seconds component, as some punch exports emit, is ignored.
// Blank input, non-numeric components, an hour outside [0,23] or a minute
// outside [0,59] return an error wrapping ErrInvalidTime.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, fmt.Errorf("%w: empty string", ErrInvalidTime)
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q out of range", ErrInvalidTime, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// DurationHours returns the elapsed hours from start to end, rounded to 4
// decimal places. End at or before start is read as crossing midnight, so
// DurationHours(22:00, 06:00) is 8 and equal endpoints yield a full 24 hours.
func DurationHours(start, end TimeOfDay) float64 {
	minutes := end.MinutesFromMidnight() - start.MinutesFromMidnight()
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return roundHours(float64(minutes) / 60.0)
}

// roundHours rounds to the fixed hour precision.
func roundHours(h float64) float64 {
	shift := math.Pow(10, hoursPrecision)
	return math.Round(h*shift) / shift
}
