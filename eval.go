package crontime

import (
	"fmt"
	"strings"
	"time"
)

// Includes reports whether a point in time is selected by every field.
//
// The point is either a single time.Time, or five values in minute, hour,
// day-of-month, month, day-of-week order. Values may be integers of any
// type, numeric strings, month/weekday names in their own position, or
// time.Month and time.Weekday; a single slice or array of any element type,
// or a single space-separated string, is split into its values. A value that is not numeric after name
// resolution fails with ErrInvalidTime, one outside its field's domain with
// ErrOutOfRange.
func (s *Schedule) Includes(values ...any) (bool, error) {
	if len(values) == 1 {
		if t, ok := values[0].(time.Time); ok {
			return s.Matches(t), nil
		}
	}

	points, err := s.points(values)
	if err != nil {
		return false, err
	}
	return s.includes(points)
}

// Matches reports whether t, read in its own location, is selected by every
// field.
func (s *Schedule) Matches(t time.Time) bool {
	ok, err := s.includes(timePoints(t))
	return ok && err == nil
}

// includes ANDs the fields in order, stopping at the first miss.
func (s *Schedule) includes(points [fieldCount]int) (bool, error) {
	for i, field := range s.fields {
		ok, err := field.Includes(points[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// points resolves query values into five integers.
func (s *Schedule) points(values []any) ([fieldCount]int, error) {
	var points [fieldCount]int

	texts := make([]string, 0, fieldCount)
	for _, value := range flatten(values) {
		text, err := valueText(value)
		if err != nil {
			return points, TimeError(fmt.Sprintf("invalid time for comparison: %v", err))
		}
		texts = append(texts, text)
	}

	words := strings.Fields(strings.Join(texts, " "))
	if len(words) != fieldCount {
		return points, TimeError(fmt.Sprintf("invalid time for comparison: expected %d values, got %d", fieldCount, len(words)))
	}

	for i, word := range words {
		n, err := specs[i].resolveText(word)
		if err != nil {
			return points, err
		}
		points[i] = n
	}
	return points, nil
}
