// Package coords turns the free-text coordinate fields of the calculator form
// into numbers.
package coords

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// fieldPattern accepts an optional minus, ASCII digits and at most one
// fractional part introduced by '.' or ','.
var fieldPattern = regexp.MustCompile(`^-?[0-9]+([.,][0-9]+)?$`)

// ParseField converts one coordinate field into a float64. The second return
// value is false when the text does not match the accepted grammar. Accepted
// text too large for a float64 converts to ±Inf.
func ParseField(text string) (float64, bool) {
	if !fieldPattern.MatchString(text) {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return value, true
}

// ParseVector parses every field in order. A single rejected field makes the
// whole vector invalid; callers never learn which slot failed.
func ParseVector(fields []string) ([]float64, bool) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, ok := ParseField(field)
		if !ok {
			return nil, false
		}
		values[i] = value
	}
	return values, true
}
