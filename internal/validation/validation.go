// Package validation enforces the shape constraints on inbound city
// names before any outbound provider call is made.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minCityLen = 2
	maxCityLen = 50
)

// Violation describes a single failed constraint on a request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates the violations found in a request. It is the only
// error kind this package returns and maps to HTTP 422 in the
// handler layer.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// City checks a raw city name and returns it with surrounding
// whitespace trimmed. Length limits apply to the raw value; the
// character check ignores internal spaces, so "New York" is valid.
func City(raw string) (string, error) {
	var violations []Violation

	if n := utf8.RuneCountInString(raw); n < minCityLen || n > maxCityLen {
		violations = append(violations, Violation{
			Field:   "city",
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", minCityLen, maxCityLen, n),
		})
	}

	if compact := strings.ReplaceAll(raw, " ", ""); compact == "" || !isAlpha(compact) {
		violations = append(violations, Violation{
			Field:   "city",
			Message: "must contain only alphabetic characters",
		})
	}

	if len(violations) > 0 {
		return "", &Error{Violations: violations}
	}
	return strings.TrimSpace(raw), nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
