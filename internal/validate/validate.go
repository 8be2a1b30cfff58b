// Package validate checks user input before any request reaches the API.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/courtside/hoopstats/internal/config"
)

// ValidationError describes input that was rejected. Message is meant to be
// shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

var (
	numericPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	namePattern    = regexp.MustCompile(`^[A-Za-z.']+$`)
)

// Season accepts seasons from config.FirstSeason up to the current year.
func Season(season int, now time.Time) error {
	current := now.Year()
	if season < config.FirstSeason || season > current {
		return &ValidationError{
			Field:   "season",
			Message: fmt.Sprintf("Date is outside of valid range of %d-%d.", config.FirstSeason, current),
		}
	}
	return nil
}

// PlayerName accepts latin letters, periods and apostrophes.
func PlayerName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return &ValidationError{Field: "name", Message: "Name cannot be empty."}
	case numericPattern.MatchString(trimmed):
		return &ValidationError{Field: "name", Message: "Name cannot be a number."}
	case digitPattern.MatchString(trimmed):
		return &ValidationError{Field: "name", Message: "Names cannot contain numbers. Only latin letters please."}
	case !namePattern.MatchString(trimmed):
		return &ValidationError{Field: "name", Message: "Name contains non-allowed characters. Only latin letters please."}
	}
	return nil
}
