package sheet

import (
	"errors"
	"fmt"
)

// ValidationError reports a request that cannot produce a sheet
// (month/year out of range, missing identification, bad schedule values).
// Message already names the field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormatError reports a malformed token in a strictly parsed input
// (time pairs, weekday lists).
type FormatError struct {
	Field   string
	Token   string
	Message string
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// withField tags a FormatError with the input field it came from
func withField(err error, field string) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		tagged := *fe
		tagged.Field = field
		return &tagged
	}
	return err
}
