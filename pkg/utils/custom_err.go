package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDatabaseError    = errors.New("database error")
	ErrPlanNotFound     = errors.New("travel plan not found")
	ErrSearchNotFound   = errors.New("search result not found")
	ErrGenerationFailed = errors.New("ai generation failed")
)

// ExtractionError reports a failure to recover a structured payload from raw
// model text. It always propagates; an empty result set is never substituted.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func NewExtractionError(reason string, err error) error {
	return &ExtractionError{Reason: reason, Err: err}
}

// ValidationError carries the path of the offending field and the constraint it
// violated, e.g. Field "destinations[2].rating", Constraint "must be between 1 and 5".
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Constraint)
}

func NewValidationError(field, constraint string) error {
	return &ValidationError{Field: field, Constraint: constraint}
}
