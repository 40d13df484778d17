package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Pricing errors
	ErrValidation           = errors.New("invalid pricing input")
	ErrCatalogInconsistency = errors.New("catalog entry is inconsistent")

	// Lookup errors
	ErrCourseNotFound = errors.New("course not found")
	ErrTutorNotFound  = errors.New("tutor not found")
	ErrOrderNotFound  = errors.New("order not found")

	// Order errors
	ErrOrderTargetMissing  = errors.New("order must reference exactly one course or tutor")
	ErrOrderTargetMismatch = errors.New("order target does not match the catalog entry")
	ErrStartNotOffered     = errors.New("course does not start at the selected date and time")
	ErrInvalidTimeOfDay    = errors.New("time of day must be HH:MM")
	ErrUnknownOption       = errors.New("unknown course option")
)

// Field names used in validation and catalog errors.
const (
	FieldStartDate     = "startDate"
	FieldStartTime     = "startTime"
	FieldPersonCount   = "personCount"
	FieldDurationHours = "durationHours"

	FieldFeePerHour       = "feePerHour"
	FieldTotalLengthWeeks = "totalLengthWeeks"
	FieldWeekLengthHours  = "weekLengthHours"
	FieldPricePerHour     = "pricePerHour"
)

// ValidationError reports a pricing input that violates a documented bound.
// The caller is expected to re-prompt; it is never submitted upstream.
type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CatalogInconsistencyError reports a course or tutor whose data cannot be
// priced (missing or non-positive fields). No fallback value is substituted.
type CatalogInconsistencyError struct {
	Entity string // "course" or "tutor"
	ID     int64
	Field  string
}

func (e *CatalogInconsistencyError) Error() string {
	return fmt.Sprintf("%s %d: %s is missing or not positive", e.Entity, e.ID, e.Field)
}

// Is makes errors.Is(err, ErrCatalogInconsistency) hold.
func (e *CatalogInconsistencyError) Is(target error) bool {
	return target == ErrCatalogInconsistency
}

// ValidationField extracts the offending field from a ValidationError, if any.
func ValidationField(err error) (string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field, true
	}
	return "", false
}
