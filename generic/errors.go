/*
errors.go - Centralized error types

PURPOSE:
  All error types in one place for consistency and discoverability.
  Evaluation itself never fails; these errors describe input that must be
  rejected before an evaluation is attempted, and lookups that miss.

ERROR CATEGORIES:
  1. Field errors - one submitted field violates a rule (required, format, range)
  2. Lookup errors - a referenced preset or locale does not exist

USAGE:
  Callers branch with errors.Is on the sentinels:

    var verrs generic.ValidationErrors
    if errors.As(err, &verrs) {
        for _, fe := range verrs {
            if errors.Is(fe, generic.ErrRequired) { ... }
        }
    }

SEE ALSO:
  - childcare/form.go: produces ValidationErrors
  - api/handlers.go: maps errors to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrRequired is returned when a mandatory field is empty.
	ErrRequired = errors.New("field is required")

	// ErrConditionallyRequired is returned when a field becomes mandatory
	// because of the value of another field.
	ErrConditionallyRequired = errors.New("field is required for this selection")

	// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidEnum is returned when a value is outside a closed enumeration.
	ErrInvalidEnum = errors.New("value not allowed")

	// ErrOutOfRange is returned when a number falls outside its domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotFound is returned when a referenced preset does not exist.
	ErrNotFound = errors.New("not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FieldError describes a single rejected input field.
type FieldError struct {
	Field string // wire name, e.g. "expectedBirthDate"
	Code  string // stable code for localization, e.g. "required"
	Value string // offending raw value, empty when missing
	Err   error  // one of the sentinels above
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v (got %q)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Key is the catalog key for this error, e.g. "error.weeklyWorkDays.out_of_range".
func (e *FieldError) Key() string {
	return "error." + e.Field + "." + e.Code
}

// ValidationErrors aggregates every field error found in one submission,
// in field order.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, fe := range v {
		errs[i] = fe
	}
	return errs
}

// Fields returns the names of the rejected fields, in order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, fe := range v {
		out[i] = fe.Field
	}
	return out
}

// ErrOrNil returns v as an error, or nil when nothing was collected.
func (v ValidationErrors) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrRequired) ||
		errors.Is(err, ErrConditionallyRequired) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidEnum) ||
		errors.Is(err, ErrOutOfRange)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
