package validator

import (
	"errors"
	"fmt"
	"maps"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissingRequiredField Kind = "missing_required_field"
	KindTypeMismatch         Kind = "type_mismatch"
	KindOutOfBounds          Kind = "out_of_bounds"
	KindMalformedIdentifier  Kind = "malformed_identifier"
	KindCrossFieldInvariant  Kind = "cross_field_invariant_violation"
)

var (
	ErrValidationFailed     = errors.New("validation failed")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrOutOfBounds          = errors.New("value out of bounds")
	ErrMalformedIdentifier  = errors.New("malformed identifier")
	ErrCrossFieldInvariant  = errors.New("cross-field invariant violation")
)

var kindErrors = map[Kind]error{
	KindMissingRequiredField: ErrMissingRequiredField,
	KindTypeMismatch:         ErrTypeMismatch,
	KindOutOfBounds:          ErrOutOfBounds,
	KindMalformedIdentifier:  ErrMalformedIdentifier,
	KindCrossFieldInvariant:  ErrCrossFieldInvariant,
}

// ValidationError describes the first failure found for a single field.
// Message is human readable and safe to show to end users verbatim.
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	Kind              Kind           `json:"kind"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// New creates a validation error of the given kind.
func New(kind Kind, field, message string) *ValidationError {
	return &ValidationError{
		Field:             field,
		Message:           message,
		Kind:              kind,
		TranslationKey:    "validation." + string(kind),
		TranslationValues: map[string]any{"field": field},
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidationFailed or the sentinel of e.Kind.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	sentinel, ok := kindErrors[e.Kind]
	return ok && sentinel == target
}

// WithField returns a copy of e reported under the given field path.
// The message is left untouched; the translation field follows the path.
func (e *ValidationError) WithField(field string) *ValidationError {
	clone := *e
	clone.Field = field
	clone.TranslationValues = make(map[string]any, len(e.TranslationValues)+1)
	maps.Copy(clone.TranslationValues, e.TranslationValues)
	clone.TranslationValues["field"] = field
	return &clone
}

// WithMessage returns a copy of e with a replaced message.
func (e *ValidationError) WithMessage(message string) *ValidationError {
	clone := *e
	clone.Message = message
	return &clone
}

// IsValidationError checks if the error chain contains a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Extract returns the ValidationError from the error chain, or nil.
func Extract(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func requiredError(field string) *ValidationError {
	return &ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("%s is required", field),
		Kind:              KindMissingRequiredField,
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": field},
	}
}

func typeError(field, message, key string) *ValidationError {
	return &ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("%s %s", field, message),
		Kind:              KindTypeMismatch,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
	}
}

func boundsError(field, message, key string, limit any) *ValidationError {
	return &ValidationError{
		Field:             field,
		Message:           message,
		Kind:              KindOutOfBounds,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field, "limit": limit},
	}
}
