// Package validator provides fail-fast field validators for untrusted,
// loosely typed input such as decoded JSON.
//
// Each validator takes the raw value, the field name used in messages and a
// small options struct, and returns a Result holding either the cleaned value
// or the first ValidationError found. Validators never panic and never mutate
// their input.
//
//	title := validator.String(input["jobTitle"], "jobTitle", validator.StringOptions{
//	    Required:  true,
//	    MinLength: 2,
//	    MaxLength: 200,
//	})
//	if !title.Valid {
//	    return title.Err
//	}
//
// Text is normalized to NFC and passed through the sanitizer package before
// any check runs, so the required and length checks see exactly what would be
// stored.
//
// # Errors
//
// A ValidationError carries the field path, a user-facing message and a Kind.
// errors.Is matches every ValidationError against ErrValidationFailed and
// against the sentinel of its kind:
//
//	if errors.Is(err, validator.ErrMissingRequiredField) {
//	    // ...
//	}
//
// TranslationKey and TranslationValues are provided for callers that render
// localized messages.
package validator
