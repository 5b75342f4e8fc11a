package validator

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/hirekit/pkg/sanitizer"
)

// StringOptions configures String. Zero MinLength or MaxLength means unbounded.
type StringOptions struct {
	Required  bool
	MinLength int
	MaxLength int
	AllowHTML bool
}

// String coerces input to text, normalizes it to NFC and sanitizes it with
// sanitizer.RichText when AllowHTML is set, sanitizer.NoMarkup otherwise.
// The required check and the length bounds apply to the sanitized value,
// so markup-only input such as "<script>x</script>" counts as empty.
// Lengths are counted in runes.
func String(input any, field string, opts StringOptions) Result[string] {
	raw, ok := stringify(input)
	if !ok {
		return Fail[string](typeError(field, "must be text", "validation.string"))
	}

	policy := sanitizer.NoMarkup
	if opts.AllowHTML {
		policy = sanitizer.RichText
	}
	value := sanitizer.Apply(raw,
		norm.NFC.String,
		sanitizer.RemoveControlChars,
		policy.Sanitize,
	)

	if value == "" {
		if opts.Required {
			return Fail[string](requiredError(field))
		}
		return Ok("")
	}

	length := utf8.RuneCountInString(value)
	if opts.MinLength > 0 && length < opts.MinLength {
		return Fail[string](boundsError(field,
			fmt.Sprintf("%s must be at least %d characters long", field, opts.MinLength),
			"validation.min_length", opts.MinLength,
		))
	}
	if opts.MaxLength > 0 && length > opts.MaxLength {
		return Fail[string](boundsError(field,
			fmt.Sprintf("%s must be at most %d characters long", field, opts.MaxLength),
			"validation.max_length", opts.MaxLength,
		))
	}

	return Ok(value)
}
