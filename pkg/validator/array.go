package validator

import "fmt"

// ArrayOptions configures Array. Zero MinLength or MaxLength means unbounded.
type ArrayOptions struct {
	Required  bool
	MinLength int
	MaxLength int
}

// Array checks that input is a list and that its length is within bounds.
// A non-list optional value is coerced to an empty list. The returned slice
// is a copy, so callers may modify it freely.
func Array(input any, field string, opts ArrayOptions) Result[[]any] {
	items, ok := asSlice(input)
	if !ok {
		if !opts.Required {
			return Ok([]any{})
		}
		if input == nil {
			return Fail[[]any](requiredError(field))
		}
		return Fail[[]any](typeError(field, "must be a list", "validation.list"))
	}

	if opts.MinLength > 0 && len(items) < opts.MinLength {
		return Fail[[]any](boundsError(field,
			fmt.Sprintf("%s must have at least %d items", field, opts.MinLength),
			"validation.min_items", opts.MinLength,
		))
	}
	if opts.MaxLength > 0 && len(items) > opts.MaxLength {
		return Fail[[]any](boundsError(field,
			fmt.Sprintf("%s must have at most %d items", field, opts.MaxLength),
			"validation.max_items", opts.MaxLength,
		))
	}

	return Ok(items)
}

func asSlice(input any) ([]any, bool) {
	switch v := input.(type) {
	case []any:
		return append([]any{}, v...), true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}
