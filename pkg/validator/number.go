package validator

import (
	"fmt"
	"math"
)

// NumberOptions configures Number. Nil bounds are not checked.
type NumberOptions struct {
	Required bool
	Min      *float64
	Max      *float64
	Integer  bool
}

// Limit returns a pointer to v for use as a NumberOptions bound.
func Limit(v float64) *float64 {
	return &v
}

// Number accepts numbers and numeric strings. Absent input (nil or a blank
// string) yields a nil value unless Required is set. NaN, infinities and
// unparsable strings are type mismatches.
func Number(input any, field string, opts NumberOptions) Result[*float64] {
	value, empty, ok := numeric(input)
	if empty {
		if opts.Required {
			return Fail[*float64](requiredError(field))
		}
		return Ok[*float64](nil)
	}
	if !ok {
		return Fail[*float64](typeError(field, "must be a valid number", "validation.number"))
	}

	if opts.Integer && value != math.Trunc(value) {
		return Fail[*float64](typeError(field, "must be a whole number", "validation.integer"))
	}
	if opts.Min != nil && value < *opts.Min {
		return Fail[*float64](boundsError(field,
			fmt.Sprintf("%s must be at least %s", field, formatLimit(*opts.Min)),
			"validation.min", *opts.Min,
		))
	}
	if opts.Max != nil && value > *opts.Max {
		return Fail[*float64](boundsError(field,
			fmt.Sprintf("%s must be at most %s", field, formatLimit(*opts.Max)),
			"validation.max", *opts.Max,
		))
	}

	return Ok(&value)
}
