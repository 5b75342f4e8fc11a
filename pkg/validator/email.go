package validator

import "regexp"

const maxEmailLength = 254

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email sanitizes input like a plain-text String field and then checks
// the local@domain.tld shape.
func Email(input any, field string, required bool) Result[string] {
	res := String(input, field, StringOptions{Required: required, MaxLength: maxEmailLength})
	if !res.Valid || res.Value == "" {
		return res
	}
	if !emailRegex.MatchString(res.Value) {
		return Fail[string](malformedError(field, "must be a valid email address", "validation.email"))
	}
	return res
}
