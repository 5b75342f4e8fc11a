package jobposting

import (
	"fmt"

	"github.com/dmitrymomot/hirekit/pkg/validator"
)

// ValidateUser validates a user reference object. Only keys present in the
// input are validated and returned; the first inner failure is reported
// under "<field>.<key>" with its message unchanged.
func ValidateUser(input any, field string) validator.Result[*UserRef] {
	obj, ok := asObject(input)
	if !ok {
		return validator.Fail[*UserRef](validator.New(
			validator.KindTypeMismatch, field,
			fmt.Sprintf("%s must be an object", field),
		))
	}

	user := &UserRef{}

	if raw, ok := obj["name"]; ok {
		res := validator.String(raw, "name", validator.StringOptions{MaxLength: MaxNameLength})
		if !res.Valid {
			return validator.Fail[*UserRef](res.Err.WithField(nested(field, "name")))
		}
		user.Name = &res.Value
	}

	if raw, ok := obj["email"]; ok {
		res := validator.Email(raw, "email", false)
		if !res.Valid {
			return validator.Fail[*UserRef](res.Err.WithField(nested(field, "email")))
		}
		user.Email = &res.Value
	}

	if raw, ok := obj["image"]; ok {
		res := validator.String(raw, "image", validator.StringOptions{MaxLength: MaxImageLength})
		if !res.Valid {
			return validator.Fail[*UserRef](res.Err.WithField(nested(field, "image")))
		}
		user.Image = &res.Value
	}

	return validator.Ok(user)
}
