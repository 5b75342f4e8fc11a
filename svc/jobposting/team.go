package jobposting

import (
	"fmt"

	"github.com/dmitrymomot/hirekit/pkg/validator"
)

const teamMembersField = "teamMembers"

// ValidateTeamMembers validates the hiring team list. Non-list input yields
// an empty list. Name and email are required for every member.
func ValidateTeamMembers(input any) validator.Result[[]TeamMember] {
	items := validator.Array(input, teamMembersField, validator.ArrayOptions{}).Value

	members := make([]TeamMember, 0, len(items))
	for i, item := range items {
		m, err := validateTeamMember(item, i)
		if err != nil {
			return validator.Fail[[]TeamMember](err)
		}
		members = append(members, m)
	}

	return validator.Ok(members)
}

func validateTeamMember(item any, i int) (TeamMember, *validator.ValidationError) {
	path := indexed(teamMembersField, i)

	obj, ok := asObject(item)
	if !ok {
		return TeamMember{}, validator.New(validator.KindTypeMismatch, path,
			fmt.Sprintf("Team member at index %d must be an object", i))
	}

	fail := func(key string, err *validator.ValidationError) (TeamMember, *validator.ValidationError) {
		return TeamMember{}, err.
			WithField(nested(path, key)).
			WithMessage(fmt.Sprintf("Team member at index %d: %s", i, err.Message))
	}

	name := validator.String(obj["name"], "name", validator.StringOptions{Required: true, MaxLength: MaxNameLength})
	if !name.Valid {
		return fail("name", name.Err)
	}

	email := validator.Email(obj["email"], "email", true)
	if !email.Valid {
		return fail("email", email.Err)
	}

	role := validator.String(obj["role"], "role", validator.StringOptions{MaxLength: MaxRoleLength})
	if !role.Valid {
		return fail("role", role.Err)
	}

	avatar := validator.String(obj["avatar"], "avatar", validator.StringOptions{MaxLength: MaxImageLength})
	if !avatar.Valid {
		return fail("avatar", avatar.Err)
	}

	color := validator.String(obj["avatarColor"], "avatarColor", validator.StringOptions{MaxLength: MaxAvatarColorLength})
	if !color.Valid {
		return fail("avatarColor", color.Err)
	}

	return TeamMember{
		ID:            defaultID(obj["id"], i),
		Name:          name.Value,
		Email:         email.Value,
		Role:          role.Value,
		Avatar:        avatar.Value,
		AvatarColor:   color.Value,
		IsCurrentUser: validator.Boolean(obj["isCurrentUser"], "isCurrentUser", false).Value,
	}, nil
}
