package jobposting

import (
	"fmt"

	"github.com/dmitrymomot/hirekit/pkg/sanitizer"
	"github.com/dmitrymomot/hirekit/pkg/validator"
)

// RootField names the request body in errors for non-object input.
const RootField = "body"

// ValidateJobPosting validates a decoded job posting request and builds the
// normalized record. Fields are checked in a fixed order and the first
// failure is returned. The salary range is compared only after every field
// has passed, and a violation is reported on minimumSalary.
func ValidateJobPosting(input any) validator.Result[*JobPosting] {
	fail := validator.Fail[*JobPosting]

	obj, ok := asObject(input)
	if !ok {
		return fail(validator.New(validator.KindTypeMismatch, RootField,
			fmt.Sprintf("%s must be an object", RootField)))
	}

	title := validator.String(obj["jobTitle"], "jobTitle", validator.StringOptions{
		Required:  true,
		MinLength: MinJobTitleLength,
		MaxLength: MaxJobTitleLength,
	})
	if !title.Valid {
		return fail(title.Err)
	}

	description := validator.String(obj["description"], "description", validator.StringOptions{
		Required:  true,
		MaxLength: MaxDescriptionLength,
		AllowHTML: true,
	})
	if !description.Valid {
		return fail(description.Err)
	}

	department := validator.String(obj["department"], "department", validator.StringOptions{MaxLength: MaxDepartmentLength})
	if !department.Valid {
		return fail(department.Err)
	}

	location := validator.String(obj["location"], "location", validator.StringOptions{MaxLength: MaxLocationLength})
	if !location.Valid {
		return fail(location.Err)
	}

	employmentType := validator.String(obj["employmentType"], "employmentType", validator.StringOptions{MaxLength: MaxEmploymentTypeLength})
	if !employmentType.Valid {
		return fail(employmentType.Err)
	}

	remote := validator.Boolean(obj["remote"], "remote", false)

	minSalary := validator.Number(obj["minimumSalary"], "minimumSalary", validator.NumberOptions{Min: validator.Limit(0)})
	if !minSalary.Valid {
		return fail(minSalary.Err)
	}

	maxSalary := validator.Number(obj["maximumSalary"], "maximumSalary", validator.NumberOptions{Min: validator.Limit(0)})
	if !maxSalary.Valid {
		return fail(maxSalary.Err)
	}

	skills := validateSkills(obj["skills"])
	if !skills.Valid {
		return fail(skills.Err)
	}

	orgID := validator.ObjectID(obj["orgID"], "orgID", true)
	if !orgID.Valid {
		return fail(orgID.Err)
	}

	var createdBy *UserRef
	if raw := obj["createdBy"]; raw != nil {
		user := ValidateUser(raw, "createdBy")
		if !user.Valid {
			return fail(user.Err)
		}
		createdBy = user.Value
	}

	questions := ValidateQuestions(obj["questions"])
	if !questions.Valid {
		return fail(questions.Err)
	}

	team := ValidateTeamMembers(obj["teamMembers"])
	if !team.Valid {
		return fail(team.Err)
	}

	if minSalary.Value != nil && maxSalary.Value != nil && *minSalary.Value > *maxSalary.Value {
		return fail(validator.New(validator.KindCrossFieldInvariant, "minimumSalary",
			"minimumSalary must be less than or equal to maximumSalary"))
	}

	return validator.Ok(&JobPosting{
		JobTitle:        title.Value,
		Description:     description.Value,
		DescriptionText: sanitizer.StripHTML(description.Value),
		Department:      department.Value,
		Location:        location.Value,
		EmploymentType:  employmentType.Value,
		Remote:          remote.Value,
		MinimumSalary:   minSalary.Value,
		MaximumSalary:   maxSalary.Value,
		Skills:          skills.Value,
		OrgID:           *orgID.Value,
		CreatedBy:       createdBy,
		Questions:       questions.Value,
		TeamMembers:     team.Value,
	})
}

func validateSkills(input any) validator.Result[[]string] {
	items := validator.Array(input, "skills", validator.ArrayOptions{MaxLength: MaxSkills})
	if !items.Valid {
		return validator.Fail[[]string](items.Err)
	}

	skills := make([]string, 0, len(items.Value))
	for i, raw := range items.Value {
		skill := validator.String(raw, "skill", validator.StringOptions{Required: true, MaxLength: MaxSkillLength})
		if !skill.Valid {
			return validator.Fail[[]string](skill.Err.
				WithField(indexed("skills", i)).
				WithMessage(fmt.Sprintf("Skill at index %d: %s", i, skill.Err.Message)))
		}
		skills = append(skills, skill.Value)
	}
	return validator.Ok(skills)
}
