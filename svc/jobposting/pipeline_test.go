package jobposting_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hirekit/pkg/validator"
	"github.com/dmitrymomot/hirekit/svc/jobposting"
)

const orgHex = "507f1f77bcf86cd799439011"

func validInput() map[string]any {
	return map[string]any{
		"jobTitle":       "Senior Go Engineer",
		"description":    `<p onclick="steal()">Build <strong>APIs</strong></p><script>alert(1)</script>`,
		"department":     "Engineering",
		"location":       "Berlin",
		"employmentType": "full-time",
		"remote":         "true",
		"minimumSalary":  json.Number("50000"),
		"maximumSalary":  70000,
		"skills":         []any{"Go", "<b>SQL</b>"},
		"orgID":          orgHex,
		"createdBy":      map[string]any{"name": "Ann", "email": "ann@example.com"},
		"questions": []any{
			map[string]any{"category": "Tech", "questions": []any{"Why Go?"}},
		},
		"teamMembers": []any{
			map[string]any{"name": "Bob", "email": "bob@example.com", "role": "Lead"},
		},
	}
}

func with(key string, value any) map[string]any {
	input := validInput()
	input[key] = value
	return input
}

func without(key string) map[string]any {
	input := validInput()
	delete(input, key)
	return input
}

func TestValidateJobPosting(t *testing.T) {
	t.Parallel()

	t.Run("accepts and normalizes", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateJobPosting(validInput())
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.Nil(t, res.Err)

		p := res.Value
		assert.Equal(t, "Senior Go Engineer", p.JobTitle)
		assert.Equal(t, "<p>Build <strong>APIs</strong></p>", p.Description)
		assert.Equal(t, "Build APIs", p.DescriptionText)
		assert.True(t, p.Remote)
		require.NotNil(t, p.MinimumSalary)
		require.NotNil(t, p.MaximumSalary)
		assert.InDelta(t, 50000, *p.MinimumSalary, 0)
		assert.InDelta(t, 70000, *p.MaximumSalary, 0)
		assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
		assert.Equal(t, orgHex, p.OrgID.Hex())
		require.NotNil(t, p.CreatedBy)
		require.NotNil(t, p.CreatedBy.Email)
		assert.Equal(t, "ann@example.com", *p.CreatedBy.Email)
		assert.Nil(t, p.CreatedBy.Image)
		require.Len(t, p.Questions, 1)
		assert.Equal(t, 1, p.Questions[0].ID)
		require.Len(t, p.TeamMembers, 1)
		assert.Equal(t, "Lead", p.TeamMembers[0].Role)
		assert.True(t, p.ID.IsZero())
	})

	t.Run("optional fields absent", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateJobPosting(map[string]any{
			"jobTitle":    "SWE",
			"description": "Plain text",
			"orgID":       orgHex,
		})
		require.True(t, res.Valid, "unexpected error: %v", res.Err)

		p := res.Value
		assert.Nil(t, p.MinimumSalary)
		assert.Nil(t, p.MaximumSalary)
		assert.False(t, p.Remote)
		assert.Empty(t, p.Skills)
		assert.Nil(t, p.CreatedBy)
		assert.Empty(t, p.Questions)
		assert.Empty(t, p.TeamMembers)
	})

	t.Run("cross field check runs after every field passed", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateJobPosting(map[string]any{
			"jobTitle":      "SWE",
			"description":   "<p>Hi</p><script>alert(1)</script>",
			"minimumSalary": 50000,
			"maximumSalary": 40000,
			"orgID":         orgHex,
		})
		require.False(t, res.Valid)
		assert.Nil(t, res.Value)
		assert.Equal(t, "minimumSalary", res.Err.Field)
		assert.Equal(t, validator.KindCrossFieldInvariant, res.Err.Kind)
		assert.ErrorIs(t, res.Err, validator.ErrCrossFieldInvariant)
	})

	t.Run("field failure is reported before cross field check", func(t *testing.T) {
		t.Parallel()

		input := with("minimumSalary", 90000)
		input["orgID"] = "abc123"
		res := jobposting.ValidateJobPosting(input)
		require.False(t, res.Valid)
		assert.Equal(t, "orgID", res.Err.Field)
		assert.Equal(t, validator.KindMalformedIdentifier, res.Err.Kind)
	})

	t.Run("non list skills become empty", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateJobPosting(with("skills", "go"))
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		assert.Empty(t, res.Value.Skills)
	})

	t.Run("equal salaries are accepted", func(t *testing.T) {
		t.Parallel()

		input := with("minimumSalary", 70000)
		res := jobposting.ValidateJobPosting(input)
		assert.True(t, res.Valid, "unexpected error: %v", res.Err)
	})

	failures := []struct {
		name  string
		input any
		field string
		kind  validator.Kind
		msg   string
	}{
		{name: "non object body", input: []any{1}, field: "body", kind: validator.KindTypeMismatch, msg: "body must be an object"},
		{name: "nil body", input: nil, field: "body", kind: validator.KindTypeMismatch},
		{name: "missing title", input: without("jobTitle"), field: "jobTitle", kind: validator.KindMissingRequiredField, msg: "jobTitle is required"},
		{name: "title emptied by sanitizer", input: with("jobTitle", "<script>x</script>"), field: "jobTitle", kind: validator.KindMissingRequiredField},
		{name: "title too short", input: with("jobTitle", "A"), field: "jobTitle", kind: validator.KindOutOfBounds},
		{name: "title too long", input: with("jobTitle", strings.Repeat("a", 201)), field: "jobTitle", kind: validator.KindOutOfBounds},
		{name: "missing description", input: without("description"), field: "description", kind: validator.KindMissingRequiredField},
		{name: "department too long", input: with("department", strings.Repeat("d", 101)), field: "department", kind: validator.KindOutOfBounds},
		{name: "location is an object", input: with("location", map[string]any{}), field: "location", kind: validator.KindTypeMismatch},
		{name: "salary not numeric", input: with("minimumSalary", "lots"), field: "minimumSalary", kind: validator.KindTypeMismatch, msg: "minimumSalary must be a valid number"},
		{name: "negative salary", input: with("maximumSalary", -1), field: "maximumSalary", kind: validator.KindOutOfBounds},
		{name: "empty skill", input: with("skills", []any{"Go", " "}), field: "skills[1]", kind: validator.KindMissingRequiredField, msg: "Skill at index 1: skill is required"},
		{name: "too many skills", input: with("skills", make([]any, 51)), field: "skills", kind: validator.KindOutOfBounds},
		{name: "missing org", input: without("orgID"), field: "orgID", kind: validator.KindMissingRequiredField},
		{name: "created by not an object", input: with("createdBy", "ann"), field: "createdBy", kind: validator.KindTypeMismatch},
		{name: "created by email", input: with("createdBy", map[string]any{"email": "nope"}), field: "createdBy.email", kind: validator.KindMalformedIdentifier},
		{name: "team member without email", input: with("teamMembers", []any{map[string]any{"name": "Bob"}}), field: "teamMembers[0].email", kind: validator.KindMissingRequiredField},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := jobposting.ValidateJobPosting(tt.input)
			require.False(t, res.Valid)
			require.NotNil(t, res.Err)
			assert.Equal(t, tt.field, res.Err.Field)
			assert.Equal(t, tt.kind, res.Err.Kind)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, res.Err.Message)
			}
			assert.ErrorIs(t, res.Err, validator.ErrValidationFailed)
		})
	}

	t.Run("record serializes with camel case keys", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateJobPosting(validInput())
		require.True(t, res.Valid)

		raw, err := json.Marshal(res.Value)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, orgHex, out["orgID"])
		assert.Equal(t, "Build APIs", out["descriptionText"])
		assert.NotContains(t, out, "id")
		assert.NotContains(t, out, "createdAt")
	})
}
