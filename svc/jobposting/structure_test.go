package jobposting_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hirekit/pkg/validator"
	"github.com/dmitrymomot/hirekit/svc/jobposting"
)

func TestValidateQuestions(t *testing.T) {
	t.Parallel()

	t.Run("sanitizes inner questions", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateQuestions([]any{
			map[string]any{"category": "Tech", "questions": []any{"Q1", "<script>bad</script>Q2"}},
		})
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.Len(t, res.Value, 1)
		assert.Equal(t, "Tech", res.Value[0].Category)
		assert.Equal(t, []string{"Q1", "Q2"}, res.Value[0].Questions)
	})

	t.Run("malformed inner list becomes empty", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateQuestions([]any{
			map[string]any{"questions": "not-an-array"},
		})
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.Len(t, res.Value, 1)
		assert.Empty(t, res.Value[0].Questions)
		assert.NotNil(t, res.Value[0].Questions)
	})

	t.Run("ids and counts", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateQuestions([]any{
			map[string]any{"id": 7, "questionCountToAsk": "2"},
			map[string]any{"id": "x", "questionCountToAsk": -1},
			map[string]any{"questionCountToAsk": 1.5},
			map[string]any{"id": 1e300, "questionCountToAsk": 1e300},
			map[string]any{"id": -1e300, "questionCountToAsk": "-1e300"},
		})
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.Len(t, res.Value, 5)

		assert.Equal(t, 7, res.Value[0].ID)
		require.NotNil(t, res.Value[0].QuestionCountToAsk)
		assert.Equal(t, 2, *res.Value[0].QuestionCountToAsk)

		assert.Equal(t, 2, res.Value[1].ID)
		assert.Nil(t, res.Value[1].QuestionCountToAsk)

		assert.Equal(t, 3, res.Value[2].ID)
		assert.Nil(t, res.Value[2].QuestionCountToAsk)

		assert.Equal(t, 4, res.Value[3].ID)
		assert.Nil(t, res.Value[3].QuestionCountToAsk)

		assert.Equal(t, 5, res.Value[4].ID)
		assert.Nil(t, res.Value[4].QuestionCountToAsk)
	})

	t.Run("non list input becomes empty", func(t *testing.T) {
		t.Parallel()

		for _, input := range []any{nil, "questions", map[string]any{}, 42} {
			res := jobposting.ValidateQuestions(input)
			require.True(t, res.Valid)
			assert.Empty(t, res.Value)
		}
	})

	failures := []struct {
		name  string
		input []any
		field string
		msg   string
	}{
		{
			name:  "element not an object",
			input: []any{map[string]any{}, "oops"},
			field: "questions[1]",
			msg:   "Question at index 1 must be an object",
		},
		{
			name:  "category too long",
			input: []any{map[string]any{"category": strings.Repeat("c", 101)}},
			field: "questions[0].category",
			msg:   "Question at index 0: category must be at most 100 characters long",
		},
		{
			name:  "empty inner question",
			input: []any{map[string]any{"questions": []any{"ok", ""}}},
			field: "questions[0].questions[1]",
			msg:   "Question at index 0, item 1: question is required",
		},
		{
			name:  "inner question too long",
			input: []any{map[string]any{"questions": []any{strings.Repeat("q", 501)}}},
			field: "questions[0].questions[0]",
		},
		{
			name:  "inner question is a list",
			input: []any{map[string]any{"questions": []any{[]any{"nested"}}}},
			field: "questions[0].questions[0]",
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := jobposting.ValidateQuestions(tt.input)
			require.False(t, res.Valid)
			assert.Equal(t, tt.field, res.Err.Field)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, res.Err.Message)
			}
		})
	}
}

func TestValidateTeamMembers(t *testing.T) {
	t.Parallel()

	t.Run("valid members", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateTeamMembers([]any{
			map[string]any{"name": "Ann", "email": " ann@example.com ", "isCurrentUser": true},
			map[string]any{"id": 10, "name": "<i>Bob</i>", "email": "bob@example.com", "avatarColor": "#ff0000"},
		})
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.Len(t, res.Value, 2)

		assert.Equal(t, jobposting.TeamMember{
			ID: 1, Name: "Ann", Email: "ann@example.com", IsCurrentUser: true,
		}, res.Value[0])
		assert.Equal(t, 10, res.Value[1].ID)
		assert.Equal(t, "Bob", res.Value[1].Name)
		assert.Equal(t, "#ff0000", res.Value[1].AvatarColor)
	})

	t.Run("out of range ids fall back to position", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateTeamMembers([]any{
			map[string]any{"id": -1e300, "name": "Ann", "email": "ann@example.com"},
			map[string]any{"id": 1e300, "name": "Bob", "email": "bob@example.com"},
		})
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.Len(t, res.Value, 2)
		assert.Equal(t, 1, res.Value[0].ID)
		assert.Equal(t, 2, res.Value[1].ID)
	})

	t.Run("missing email names field and index", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateTeamMembers([]any{
			map[string]any{"name": "Ann", "email": "ann@example.com"},
			map[string]any{"name": "Bob"},
		})
		require.False(t, res.Valid)
		assert.Equal(t, "teamMembers[1].email", res.Err.Field)
		assert.Contains(t, res.Err.Message, "email")
		assert.Contains(t, res.Err.Message, "index 1")
		assert.ErrorIs(t, res.Err, validator.ErrMissingRequiredField)
	})

	failures := []struct {
		name  string
		input []any
		field string
		kind  validator.Kind
	}{
		{name: "not an object", input: []any{nil}, field: "teamMembers[0]", kind: validator.KindTypeMismatch},
		{name: "missing name", input: []any{map[string]any{"email": "a@b.co"}}, field: "teamMembers[0].name", kind: validator.KindMissingRequiredField},
		{name: "bad email", input: []any{map[string]any{"name": "A", "email": "a@b"}}, field: "teamMembers[0].email", kind: validator.KindMalformedIdentifier},
		{name: "role too long", input: []any{map[string]any{"name": "A", "email": "a@b.co", "role": strings.Repeat("r", 101)}}, field: "teamMembers[0].role", kind: validator.KindOutOfBounds},
		{name: "avatar color too long", input: []any{map[string]any{"name": "A", "email": "a@b.co", "avatarColor": strings.Repeat("f", 33)}}, field: "teamMembers[0].avatarColor", kind: validator.KindOutOfBounds},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := jobposting.ValidateTeamMembers(tt.input)
			require.False(t, res.Valid)
			assert.Equal(t, tt.field, res.Err.Field)
			assert.Equal(t, tt.kind, res.Err.Kind)
			assert.True(t, strings.HasPrefix(res.Err.Message, "Team member at index 0"), res.Err.Message)
		})
	}
}

func TestValidateUser(t *testing.T) {
	t.Parallel()

	t.Run("only present keys are set", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateUser(map[string]any{"name": "Ann"}, "createdBy")
		require.True(t, res.Valid)
		require.NotNil(t, res.Value.Name)
		assert.Equal(t, "Ann", *res.Value.Name)
		assert.Nil(t, res.Value.Email)
		assert.Nil(t, res.Value.Image)
	})

	t.Run("empty email is allowed", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateUser(map[string]any{"email": ""}, "createdBy")
		require.True(t, res.Valid, "unexpected error: %v", res.Err)
		require.NotNil(t, res.Value.Email)
		assert.Empty(t, *res.Value.Email)
	})

	t.Run("image too long", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateUser(map[string]any{"image": strings.Repeat("i", 2049)}, "createdBy")
		require.False(t, res.Valid)
		assert.Equal(t, "createdBy.image", res.Err.Field)
		assert.Equal(t, validator.KindOutOfBounds, res.Err.Kind)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		res := jobposting.ValidateUser([]any{}, "createdBy")
		require.False(t, res.Valid)
		assert.Equal(t, "createdBy must be an object", res.Err.Message)
	})
}
