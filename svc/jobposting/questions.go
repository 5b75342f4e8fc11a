package jobposting

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/hirekit/pkg/validator"
)

const questionsField = "questions"

// ValidateQuestions validates the screening question tree. Non-list input
// yields an empty list. The first invalid element, at either level, aborts
// validation with a message naming its index.
func ValidateQuestions(input any) validator.Result[[]Question] {
	items := validator.Array(input, questionsField, validator.ArrayOptions{}).Value

	questions := make([]Question, 0, len(items))
	for i, item := range items {
		q, err := validateQuestion(item, i)
		if err != nil {
			return validator.Fail[[]Question](err)
		}
		questions = append(questions, q)
	}

	return validator.Ok(questions)
}

func validateQuestion(item any, i int) (Question, *validator.ValidationError) {
	path := indexed(questionsField, i)

	obj, ok := asObject(item)
	if !ok {
		return Question{}, validator.New(validator.KindTypeMismatch, path,
			fmt.Sprintf("Question at index %d must be an object", i))
	}

	category := validator.String(obj["category"], "category", validator.StringOptions{MaxLength: MaxCategoryLength})
	if !category.Valid {
		return Question{}, category.Err.
			WithField(nested(path, "category")).
			WithMessage(fmt.Sprintf("Question at index %d: %s", i, category.Err.Message))
	}

	inner := validator.Array(obj["questions"], "questions", validator.ArrayOptions{}).Value
	texts := make([]string, 0, len(inner))
	for j, raw := range inner {
		text := validator.String(raw, "question", validator.StringOptions{Required: true, MaxLength: MaxQuestionLength})
		if !text.Valid {
			return Question{}, text.Err.
				WithField(indexed(nested(path, "questions"), j)).
				WithMessage(fmt.Sprintf("Question at index %d, item %d: %s", i, j, text.Err.Message))
		}
		texts = append(texts, text.Value)
	}

	return Question{
		ID:                 defaultID(obj["id"], i),
		Category:           category.Value,
		QuestionCountToAsk: countToAsk(obj["questionCountToAsk"]),
		Questions:          texts,
	}, nil
}

// countToAsk coerces to a whole number in [0, MaxInt32], or nil. It never fails.
func countToAsk(input any) *int {
	res := validator.Number(input, "questionCountToAsk", validator.NumberOptions{
		Min:     validator.Limit(0),
		Max:     validator.Limit(math.MaxInt32),
		Integer: true,
	})
	if !res.Valid || res.Value == nil {
		return nil
	}
	n := int(*res.Value)
	return &n
}

// defaultID returns input as a whole number in int32 range, or index+1 otherwise.
func defaultID(input any, index int) int {
	res := validator.Number(input, "id", validator.NumberOptions{
		Min:     validator.Limit(math.MinInt32),
		Max:     validator.Limit(math.MaxInt32),
		Integer: true,
	})
	if !res.Valid || res.Value == nil {
		return index + 1
	}
	return int(*res.Value)
}
