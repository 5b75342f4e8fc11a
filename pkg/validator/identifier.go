package validator

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ObjectID validates a 24 character hexadecimal document identifier.
// Absent input yields a nil value unless required is set.
func ObjectID(input any, field string, required bool) Result[*bson.ObjectID] {
	var hex string
	switch v := input.(type) {
	case nil:
	case string:
		hex = strings.TrimSpace(v)
	case bson.ObjectID:
		id := v
		return Ok(&id)
	default:
		return Fail[*bson.ObjectID](malformedError(field, "must be a valid identifier", "validation.identifier"))
	}

	if hex == "" {
		if required {
			return Fail[*bson.ObjectID](requiredError(field))
		}
		return Ok[*bson.ObjectID](nil)
	}

	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return Fail[*bson.ObjectID](malformedError(field, "must be a valid identifier", "validation.identifier"))
	}
	return Ok(&id)
}

func malformedError(field, message, key string) *ValidationError {
	return &ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("%s %s", field, message),
		Kind:              KindMalformedIdentifier,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
	}
}
