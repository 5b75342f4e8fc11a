package locales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hirekit/locales"
	"github.com/dmitrymomot/hirekit/pkg/i18n"
	"github.com/dmitrymomot/hirekit/pkg/validator"
)

func TestCatalogsCoverValidationKeys(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(locales.FS)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de", "es"}, tr.Languages())

	keys := []string{
		"validation.required",
		"validation.string",
		"validation.number",
		"validation.integer",
		"validation.list",
		"validation.identifier",
		"validation.email",
		"validation.min",
		"validation.max",
		"validation.min_length",
		"validation.max_length",
		"validation.min_items",
		"validation.max_items",
	}
	for _, kind := range []validator.Kind{
		validator.KindMissingRequiredField,
		validator.KindTypeMismatch,
		validator.KindOutOfBounds,
		validator.KindMalformedIdentifier,
		validator.KindCrossFieldInvariant,
	} {
		keys = append(keys, validator.New(kind, "f", "").TranslationKey)
	}

	for _, lang := range []string{"de", "es"} {
		for _, key := range keys {
			msg, ok := tr.T(lang, key, map[string]any{"field": "jobTitle", "limit": 3})
			assert.True(t, ok, "%s: %s", lang, key)
			assert.Contains(t, msg, "jobTitle", "%s: %s", lang, key)
			assert.NotContains(t, msg, "%{", "%s: %s", lang, key)
		}
	}
}
