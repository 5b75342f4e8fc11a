// Package i18n localizes user-facing messages.
//
// Catalogs are YAML files named after their language tag ("de.yaml") with
// nested keys flattened to dotted form:
//
//	validation:
//	  required: "%{field} ist ein Pflichtfeld"
//
// Language negotiation uses golang.org/x/text/language, so "de-AT" matches a
// "de" catalog. The default language needs no catalog: T reports ok=false and
// the caller keeps its built-in English text.
//
//	tr, err := i18n.NewTranslator(locales.FS)
//	r.Use(i18n.Middleware(tr))
//	msg, ok := tr.Tc(ctx, "validation.required", map[string]any{"field": "jobTitle"})
package i18n
