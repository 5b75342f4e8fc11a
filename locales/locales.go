// Package locales embeds the translation catalogs served by the API.
package locales

import "embed"

// FS holds one YAML catalog per language, named after its tag.
//
//go:embed *.yaml
var FS embed.FS
