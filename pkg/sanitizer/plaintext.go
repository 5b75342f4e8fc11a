package sanitizer

import "strings"

// entityDecoder handles the named entities plain-text display needs.
// strings.Replacer scans left to right once, so "&amp;lt;" becomes "&lt;".
var entityDecoder = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// DecodeEntities decodes the small entity table used for display text.
// Unlike html.UnescapeString it leaves numeric and other named entities alone.
func DecodeEntities(s string) string {
	return entityDecoder.Replace(s)
}

var stripHTML = Compose(
	SanitizeHTML,
	NoMarkup.Sanitize,
	DecodeEntities,
	strings.TrimSpace,
)

// StripHTML derives display text from untrusted input: it sanitizes first,
// removes every remaining tag and decodes the entity table.
//
// The output is meant for plain-text contexts such as titles and previews.
// It must not be fed back into HTML, because decoding can turn inert
// "&lt;b&gt;" text into markup characters.
func StripHTML(s string) string {
	return stripHTML(s)
}
