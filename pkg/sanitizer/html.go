package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// maxPasses bounds the fixed-point iteration in Policy.Sanitize.
// Legitimate markup converges in one or two passes; inputs still changing
// after maxPasses are nested removal payloads and are discarded.
const maxPasses = 16

// Policy is an immutable tag allow-list. No attribute survives on any tag.
type Policy struct {
	tags map[string]struct{}
}

func newPolicy(tags ...string) *Policy {
	p := &Policy{tags: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		p.tags[t] = struct{}{}
	}
	return p
}

var (
	// RichText keeps basic formatting tags for fields that accept rich text.
	RichText = newPolicy(
		"p", "br", "strong", "b", "em", "i", "u", "ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)

	// NoMarkup drops every tag while applying the same dangerous-content rules.
	NoMarkup = newPolicy()
)

// dropContent lists elements removed together with everything inside them.
// These are exactly the elements the tokenizer reads as raw text, so their
// content must never be emitted as-is.
var dropContent = map[string]struct{}{
	"script":    {},
	"style":     {},
	"iframe":    {},
	"noscript":  {},
	"noembed":   {},
	"noframes":  {},
	"textarea":  {},
	"title":     {},
	"xmp":       {},
	"plaintext": {},
}

// Allows reports whether the tag survives sanitization under p.
func (p *Policy) Allows(tag string) bool {
	_, ok := p.tags[strings.ToLower(tag)]
	return ok
}

// Sanitize returns s with every tag outside the allow-list removed, all
// attributes dropped, raw-text elements removed with their content and
// dangerous schemes and event handlers stripped anywhere in the string.
// The result is trimmed and Sanitize(Sanitize(s)) == Sanitize(s).
//
// Entities are not decoded: "&lt;script&gt;" stays inert text.
func (p *Policy) Sanitize(s string) string {
	for range maxPasses {
		if s == "" {
			return ""
		}
		next := p.pass(s)
		if next == s {
			return next
		}
		s = next
	}
	return ""
}

// pass runs one tokenizer walk followed by the dangerous-pattern strip.
// Output only grows when a trailing truncated tag is escaped, and an
// escaped tag is plain text on the next pass, so repeated passes reach a
// fixed point or keep shrinking.
func (p *Policy) pass(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	consumed := 0

	for {
		tt := z.Next()
		if tt != html.ErrorToken {
			consumed += len(z.Raw())
		}
		switch tt {
		case html.ErrorToken:
			if skip == 0 && consumed < len(s) {
				b.WriteString(truncatedTag(s[consumed:]))
			}
			return stripDangerous(b.String())

		case html.TextToken:
			if skip == 0 {
				b.Write(z.Raw())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if _, ok := dropContent[tag]; ok {
				// the tokenizer switches to raw text even for "<script/>"
				skip++
				continue
			}
			if skip == 0 && p.Allows(tag) {
				b.WriteString("<" + tag + ">")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if _, ok := dropContent[tag]; ok {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip == 0 && tag != "br" && p.Allows(tag) {
				b.WriteString("</" + tag + ">")
			}
		}
		// comments and doctypes are dropped
	}
}

// truncatedTag renders a tag cut off by the end of input, such as the
// "<Rust" in "Go<Rust", as inert text. Raw-text elements are dropped.
func truncatedTag(rest string) string {
	name := strings.TrimPrefix(rest[1:], "/")
	if i := strings.IndexAny(name, " \t\n\f\r/"); i >= 0 {
		name = name[:i]
	}
	if _, ok := dropContent[strings.ToLower(name)]; ok {
		return ""
	}
	return strings.ReplaceAll(rest, "<", "&lt;")
}

// SanitizeHTML sanitizes s with the RichText allow-list.
func SanitizeHTML(s string) string {
	return RichText.Sanitize(s)
}
