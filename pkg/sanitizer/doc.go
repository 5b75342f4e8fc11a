// Package sanitizer neutralizes attacker-controlled markup before it is
// persisted or re-rendered.
//
// The package exposes two allow-list policies and a display-text helper:
//
//   - RichText – keeps p, br, strong, b, em, i, u, ul, ol, li and h1..h6.
//     Every attribute is dropped, so no tag can carry a handler or a URL.
//
//   - NoMarkup – the empty allow-list used for plain-text fields. It removes
//     every tag but otherwise behaves exactly like RichText.
//
//   - StripHTML – derives display text (titles, previews) by sanitizing,
//     removing the remaining tags and decoding a small entity table.
//
// Regardless of policy, script, iframe, style and the other raw-text
// elements are removed together with their content, and the substrings
// "javascript:", "vbscript:", "data:text/html" and inline event handlers
// (on\w+=) are stripped anywhere in the string, not only inside tags.
//
// # Usage
//
//	import "github.com/dmitrymomot/hirekit/pkg/sanitizer"
//
//	safe := sanitizer.SanitizeHTML(`<p onclick="x()">Hi</p><script>bad()</script>`)
//	// safe == "<p>Hi</p>"
//
//	title := sanitizer.StripHTML("<h1>Go &amp; Rust</h1>")
//	// title == "Go & Rust"
//
// Apply and Compose build reusable pipelines from these helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.NoMarkup.Sanitize,
//	)
//
// # Guarantees
//
// Markup is parsed with the golang.org/x/net/html tokenizer instead of a
// regular-expression chain, so quoted attribute values containing ">" or
// malformed tag soup cannot smuggle markup through. Each sanitization pass is
// repeated until the output stops changing, which makes Sanitize idempotent:
// Sanitize(Sanitize(s)) == Sanitize(s). Inputs that are still changing after
// a fixed number of passes are nested removal payloads; they are discarded and
// the empty string is returned.
//
// A tag cut off by the end of input ("Go<Rust") is kept as escaped text
// ("Go&lt;Rust") rather than dropped, unless it names a raw-text element such
// as script.
//
// Entities are deliberately not decoded by Sanitize. An encoded payload such as
// "&lt;script&gt;" stays inert text. Only StripHTML decodes, and its output is
// meant for plain-text rendering only.
//
// # Error handling
//
// None of the helpers returns an error or panics. Every policy table is built
// once at package initialization and never mutated, so all helpers are safe
// for concurrent use.
package sanitizer
