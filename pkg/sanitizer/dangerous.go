package sanitizer

import (
	"regexp"
	"strings"
)

// dangerousPatterns are removed anywhere in the string, not only inside tags.
// RE2 guarantees linear-time matching, so no pattern can backtrack.
var dangerousPatterns = []*regexp.Regexp{
	// inline event handlers with an optional quoted value
	regexp.MustCompile(`(?i)\s*on\w+\s*=\s*(?:"[^"]*"|'[^']*')?`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)vbscript\s*:`),
	regexp.MustCompile(`(?i)data\s*:\s*text/html`),
}

// stripDangerous removes every dangerous pattern and trims the result.
func stripDangerous(s string) string {
	for _, re := range dangerousPatterns {
		s = re.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// RemoveJavaScriptEvents removes inline event handlers and script-capable
// URL schemes from s without touching any markup.
func RemoveJavaScriptEvents(s string) string {
	return stripDangerous(s)
}
