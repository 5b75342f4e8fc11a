package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hirekit/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes tags and decodes ampersand",
			input:    "<p>Tom &amp; Jerry</p>",
			expected: "Tom & Jerry",
		},
		{
			name:     "sanitizes before stripping",
			input:    "<h1>Senior&nbsp;Engineer</h1><script>alert(1)</script>",
			expected: "Senior Engineer",
		},
		{
			name:     "decodes the whole entity table",
			input:    "5 &lt; 6 &gt; 4 &quot;ok&quot; it&#39;s",
			expected: `5 < 6 > 4 "ok" it's`,
		},
		{
			name:     "decodes only one level",
			input:    "&amp;lt;b&amp;gt;",
			expected: "&lt;b&gt;",
		},
		{
			name:     "leaves entities outside the table alone",
			input:    "&copy; 2025 &#169;",
			expected: "&copy; 2025 &#169;",
		},
		{
			name:     "joins adjacent blocks",
			input:    "<p>Hi</p><p>There</p>",
			expected: "HiThere",
		},
		{
			name:     "strips dangerous schemes",
			input:    "<b>javascript:alert(1)</b>",
			expected: "alert(1)",
		},
		{
			name:     "trims the result",
			input:    "  <p> spaced </p>  ",
			expected: "spaced",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `& < > " ' `, sanitizer.DecodeEntities("&amp; &lt; &gt; &quot; &#39; &nbsp;"))
}
