// The sanitize package reduces visitor-supplied text to plain text.
// Comments are never rendered as HTML, so markup is stripped outright
// rather than escaped.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	MaxAuthorName = 64
	MaxBody       = 2000
)

// The strict policy allows no tags and no attributes; script and style
// elements are dropped together with their contents.
var policy = bluemonday.StrictPolicy()

// Clean trims surrounding whitespace, strips all markup and truncates the
// result to max codepoints. The returned string may be empty; callers treat
// that as a validation failure.
func Clean(text string, max int) string {
	cleaned := policy.Sanitize(strings.TrimSpace(text))
	// The policy entity-escapes the surviving text; undo that, this is
	// plain text, not HTML.
	cleaned = strings.TrimSpace(html.UnescapeString(cleaned))

	if runes := []rune(cleaned); len(runes) > max {
		cleaned = string(runes[:max])
	}
	return cleaned
}
