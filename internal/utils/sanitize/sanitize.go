package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict is a cached bluemonday policy that removes all HTML tags and
// attributes. Read-only after build, safe for concurrent use.
var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true) // prevents word concatenation
	return p
}()

// Clean strips HTML from user-supplied text and normalizes whitespace.
// Plain text passes through unchanged, so already-clean input round-trips
// byte for byte. Descriptive spot fields pass through Clean before hitting
// the DB; the repository assumes already-sanitized input.
func Clean(s string) string {
	sanitized := strict.Sanitize(s)
	sanitized = strings.TrimSpace(sanitized)

	// Unescape entities so &amp; etc. are stored as plain characters
	sanitized = html.UnescapeString(sanitized)

	// Normalize non-breaking spaces
	sanitized = strings.ReplaceAll(sanitized, "\u00a0", " ")

	// Collapse runs of spaces, preserving newlines
	lines := strings.Split(sanitized, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
