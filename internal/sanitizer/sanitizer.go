// Package sanitizer prepares raw document text for embedding in the project JSON.
package sanitizer

import "strings"

// escaper runs after pictographic removal. strings.Replacer scans the input
// once and never rescans replacement text, so "\\" -> "\\\\" followed by the
// angle bracket and newline rules behaves like the sequential replacements.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"<", "&lt;",
	">", "&gt;",
	"\n", "<br>",
)

// Sanitize removes Extended_Pictographic code points, doubles backslashes,
// escapes angle brackets and converts newlines to <br>.
//
// Sanitize is not idempotent: running it on its own output doubles the
// backslashes again and re-escapes the <br> markers.
func Sanitize(raw string) string {
	return escaper.Replace(StripPictographic(raw))
}

// StripPictographic deletes every Extended_Pictographic code point from s.
// Emoji modifiers, variation selectors and joiners are not part of the
// property and are left in place.
func StripPictographic(s string) string {
	if strings.IndexFunc(s, IsPictographic) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if IsPictographic(r) {
			return -1
		}
		return r
	}, s)
}
