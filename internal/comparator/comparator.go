// Package comparator orders filenames so that embedded chapter numbers sort
// numerically ("file2" before "file10").
package comparator

import (
	"regexp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Comparator compares filenames by their first run of digits, falling back to
// locale-aware comparison when either name has no digits.
// A Comparator is not safe for concurrent use; create one per goroutine.
type Comparator struct {
	collator *collate.Collator
}

// New creates a Comparator using the root (language-neutral) collation order.
func New() *Comparator {
	return NewForLanguage(language.Und)
}

// NewForLanguage creates a Comparator whose fallback ordering follows the
// collation rules of tag.
func NewForLanguage(tag language.Tag) *Comparator {
	return &Comparator{collator: collate.New(tag)}
}

// Compare returns a negative number if a sorts before b, a positive number if
// a sorts after b and zero if they are equivalent.
//
// When both names contain digits only the first digit run of each is
// considered, so "a1.txt" and "b1.txt" compare equal.
func (c *Comparator) Compare(a, b string) int {
	an := digitRun.FindString(a)
	bn := digitRun.FindString(b)
	if an != "" && bn != "" {
		return compareDigits(an, bn)
	}
	return c.collator.CompareString(a, b)
}

// compareDigits compares two non-empty ASCII digit strings as unsigned
// integers of any length.
func compareDigits(a, b string) int {
	a = trimZeros(a)
	b = trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
