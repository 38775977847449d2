// Package util contains small shared helpers with no domain knowledge.
package util

import (
	"strings"
	"unicode"
)

// Slugify converts free text into a URL-safe slug: lowercase ASCII letters,
// digits and single hyphens. Consecutive separators collapse into one hyphen.
func Slugify(text string) string {
	var slug strings.Builder
	slug.Grow(len(text))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r) && r < unicode.MaxASCII:
			slug.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				slug.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(slug.String(), "-")
}
