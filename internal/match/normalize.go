// Package match implements the text normalization, edit-distance and
// tolerance rules used to grade dictation answers. Everything here is a pure
// function over its arguments; the package holds no state and is safe to call
// from concurrent grading requests.
package match

import (
	"regexp"
	"strings"
)

// enumPrefix matches OCR line numbering such as "1. ", "(2)", "（3）、" or "【4】".
var enumPrefix = regexp.MustCompile(`^[\(\[（【]?\d+[\)\]）】]?[\.、．\s]*`)

// Clean converts a raw recognized line into a comparable token: the leading
// enumeration marker is removed, then every rune that is not an ASCII letter,
// whitespace or (with keepChinese) a CJK ideograph is dropped, and the result
// is trimmed. Garbage input reduces to "" rather than an error.
func Clean(text string, keepChinese bool) string {
	text = enumPrefix.ReplaceAllString(text, "")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(r)
		case keepChinese && r >= 0x4e00 && r <= 0x9fff:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// stripSpace removes every whitespace rune, used for CJK comparison where
// OCR tends to insert gaps between characters.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '　' {
			return -1
		}
		return r
	}, s)
}
