package match

import "strings"

// Answers longer than tolerantLength characters may be off by one edit and
// still count. Shorter words must match exactly: a one-letter difference in a
// short word is usually a different word, not a near miss. The constants are
// fixed for behavioral compatibility with existing grading history.
const (
	tolerantLength = 5
	maxEdits       = 1
)

// IsMatch reports whether a recognized Latin-script answer matches the
// expected one. Case-insensitive, whitespace-trimmed; an empty side never
// matches.
func IsMatch(recognized, expected string) bool {
	recognized = strings.ToLower(strings.TrimSpace(recognized))
	expected = strings.ToLower(strings.TrimSpace(expected))
	if recognized == "" || expected == "" {
		return false
	}
	if recognized == expected {
		return true
	}
	if len([]rune(expected)) > tolerantLength && Distance(recognized, expected) <= maxEdits {
		return true
	}
	return false
}

// IsMatchMultilingual dispatches on script. Chinese answers are compared for
// exact equality after stripping whitespace: CJK characters are semantically
// dense, so edit-distance tolerance would accept different words. Latin
// answers fall through to IsMatch.
func IsMatchMultilingual(recognized, expected string, chinese bool) bool {
	recognized = strings.TrimSpace(recognized)
	expected = strings.TrimSpace(expected)
	if recognized == "" || expected == "" {
		return false
	}
	if chinese {
		return stripSpace(recognized) == stripSpace(expected)
	}
	return IsMatch(recognized, expected)
}
