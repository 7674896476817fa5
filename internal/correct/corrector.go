// Package correct fixes OCR misreadings of English vocabulary words. It is
// used by the photo-import flow: every extracted word runs through a known
// word set, a curated misspelling map and finally an edit-distance scan.
package correct

import (
	"strings"
	"unicode"

	"github.com/wordwise-app/wordwise/internal/match"
)

// Note classifies the outcome of Correct.
type Note string

const (
	NoteExact     Note = "exact"     // already a known word
	NoteFixed     Note = "fixed"     // hit in the curated misspelling map
	NoteSuggested Note = "suggested" // nearest dictionary word within 2 edits
	NoteUnfixable Note = "unfixable" // no confident correction found
)

// Correction is the result of correcting a single candidate word.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Note      Note   `json:"note"`
}

// Candidates must be close in length and within maxSuggestEdits of a
// dictionary word to be suggested. Too-short inputs are never corrected:
// a two-edit change on a one-letter token is pure guesswork.
const (
	maxSuggestEdits = 2
	maxLenDiff      = 2
	minSuggestLen   = 2
)

// Corrector resolves OCR word candidates against an immutable Dictionary.
// Safe for concurrent use; it never mutates its dictionary.
type Corrector struct {
	dict *Dictionary
}

func New(dict *Dictionary) *Corrector {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &Corrector{dict: dict}
}

// Correct resolves one candidate word. Lookup order: exact known word,
// curated misspelling map, edit-distance scan over the dictionary. The
// original capitalization of the first letter is re-applied to fixes.
func (c *Corrector) Correct(word string) Correction {
	lower := strings.ToLower(strings.TrimSpace(word))

	if c.dict.Contains(lower) {
		return Correction{Original: word, Corrected: word, Note: NoteExact}
	}

	if fix, ok := c.dict.Misspelling(lower); ok {
		return Correction{Original: word, Corrected: matchCase(word, fix), Note: NoteFixed}
	}

	if fix, ok := c.nearest(lower); ok {
		return Correction{Original: word, Corrected: matchCase(word, fix), Note: NoteSuggested}
	}

	return Correction{Original: word, Corrected: word, Note: NoteUnfixable}
}

// nearest scans the dictionary for the closest word within maxSuggestEdits,
// considering only candidates whose length differs by at most maxLenDiff.
// Ties on distance break to the lexicographically smallest word so results
// are deterministic across runs.
func (c *Corrector) nearest(word string) (string, bool) {
	if len([]rune(word)) < minSuggestLen {
		return "", false
	}

	best := ""
	bestDist := maxSuggestEdits + 1
	wl := len(word)
	for _, cand := range c.dict.Words() {
		if diff := len(cand) - wl; diff > maxLenDiff || diff < -maxLenDiff {
			continue
		}
		d := match.Distance(word, cand)
		if d < bestDist || (d == bestDist && best != "" && cand < best) {
			bestDist = d
			best = cand
		}
	}
	if best == "" || bestDist > maxSuggestEdits || best == word {
		return "", false
	}
	return best, true
}

// matchCase re-applies the original's leading capitalization to a fix.
func matchCase(original, fix string) string {
	ro := []rune(original)
	if len(ro) == 0 || !unicode.IsUpper(ro[0]) {
		return fix
	}
	rf := []rune(fix)
	if len(rf) == 0 {
		return fix
	}
	rf[0] = unicode.ToUpper(rf[0])
	return string(rf)
}
