package correct

import (
	"sort"
	"strings"
)

// Dictionary is the immutable word knowledge a Corrector runs against:
// the set of known-correct words plus a curated misspelling → correction map.
// Construct once, share freely.
type Dictionary struct {
	set          map[string]struct{}
	words        []string // sorted, for deterministic scans
	misspellings map[string]string
}

// NewDictionary builds a Dictionary from a word list and a misspelling map.
// Words are lower-cased; both inputs are copied.
func NewDictionary(words []string, misspellings map[string]string) *Dictionary {
	d := &Dictionary{
		set:          make(map[string]struct{}, len(words)),
		misspellings: make(map[string]string, len(misspellings)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := d.set[w]; !ok {
			d.set[w] = struct{}{}
			d.words = append(d.words, w)
		}
	}
	sort.Strings(d.words)
	for k, v := range misspellings {
		d.misspellings[strings.ToLower(k)] = v
	}
	return d
}

func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

func (d *Dictionary) Misspelling(word string) (string, bool) {
	fix, ok := d.misspellings[word]
	return fix, ok
}

// Words returns the known words in lexicographic order. Callers must not
// modify the returned slice.
func (d *Dictionary) Words() []string { return d.words }

func (d *Dictionary) Len() int { return len(d.words) }

// DefaultDictionary returns the built-in school-vocabulary dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(commonWords, commonMisspellings)
}
