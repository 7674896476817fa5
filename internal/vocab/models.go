// Package vocab stores named vocabulary lists: the word pairs a dictation
// session is run against.
package vocab

import (
	"fmt"
	"strings"
	"time"
)

// Word is one vocabulary entry: the English word and its Chinese meaning.
// Checked marks words selected for the next dictation round.
type Word struct {
	En      string `json:"en"`
	Cn      string `json:"cn"`
	Checked bool   `json:"checked,omitempty"`
}

type Vocabulary struct {
	Name      string    `json:"name"`
	Words     []Word    `json:"words"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Validate rejects malformed vocabularies before they reach storage or
// grading. An entry without English text would make expected answers
// ambiguous, so it fails fast here rather than being tolerated downstream.
func Validate(v Vocabulary) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("vocabulary name required")
	}
	for i, w := range v.Words {
		if strings.TrimSpace(w.En) == "" {
			return fmt.Errorf("word %d: english text required", i)
		}
	}
	return nil
}

// SafeName reduces a vocabulary name to the characters allowed in a storage
// key: letters, digits, CJK, space, dash, underscore.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 0x4e00 && r <= 0x9fff:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		return "vocabulary"
	}
	return s
}
