// Package dictation defines the three dictation modes and the per-mode
// prompt/answer selection rules.
package dictation

import (
	"fmt"
	"strings"

	"github.com/wordwise-app/wordwise/internal/vocab"
)

// Mode selects what is played and what the learner must write.
type Mode string

const (
	// ModeEnToCn plays the English word; the learner writes the Chinese meaning.
	ModeEnToCn Mode = "en_to_cn"
	// ModeCnToEn plays the Chinese meaning; the learner writes the English word.
	ModeCnToEn Mode = "cn_to_en"
	// ModeSpell plays English then Chinese; the learner spells the English word.
	ModeSpell Mode = "spell"
)

// ParseMode fails fast on unknown mode strings instead of falling through to
// a default.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeEnToCn:
		return ModeEnToCn, nil
	case ModeCnToEn:
		return ModeCnToEn, nil
	case ModeSpell:
		return ModeSpell, nil
	}
	return "", fmt.Errorf("unknown dictation mode %q", s)
}

// DisplayText is what the UI shows for a word in this mode.
func DisplayText(w vocab.Word, mode Mode) string {
	switch mode {
	case ModeEnToCn:
		return w.En
	case ModeCnToEn:
		return w.Cn
	default:
		return w.En + " / " + w.Cn
	}
}

// CorrectAnswer is the expected written answer for a word in this mode.
func CorrectAnswer(w vocab.Word, mode Mode) string {
	if mode == ModeEnToCn {
		return w.Cn
	}
	return w.En
}

// IsChinese reports whether expected answers in this mode are Chinese text,
// which switches grading to the exact CJK comparison.
func IsChinese(mode Mode) bool { return mode == ModeEnToCn }

// Name is the human-readable mode label.
func Name(mode Mode) string {
	switch mode {
	case ModeEnToCn:
		return "英译中 (听英文写中文)"
	case ModeCnToEn:
		return "中译英 (听中文写英文)"
	default:
		return "拼写 (听英文+中文拼写英文)"
	}
}

// Placeholder is the input-box hint for this mode.
func Placeholder(mode Mode) string {
	switch mode {
	case ModeEnToCn:
		return "输入中文释义"
	case ModeCnToEn:
		return "输入英文单词"
	default:
		return "拼写英文单词"
	}
}

// CheckAnswer is the typed-input comparison: lower-cased, trimmed, exact.
// Typed answers get no edit-distance slack; tolerance exists only for the
// handwriting path where OCR itself introduces noise.
func CheckAnswer(userAnswer, correctAnswer string) bool {
	return strings.ToLower(strings.TrimSpace(userAnswer)) ==
		strings.ToLower(strings.TrimSpace(correctAnswer))
}
