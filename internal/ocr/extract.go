package ocr

import (
	"regexp"
	"strings"

	"github.com/wordwise-app/wordwise/internal/match"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

// ExtractWords turns recognized answer-sheet lines into grading tokens:
// confidence filter, per-line cleanup, one token per line so positions stay
// aligned with the expected answers.
func ExtractWords(lines []Line, keepChinese bool) []string {
	var words []string
	for _, l := range FilterConfident(lines, MinConfidence) {
		cleaned := match.Clean(l.Text, keepChinese)
		if cleaned == "" {
			continue
		}
		if !keepChinese && len(cleaned) < 2 {
			// single stray letters are OCR noise, not answers
			continue
		}
		words = append(words, cleaned)
	}
	return words
}

var (
	circledPrefix = regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩]\s*`)
	enumeration   = regexp.MustCompile(`^[\(\[（【]?\d+[\)\]）】]?[\.、．\s]*`)
	unitTitle     = regexp.MustCompile(`^unit\s*\d*$`)
	letters       = regexp.MustCompile(`[a-zA-Z]`)
	nonWordChars  = regexp.MustCompile(`[^\w\s\-]`)
	spaceChars    = regexp.MustCompile(`\s`)
)

// pairSeparators are tried in order when splitting an inline "english 中文"
// line; longer separators first so "——" is not split as "-".
var pairSeparators = []string{"——", "--", "－", "-", "：", ":", "·", "•", "|", "/"}

// ExtractPairs turns a photographed word list into vocabulary entries.
// Handles inline "apple 苹果" pairs, english-line-then-chinese-line layouts
// and english-only lines; title rows ("Unit 3", "Word List") are skipped.
func ExtractPairs(lines []Line) []vocab.Word {
	texts := make([]string, 0, len(lines))
	for _, l := range FilterConfident(lines, MinConfidence) {
		texts = append(texts, strings.TrimSpace(l.Text))
	}

	var pairs []vocab.Word
	for i := 0; i < len(texts); i++ {
		line := texts[i]
		if line == "" || isTitle(line) {
			continue
		}

		if en, cn, ok := parseInlinePair(line); ok {
			pairs = append(pairs, vocab.Word{En: en, Cn: cn})
			continue
		}

		// english line followed by a chinese meaning line
		if i+1 < len(texts) && isEnglishWord(line) && isChineseText(texts[i+1]) {
			pairs = append(pairs, vocab.Word{En: line, Cn: texts[i+1]})
			i++
			continue
		}

		// chinese line already consumed as the previous english line's meaning
		if isChineseText(line) && i > 0 && isEnglishWord(texts[i-1]) {
			continue
		}

		if isEnglishWord(line) {
			pairs = append(pairs, vocab.Word{En: line, Cn: ""})
		}
	}
	return pairs
}

func isTitle(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, t := range []string{"word list", "starter unit", "unit", "starter unlt"} {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return unitTitle.MatchString(lower)
}

func stripLineNumber(text string) string {
	text = enumeration.ReplaceAllString(text, "")
	text = circledPrefix.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// parseInlinePair splits one line holding both the word and its meaning.
func parseInlinePair(text string) (en, cn string, ok bool) {
	text = stripLineNumber(text)
	if text == "" {
		return "", "", false
	}

	for _, sep := range pairSeparators {
		if !strings.Contains(text, sep) {
			continue
		}
		parts := strings.SplitN(text, sep, 2)
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		leftEn, rightEn := isEnglishWord(left), isEnglishWord(right)
		if leftEn && !rightEn {
			return left, right, true
		}
		if rightEn && !leftEn {
			return right, left, true
		}
	}

	// space-separated: leading english run, trailing chinese run
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return "", "", false
	}
	var enParts, cnParts []string
scan:
	for _, p := range parts {
		switch {
		case isEnglishWord(p):
			if len(cnParts) > 0 {
				// english after the chinese run means a new entry; stop here
				break scan
			}
			enParts = append(enParts, p)
		case isChineseText(p):
			cnParts = append(cnParts, p)
		}
	}
	if len(enParts) > 0 && len(cnParts) > 0 {
		return strings.Join(enParts, " "), strings.Join(cnParts, ""), true
	}
	return "", "", false
}

// isEnglishWord holds when at least half the non-space characters are ASCII
// letters. OCR output is messy; a strict [a-z]+ match would reject usable
// lines.
func isEnglishWord(text string) bool {
	cleaned := strings.TrimSpace(nonWordChars.ReplaceAllString(text, ""))
	if cleaned == "" {
		return false
	}
	en := len(letters.FindAllString(cleaned, -1))
	total := len([]rune(spaceChars.ReplaceAllString(cleaned, "")))
	return total > 0 && en > 0 && float64(en)/float64(total) >= 0.5
}

func isChineseText(text string) bool {
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}
