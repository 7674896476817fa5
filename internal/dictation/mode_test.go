package dictation_test

import (
	"testing"

	"github.com/wordwise-app/wordwise/internal/dictation"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

var apple = vocab.Word{En: "apple", Cn: "苹果"}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"en_to_cn", "cn_to_en", "spell", " SPELL "} {
		if _, err := dictation.ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) failed: %v", s, err)
		}
	}
	if _, err := dictation.ParseMode("en-to-cn"); err == nil {
		t.Error("ParseMode accepted an unknown mode")
	}
	if _, err := dictation.ParseMode(""); err == nil {
		t.Error("ParseMode accepted an empty mode")
	}
}

func TestDisplayAndAnswerPerMode(t *testing.T) {
	cases := []struct {
		mode    dictation.Mode
		display string
		answer  string
		chinese bool
	}{
		{dictation.ModeEnToCn, "apple", "苹果", true},
		{dictation.ModeCnToEn, "苹果", "apple", false},
		{dictation.ModeSpell, "apple / 苹果", "apple", false},
	}
	for _, c := range cases {
		if got := dictation.DisplayText(apple, c.mode); got != c.display {
			t.Errorf("DisplayText(%s) = %q, want %q", c.mode, got, c.display)
		}
		if got := dictation.CorrectAnswer(apple, c.mode); got != c.answer {
			t.Errorf("CorrectAnswer(%s) = %q, want %q", c.mode, got, c.answer)
		}
		if got := dictation.IsChinese(c.mode); got != c.chinese {
			t.Errorf("IsChinese(%s) = %v, want %v", c.mode, got, c.chinese)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	cases := []struct {
		user, correct string
		want          bool
	}{
		{"Apple", "apple", true},
		{"  apple  ", "apple", true},
		{"苹果", "苹果", true},
		{"banana", "apple", false},
		{"aple", "apple", false}, // typed input gets no fuzzy slack
	}
	for _, c := range cases {
		if got := dictation.CheckAnswer(c.user, c.correct); got != c.want {
			t.Errorf("CheckAnswer(%q,%q) = %v, want %v", c.user, c.correct, got, c.want)
		}
	}
}
