package match_test

import (
	"testing"

	"github.com/wordwise-app/wordwise/internal/match"
)

func TestIsMatch(t *testing.T) {
	cases := []struct {
		recognized, expected string
		want                 bool
	}{
		{"apple", "apple", true},
		{"Apple", "apple", true},
		{" apple ", "apple", true},
		{"", "apple", false},
		{"apple", "", false},
		{"", "", false},
		// expected word length <= 5: no tolerance, exact only
		{"appl", "apple", false},
		{"aple", "apple", false},
		{"cot", "cat", false},
		// expected word length > 5: one edit tolerated
		{"beautifu", "beautiful", true},
		{"computor", "computer", true},
		{"wonderfull", "wonderful", true},
		// two edits is always out
		{"beautyful", "beautiful", false},
		{"banana", "apple", false},
	}
	for _, c := range cases {
		if got := match.IsMatch(c.recognized, c.expected); got != c.want {
			t.Errorf("IsMatch(%q,%q) = %v, want %v", c.recognized, c.expected, got, c.want)
		}
	}
}

func TestIsMatchMultilingual(t *testing.T) {
	cases := []struct {
		recognized, expected string
		chinese              bool
		want                 bool
	}{
		{"苹果", "苹果", true, true},
		{"苹 果", "苹果", true, true}, // OCR gap inside the word
		{"苹", "苹果", true, false},  // no edit tolerance for CJK
		{"平果", "苹果", true, false},
		{"", "苹果", true, false},
		// latin context delegates to IsMatch
		{"beautifu", "beautiful", false, true},
		{"aple", "apple", false, false},
	}
	for _, c := range cases {
		if got := match.IsMatchMultilingual(c.recognized, c.expected, c.chinese); got != c.want {
			t.Errorf("IsMatchMultilingual(%q,%q,%v) = %v, want %v",
				c.recognized, c.expected, c.chinese, got, c.want)
		}
	}
}

func TestCleanStripsEnumerationAndGarbage(t *testing.T) {
	cases := []struct {
		in          string
		keepChinese bool
		want        string
	}{
		{"1. apple", false, "apple"},
		{"(2) banana", false, "banana"},
		{"（3）、orange", false, "orange"},
		{"【4】grape", false, "grape"},
		{"①apple", false, "apple"},
		{"12．pear", false, "pear"},
		{"apple!!!", false, "apple"},
		{"苹果 apple", false, "apple"},
		{"苹果 apple", true, "苹果 apple"},
		{"***", false, ""},
		{"", false, ""},
		{"   ", true, ""},
	}
	for _, c := range cases {
		if got := match.Clean(c.in, c.keepChinese); got != c.want {
			t.Errorf("Clean(%q,%v) = %q, want %q", c.in, c.keepChinese, got, c.want)
		}
	}
}
