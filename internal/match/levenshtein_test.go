package match_test

import (
	"testing"

	"github.com/wordwise-app/wordwise/internal/match"
)

func TestDistanceBasics(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "apple", 5},
		{"apple", "", 5},
		{"apple", "apple", 0},
		{"apple", "aple", 1},
		{"apple", "apples", 1},
		{"apple", "appel", 2},
		{"kitten", "sitting", 3},
		{"苹果", "苹果", 0},
		{"苹", "苹果", 1},
	}
	for _, c := range cases {
		if got := match.Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q,%q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	if d := match.Distance("apple", "banana"); d < 4 {
		t.Errorf("Distance(apple,banana) = %d, want >= 4", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"apple", "aple"},
		{"beautiful", "beautyful"},
		{"", "word"},
		{"苹果", "平果"},
		{"short", "shore"},
	}
	for _, p := range pairs {
		ab := match.Distance(p[0], p[1])
		ba := match.Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%q,%q)=%d but Distance(%q,%q)=%d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "聪明", "mixed 中文 text"} {
		if d := match.Distance(s, s); d != 0 {
			t.Errorf("Distance(%q,%q) = %d, want 0", s, s, d)
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	tri := [][3]string{
		{"apple", "aple", "applet"},
		{"cat", "dog", "cot"},
		{"beautiful", "beatiful", "beautyful"},
	}
	for _, tr := range tri {
		ab := match.Distance(tr[0], tr[1])
		bc := match.Distance(tr[1], tr[2])
		ac := match.Distance(tr[0], tr[2])
		if ac > ab+bc {
			t.Errorf("triangle violated for %v: d(a,c)=%d > d(a,b)+d(b,c)=%d", tr, ac, ab+bc)
		}
	}
}
