package match_test

import (
	"math"
	"testing"

	"github.com/wordwise-app/wordwise/internal/match"
)

func expectedOf(words ...string) []match.ExpectedItem {
	items := make([]match.ExpectedItem, 0, len(words))
	for _, w := range words {
		items = append(items, match.ExpectedItem{Text: w})
	}
	return items
}

func TestGradeEmpty(t *testing.T) {
	rep := match.Grade(nil, nil, false)
	if rep.Total != 0 || rep.CorrectCount != 0 || rep.Score != 0 {
		t.Fatalf("empty grade = %+v, want zero report", rep)
	}
	if len(rep.Items) != 0 {
		t.Fatalf("empty grade produced %d items", len(rep.Items))
	}
}

func TestGradeAllCorrect(t *testing.T) {
	rep := match.Grade(
		[]string{"apple", "banana", "computer"},
		expectedOf("apple", "banana", "computer"),
		false,
	)
	if rep.CorrectCount != 3 || rep.Score != 100.0 {
		t.Fatalf("got correct=%d score=%v, want 3 and 100.0", rep.CorrectCount, rep.Score)
	}
	if rep.Total != len(rep.Items) {
		t.Fatalf("invariant broken: total=%d items=%d", rep.Total, len(rep.Items))
	}
}

func TestGradeShortWordNotTolerated(t *testing.T) {
	rep := match.Grade(
		[]string{"aple", "banana", "computer"},
		expectedOf("apple", "banana", "computer"),
		false,
	)
	if rep.CorrectCount != 2 {
		t.Fatalf("correct = %d, want 2 (aple/apple must not be tolerated)", rep.CorrectCount)
	}
	if math.Abs(rep.Score-66.7) > 1e-9 {
		t.Fatalf("score = %v, want 66.7", rep.Score)
	}
	if rep.Items[0].Correct {
		t.Fatal("item 0 marked correct")
	}
}

func TestGradeTwoEditsNotTolerated(t *testing.T) {
	rep := match.Grade(
		[]string{"beautyful", "wonderful", "excellent"},
		expectedOf("beautiful", "wonderful", "excellent"),
		false,
	)
	if rep.CorrectCount != 2 {
		t.Fatalf("correct = %d, want 2 (distance-2 beautyful must fail)", rep.CorrectCount)
	}
	if math.Abs(rep.Score-66.7) > 1e-9 {
		t.Fatalf("score = %v, want 66.7", rep.Score)
	}
}

func TestGradeLengthMismatch(t *testing.T) {
	// fewer recognized than expected: missing positions compare as ""
	rep := match.Grade([]string{"apple"}, expectedOf("apple", "banana"), false)
	if rep.Total != 2 || rep.CorrectCount != 1 {
		t.Fatalf("got %+v, want total=2 correct=1", rep)
	}
	if rep.Items[1].Recognized != "" || rep.Items[1].Correct {
		t.Fatalf("missing position = %+v, want empty and incorrect", rep.Items[1])
	}

	// extra recognized tokens are ignored
	rep = match.Grade([]string{"apple", "stray", "noise"}, expectedOf("apple"), false)
	if rep.Total != 1 || rep.CorrectCount != 1 {
		t.Fatalf("got %+v, want total=1 correct=1", rep)
	}
}

func TestGradeChineseContext(t *testing.T) {
	rep := match.Grade(
		[]string{"苹果", "香 蕉", "电恼"},
		[]match.ExpectedItem{
			{Text: "苹果", Meta: "apple"},
			{Text: "香蕉", Meta: "banana"},
			{Text: "电脑", Meta: "computer"},
		},
		true,
	)
	if rep.CorrectCount != 2 {
		t.Fatalf("correct = %d, want 2 (电恼 is a different word)", rep.CorrectCount)
	}
	if rep.Items[0].Meta != "apple" {
		t.Fatalf("meta not carried through: %+v", rep.Items[0])
	}
}

func TestGradeScoreRounding(t *testing.T) {
	// 1/3 => 33.3, 2/3 => 66.7: rounded to one decimal, not truncated
	rep := match.Grade([]string{"apple"}, expectedOf("apple", "banana", "cherry"), false)
	if math.Abs(rep.Score-33.3) > 1e-9 {
		t.Fatalf("score = %v, want 33.3", rep.Score)
	}
}
