package review_test

import (
	"context"
	"testing"

	"github.com/wordwise-app/wordwise/internal/review"
)

func TestAddAccumulates(t *testing.T) {
	ctx := context.Background()
	s := review.NewInMemoryStore()

	if err := s.Add(ctx, "apple", "苹果", "aple"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "Apple", "苹果", "appel"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "banana", "香蕉", ""); err != nil {
		t.Fatal(err)
	}

	entries, err := s.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (apple case-folded)", len(entries))
	}
	// most-wrong first
	if entries[0].En != "apple" || entries[0].Count != 2 {
		t.Fatalf("first entry = %+v, want apple with count 2", entries[0])
	}
	if len(entries[0].LastAnswers) != 2 {
		t.Fatalf("answers = %v, want both wrong inputs kept", entries[0].LastAnswers)
	}
}

func TestMasteredLifecycle(t *testing.T) {
	ctx := context.Background()
	s := review.NewInMemoryStore()
	_ = s.Add(ctx, "apple", "苹果", "aple")

	if err := s.MarkMastered(ctx, "apple"); err != nil {
		t.Fatal(err)
	}
	entries, _ := s.List(ctx, false)
	if len(entries) != 0 {
		t.Fatalf("mastered entry still listed: %+v", entries)
	}

	// a new miss resets mastered
	_ = s.Add(ctx, "apple", "苹果", "appl")
	entries, _ = s.List(ctx, false)
	if len(entries) != 1 || entries[0].Count != 2 {
		t.Fatalf("re-missed word not revived: %+v", entries)
	}
}

func TestWordsExport(t *testing.T) {
	ctx := context.Background()
	s := review.NewInMemoryStore()
	_ = s.Add(ctx, "apple", "苹果", "aple")
	_ = s.Add(ctx, "banana", "香蕉", "banan")
	_ = s.MarkMastered(ctx, "banana")

	words, err := s.Words(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 || words[0].En != "apple" || words[0].Cn != "苹果" {
		t.Fatalf("words = %+v, want only unmastered apple", words)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := review.NewInMemoryStore()
	_ = s.Add(ctx, "apple", "苹果", "aple")
	if err := s.Delete(ctx, "APPLE"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "apple"); err != review.ErrNotFound {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}
