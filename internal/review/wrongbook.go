// Package review keeps the wrong-answer book: every word missed during a
// session is collected here so it can be re-dictated until mastered.
package review

import (
	"context"
	"errors"
	"time"

	"github.com/wordwise-app/wordwise/internal/vocab"
)

var ErrNotFound = errors.New("wrong answer not found")

// Entries keep only the most recent wrong inputs per word.
const maxRecentAnswers = 5

// Entry is the accumulated miss record for one word.
type Entry struct {
	En           string    `json:"en"`
	Cn           string    `json:"cn"`
	Count        int       `json:"count"`
	LastAnswers  []string  `json:"last_answers,omitempty"`
	Mastered     bool      `json:"mastered"`
	FirstWrongAt time.Time `json:"first_wrong_at"`
	LastWrongAt  time.Time `json:"last_wrong_at"`
}

type Store interface {
	// Add records one miss: new words get an entry, known words increment
	// their count and reset mastered.
	Add(ctx context.Context, en, cn, userAnswer string) error
	List(ctx context.Context, includeMastered bool) ([]Entry, error)
	MarkMastered(ctx context.Context, en string) error
	Delete(ctx context.Context, en string) error
	// Words exports the unmastered entries as a vocabulary for re-dictation.
	Words(ctx context.Context) ([]vocab.Word, error)
}

func appendAnswer(answers []string, answer string) []string {
	if answer == "" {
		return answers
	}
	answers = append(answers, answer)
	if len(answers) > maxRecentAnswers {
		answers = answers[len(answers)-maxRecentAnswers:]
	}
	return answers
}
