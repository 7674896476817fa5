// Package history records finished dictation sessions for later review.
package history

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("history record not found")

// WrongWord is one missed word inside a session record.
type WrongWord struct {
	En         string `json:"en"`
	Cn         string `json:"cn"`
	UserAnswer string `json:"user_answer"`
}

// Record is one completed dictation session.
type Record struct {
	ID             string      `json:"id"`
	Mode           string      `json:"mode"`
	VocabularyName string      `json:"vocabulary_name"`
	Total          int         `json:"total"`
	CorrectCount   int         `json:"correct_count"`
	Score          float64     `json:"score"`
	DurationSec    int         `json:"duration_sec"`
	WrongWords     []WrongWord `json:"wrong_words,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Stats aggregates over all stored records.
type Stats struct {
	Sessions     int     `json:"sessions"`
	TotalWords   int     `json:"total_words"`
	TotalCorrect int     `json:"total_correct"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`
}

type Store interface {
	Add(ctx context.Context, r Record) (Record, error)
	List(ctx context.Context, limit int) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
}
