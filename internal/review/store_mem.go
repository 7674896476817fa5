package review

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wordwise-app/wordwise/internal/vocab"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry // lower-cased english -> entry
}

// NewInMemoryStore is used in tests and as a fallback when no DB is wired.
func NewInMemoryStore() Store {
	return &memoryStore{entries: map[string]Entry{}}
}

func (m *memoryStore) Add(_ context.Context, en, cn, userAnswer string) error {
	en = strings.TrimSpace(en)
	if en == "" {
		return ErrNotFound
	}
	key := strings.ToLower(en)
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = Entry{En: en, Cn: cn, FirstWrongAt: now}
	}
	e.Count++
	e.Cn = cn
	e.Mastered = false
	e.LastWrongAt = now
	e.LastAnswers = appendAnswer(e.LastAnswers, userAnswer)
	m.entries[key] = e
	return nil
}

func (m *memoryStore) List(_ context.Context, includeMastered bool) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if !includeMastered && e.Mastered {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LastWrongAt.After(out[j].LastWrongAt)
	})
	return out, nil
}

func (m *memoryStore) MarkMastered(_ context.Context, en string) error {
	key := strings.ToLower(strings.TrimSpace(en))
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return ErrNotFound
	}
	e.Mastered = true
	m.entries[key] = e
	return nil
}

func (m *memoryStore) Delete(_ context.Context, en string) error {
	key := strings.ToLower(strings.TrimSpace(en))
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		return ErrNotFound
	}
	delete(m.entries, key)
	return nil
}

func (m *memoryStore) Words(ctx context.Context) ([]vocab.Word, error) {
	entries, err := m.List(ctx, false)
	if err != nil {
		return nil, err
	}
	words := make([]vocab.Word, 0, len(entries))
	for _, e := range entries {
		words = append(words, vocab.Word{En: e.En, Cn: e.Cn})
	}
	return words, nil
}
