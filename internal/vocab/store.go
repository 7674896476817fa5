package vocab

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrNotFound = errors.New("vocabulary not found")

// Info is the listing view: everything but the word payload.
type Info struct {
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store interface {
	Put(ctx context.Context, v Vocabulary) error
	Get(ctx context.Context, name string) (Vocabulary, error)
	List(ctx context.Context) ([]Info, error)
	Delete(ctx context.Context, name string) error
}

type memoryStore struct {
	mu    sync.RWMutex
	items map[string]Vocabulary
}

// NewInMemoryStore is used in tests and as a fallback when no DB is wired.
func NewInMemoryStore() Store {
	return &memoryStore{items: map[string]Vocabulary{}}
}

func (m *memoryStore) Put(_ context.Context, v Vocabulary) error {
	if err := Validate(v); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if old, ok := m.items[v.Name]; ok {
		v.CreatedAt = old.CreatedAt
	} else {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	m.items[v.Name] = v
	return nil
}

func (m *memoryStore) Get(_ context.Context, name string) (Vocabulary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[name]
	if !ok {
		return Vocabulary{}, ErrNotFound
	}
	return v, nil
}

func (m *memoryStore) List(_ context.Context) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.items))
	for _, v := range m.items {
		out = append(out, Info{Name: v.Name, WordCount: len(v.Words), CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[name]; !ok {
		return ErrNotFound
	}
	delete(m.items, name)
	return nil
}
