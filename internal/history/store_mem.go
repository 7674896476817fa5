package history

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	seq     int
}

// NewInMemoryStore is used in tests and as a fallback when no DB is wired.
func NewInMemoryStore() Store {
	return &memoryStore{records: map[string]Record{}}
}

func (m *memoryStore) Add(_ context.Context, r Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if r.ID == "" {
		r.ID = fmt.Sprintf("%s-%06d", time.Now().Format("20060102150405"), m.seq)
	}
	r.CreatedAt = time.Now()
	m.records[r.ID] = r
	return r, nil
}

func (m *memoryStore) List(_ context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = map[string]Record{}
	return nil
}

func (m *memoryStore) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var st Stats
	for _, r := range m.records {
		st.Sessions++
		st.TotalWords += r.Total
		st.TotalCorrect += r.CorrectCount
		st.AverageScore += r.Score
		if r.Score > st.BestScore {
			st.BestScore = r.Score
		}
	}
	if st.Sessions > 0 {
		st.AverageScore /= float64(st.Sessions)
	}
	return st, nil
}
