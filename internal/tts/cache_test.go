package tts_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wordwise-app/wordwise/internal/tts"
)

type fakeProvider struct {
	calls atomic.Int64
	fail  map[string]bool
}

func (f *fakeProvider) Synthesize(_ context.Context, text string, lang tts.Lang) ([]byte, error) {
	f.calls.Add(1)
	if f.fail[text] {
		return nil, errors.New("synthesis refused")
	}
	return []byte("mp3:" + text + ":" + string(lang)), nil
}

type memBlobs struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemBlobs() *memBlobs { return &memBlobs{blobs: map[string][]byte{}} }

func (m *memBlobs) Put(key string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.blobs[key] = b
	m.mu.Unlock()
	return key, nil
}

func (m *memBlobs) Get(key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memBlobs) Delete(key string) error {
	m.mu.Lock()
	delete(m.blobs, key)
	m.mu.Unlock()
	return nil
}

func (m *memBlobs) SignedURL(key string) (string, error) { return "mem://" + key, nil }

func TestGetSynthesizesOnceThenServesFromCache(t *testing.T) {
	p := &fakeProvider{}
	c := tts.NewCache(p, newMemBlobs())
	ctx := context.Background()

	a, err := c.Get(ctx, "apple", tts.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Get(ctx, "apple", tts.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("cache returned different audio")
	}
	if p.calls.Load() != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls.Load())
	}

	// same word, other language is a distinct key
	if _, err := c.Get(ctx, "apple", tts.LangChinese); err != nil {
		t.Fatal(err)
	}
	if p.calls.Load() != 2 {
		t.Fatalf("provider called %d times, want 2", p.calls.Load())
	}
}

func TestPreloadSurvivesFailures(t *testing.T) {
	p := &fakeProvider{fail: map[string]bool{"banana": true}}
	c := tts.NewCache(p, newMemBlobs())

	prog := c.Preload(context.Background(), []tts.Item{
		{Text: "apple", Lang: tts.LangEnglish},
		{Text: "banana", Lang: tts.LangEnglish},
		{Text: "cherry", Lang: tts.LangEnglish},
	})
	if prog.Completed != 3 {
		t.Fatalf("completed = %d, want 3", prog.Completed)
	}
	if prog.Errors != 1 {
		t.Fatalf("errors = %d, want 1", prog.Errors)
	}
	if prog.Active {
		t.Fatal("progress still active after Preload returned")
	}

	// the failed word is retried on demand, successes are already cached
	if _, err := c.Get(context.Background(), "apple", tts.LangEnglish); err != nil {
		t.Fatal(err)
	}
	if got := c.PreloadProgress(); got != prog {
		t.Fatalf("PreloadProgress = %+v, want %+v", got, prog)
	}
}

func TestKeySanitization(t *testing.T) {
	a := tts.Key("take photos", tts.LangEnglish)
	b := tts.Key("../../../etc/passwd", tts.LangEnglish)
	if a != "audio/take photos_en.mp3" {
		t.Fatalf("Key = %q", a)
	}
	if b != "audio/etcpasswd_en.mp3" {
		t.Fatalf("Key did not sanitize path runes: %q", b)
	}
}
