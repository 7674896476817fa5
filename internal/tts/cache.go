package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wordwise-app/wordwise/internal/storage"
)

// preloadParallelism bounds concurrent synthesis calls during a batch
// preload so the TTS provider is not hammered.
const preloadParallelism = 4

// Progress is a snapshot of a running or finished preload.
type Progress struct {
	Total     int  `json:"total"`
	Completed int  `json:"completed"`
	Errors    int  `json:"errors"`
	Active    bool `json:"active"`
}

// Cache serves synthesized audio keyed by (text, lang). Blobs live in a
// BlobStore; the in-memory index only tracks which keys exist. The matching
// core it feeds is pure, so the cache is the single place in the audio path
// that needs locking.
type Cache struct {
	provider Provider
	blobs    storage.BlobStore

	mu       sync.Mutex
	known    map[string]struct{} // keys present in the blob store
	progress Progress
}

func NewCache(provider Provider, blobs storage.BlobStore) *Cache {
	return &Cache{
		provider: provider,
		blobs:    blobs,
		known:    make(map[string]struct{}),
	}
}

// Key is the blob key for a (text, lang) pair. Unsafe runes are dropped the
// same way vocabulary names are sanitized.
func Key(text string, lang Lang) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 0x4e00 && r <= 0x9fff:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		s = "blank"
	}
	return fmt.Sprintf("audio/%s_%s.mp3", s, lang)
}

// Get returns cached audio for the word, synthesizing and storing it on a
// miss.
func (c *Cache) Get(ctx context.Context, text string, lang Lang) ([]byte, error) {
	key := Key(text, lang)

	c.mu.Lock()
	_, hit := c.known[key]
	c.mu.Unlock()

	if hit {
		rc, err := c.blobs.Get(key)
		if err == nil {
			defer rc.Close()
			return io.ReadAll(rc)
		}
		// blob vanished underneath us; fall through and re-synthesize
	}

	audio, err := c.provider.Synthesize(ctx, text, lang)
	if err != nil {
		return nil, err
	}
	if _, err := c.blobs.Put(key, bytes.NewReader(audio)); err != nil {
		return nil, fmt.Errorf("cache audio: %w", err)
	}
	c.mu.Lock()
	c.known[key] = struct{}{}
	c.mu.Unlock()
	return audio, nil
}

// Item is one preload request: a text and the language to speak it in.
type Item struct {
	Text string
	Lang Lang
}

// Preload synthesizes audio for every item with bounded parallelism.
// Individual failures are counted and logged but never abort the batch; a
// missing word falls back to on-demand synthesis at playback.
func (c *Cache) Preload(ctx context.Context, items []Item) Progress {
	c.mu.Lock()
	c.progress = Progress{Total: len(items), Active: true}
	c.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadParallelism)
	for _, item := range items {
		item := item
		g.Go(func() error {
			_, err := c.Get(ctx, item.Text, item.Lang)
			c.mu.Lock()
			c.progress.Completed++
			if err != nil {
				c.progress.Errors++
				log.Printf("tts preload %q: %v", item.Text, err)
			}
			c.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	c.progress.Active = false
	p := c.progress
	c.mu.Unlock()
	return p
}

// PreloadProgress reports the state of the most recent Preload call.
func (c *Cache) PreloadProgress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}
