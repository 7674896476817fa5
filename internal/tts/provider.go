// Package tts synthesizes word audio and caches it so dictation playback
// never waits on the network twice for the same word.
package tts

import (
	"context"
	"fmt"
)

// Lang selects the synthesis voice.
type Lang string

const (
	LangEnglish Lang = "en"
	LangChinese Lang = "cn"
)

// ParseLang fails fast on unknown language codes.
func ParseLang(s string) (Lang, error) {
	switch Lang(s) {
	case LangEnglish, "":
		return LangEnglish, nil
	case LangChinese:
		return LangChinese, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Provider produces spoken audio (mp3 bytes) for a piece of text.
type Provider interface {
	Synthesize(ctx context.Context, text string, lang Lang) ([]byte, error)
}
