package tts_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wordwise-app/wordwise/internal/tts"
)

func TestMiniMaxSynthesize(t *testing.T) {
	audio := []byte("fake-mp3-bytes")
	var gotAuth, gotVoice string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req struct {
			Text         string `json:"text"`
			VoiceSetting struct {
				VoiceID string `json:"voice_id"`
			} `json:"voice_setting"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotVoice = req.VoiceSetting.VoiceID
		json.NewEncoder(w).Encode(map[string]any{
			"data":      map[string]string{"audio": hex.EncodeToString(audio)},
			"base_resp": map[string]any{"status_code": 0},
		})
	}))
	defer srv.Close()

	m, err := tts.NewMiniMax("test-key",
		tts.WithEndpoint(srv.URL),
		tts.WithVoices("voice-en", "voice-cn"),
	)
	if err != nil {
		t.Fatal(err)
	}

	got, err := m.Synthesize(context.Background(), "apple", tts.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(audio) {
		t.Fatalf("audio = %q, want %q", got, audio)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotVoice != "voice-en" {
		t.Fatalf("voice = %q, want voice-en", gotVoice)
	}

	if _, err := m.Synthesize(context.Background(), "苹果", tts.LangChinese); err != nil {
		t.Fatal(err)
	}
	if gotVoice != "voice-cn" {
		t.Fatalf("voice = %q, want voice-cn", gotVoice)
	}
}

func TestMiniMaxAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"base_resp": map[string]any{"status_code": 1004, "status_msg": "invalid api key"},
		})
	}))
	defer srv.Close()

	m, err := tts.NewMiniMax("bad-key", tts.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Synthesize(context.Background(), "apple", tts.LangEnglish)
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("err = %v, want api error with message", err)
	}
}

func TestMiniMaxEmptyText(t *testing.T) {
	m, err := tts.NewMiniMax("key")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Synthesize(context.Background(), "   ", tts.LangEnglish); err == nil {
		t.Fatal("want error for blank text")
	}
}

func TestNewMiniMaxRequiresKey(t *testing.T) {
	if _, err := tts.NewMiniMax(""); err == nil {
		t.Fatal("want error for empty api key")
	}
}
