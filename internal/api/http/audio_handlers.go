package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wordwise-app/wordwise/internal/dictation"
	"github.com/wordwise-app/wordwise/internal/tts"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

// GET /audio?text=...&lang=en serves the synthesized pronunciation,
// generating and caching it on first request.
func AudioHandler(cache *tts.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("text")
		if text == "" {
			http.Error(w, "text query parameter required", http.StatusBadRequest)
			return
		}
		lang, err := tts.ParseLang(r.URL.Query().Get("lang"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		audio, err := cache.Get(r.Context(), text, lang)
		if err != nil {
			http.Error(w, "synthesis failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(audio)
	}
}

type preloadRequest struct {
	VocabularyName string   `json:"vocabulary_name,omitempty"`
	Texts          []string `json:"texts,omitempty"`
	Mode           string   `json:"mode"`
}

// POST /audio/preload kicks off background synthesis for a word list so a
// dictation round starts without per-word latency. Responds immediately;
// progress is polled via GET /audio/preload.
func PreloadHandler(cache *tts.Cache, vocabs vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req preloadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		mode, err := dictation.ParseMode(req.Mode)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var items []tts.Item
		if len(req.Texts) > 0 {
			lang := tts.LangEnglish
			if mode == dictation.ModeCnToEn {
				lang = tts.LangChinese
			}
			for _, t := range req.Texts {
				items = append(items, tts.Item{Text: t, Lang: lang})
			}
		} else {
			if req.VocabularyName == "" {
				http.Error(w, "texts or vocabulary_name required", http.StatusBadRequest)
				return
			}
			v, err := vocabs.Get(r.Context(), req.VocabularyName)
			if err != nil {
				storeError(w, err)
				return
			}
			items = promptItems(v.Words, mode)
		}
		// the batch outlives this request
		go cache.Preload(context.Background(), items)
		writeJSON(w, http.StatusAccepted, map[string]int{"queued": len(items)})
	}
}

// promptItems lists the audio actually played per word in a mode: English
// for en_to_cn, Chinese for cn_to_en, both for spell.
func promptItems(words []vocab.Word, mode dictation.Mode) []tts.Item {
	var items []tts.Item
	for _, w := range words {
		switch mode {
		case dictation.ModeEnToCn:
			items = append(items, tts.Item{Text: w.En, Lang: tts.LangEnglish})
		case dictation.ModeCnToEn:
			items = append(items, tts.Item{Text: w.Cn, Lang: tts.LangChinese})
		default:
			items = append(items, tts.Item{Text: w.En, Lang: tts.LangEnglish})
			if w.Cn != "" {
				items = append(items, tts.Item{Text: w.Cn, Lang: tts.LangChinese})
			}
		}
	}
	return items
}

// GET /audio/preload reports the state of the last preload batch.
func PreloadProgressHandler(cache *tts.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cache.PreloadProgress())
	}
}
