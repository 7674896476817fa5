package http

import (
	"context"
	"net/http"

	"github.com/wordwise-app/wordwise/internal/correct"
	"github.com/wordwise-app/wordwise/internal/ocr"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

type extractResponse struct {
	Words   []vocab.Word     `json:"words"`
	Changes []correct.Change `json:"changes,omitempty"`
}

// POST /ocr/extract-words turns a photographed word list into vocabulary
// entries: recognize, pair English with Chinese, then spell-correct the
// English side.
func ExtractWordsHandler(engine ocr.Engine, corrector *correct.Corrector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "image file required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		lines, err := engine.Recognize(r.Context(), file)
		if err != nil {
			http.Error(w, "recognition failed: "+err.Error(), http.StatusBadGateway)
			return
		}

		words := ocr.ExtractPairs(lines)
		words, changes := corrector.CorrectWords(words)
		writeJSON(w, http.StatusOK, extractResponse{Words: words, Changes: changes})
	}
}

// GET /ocr/health reports whether the recognition backend is reachable.
// Engines without a health probe are assumed available.
func OCRHealthHandler(engine ocr.Engine) http.HandlerFunc {
	type healthChecker interface {
		Healthy(ctx context.Context) bool
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ok := true
		if hc, isChecker := engine.(healthChecker); isChecker {
			ok = hc.Healthy(r.Context())
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
	}
}
