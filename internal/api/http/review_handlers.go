package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wordwise-app/wordwise/internal/review"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

// GET /review?include_mastered=true lists wrong-answer book entries, most
// missed first.
func ListWrongAnswersHandler(wrongs review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeMastered := r.URL.Query().Get("include_mastered") == "true"
		entries, err := wrongs.List(r.Context(), includeMastered)
		if err != nil {
			storeError(w, err)
			return
		}
		if entries == nil {
			entries = []review.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// POST /review/{en}/mastered marks a word as mastered; it stays in the book
// but drops out of re-dictation until missed again.
func MarkMasteredHandler(wrongs review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := wrongs.MarkMastered(r.Context(), chi.URLParam(r, "en")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DELETE /review/{en} removes a word from the book entirely.
func DeleteWrongAnswerHandler(wrongs review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := wrongs.Delete(r.Context(), chi.URLParam(r, "en")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /review/words exports unmastered entries as a word list ready for a
// re-dictation round.
func ReviewWordsHandler(wrongs review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words, err := wrongs.Words(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		if words == nil {
			words = []vocab.Word{}
		}
		writeJSON(w, http.StatusOK, words)
	}
}
