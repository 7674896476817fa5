// Package http wires the application's stores and engines to the REST API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wordwise-app/wordwise/internal/history"
	"github.com/wordwise-app/wordwise/internal/review"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// storeError maps store sentinels onto HTTP statuses.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vocab.ErrNotFound),
		errors.Is(err, history.ErrNotFound),
		errors.Is(err, review.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
