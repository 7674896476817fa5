package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wordwise-app/wordwise/internal/history"
)

const defaultHistoryLimit = 50

// GET /history?limit=N lists session records, newest first.
func ListHistoryHandler(hist history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultHistoryLimit
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}
		records, err := hist.List(r.Context(), limit)
		if err != nil {
			storeError(w, err)
			return
		}
		if records == nil {
			records = []history.Record{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// GET /history/stats aggregates over all stored sessions.
func HistoryStatsHandler(hist history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := hist.Stats(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// GET /history/{id} returns a single session record.
func GetHistoryHandler(hist history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := hist.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// DELETE /history/{id} removes one record.
func DeleteHistoryHandler(hist history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := hist.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DELETE /history wipes all records.
func ClearHistoryHandler(hist history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := hist.Clear(r.Context()); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
