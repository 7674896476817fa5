package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wordwise-app/wordwise/internal/vocab"
)

// GET /vocabularies
func ListVocabulariesHandler(store vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos, err := store.List(r.Context())
		if err != nil {
			storeError(w, err)
			return
		}
		if infos == nil {
			infos = []vocab.Info{}
		}
		writeJSON(w, http.StatusOK, infos)
	}
}

// PUT /vocabularies/{name}
func PutVocabularyHandler(store vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := vocab.SafeName(chi.URLParam(r, "name"))
		var body struct {
			Words []vocab.Word `json:"words"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		v := vocab.Vocabulary{Name: name, Words: body.Words}
		if err := vocab.Validate(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Put(r.Context(), v); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"name": name, "word_count": len(body.Words)})
	}
}

// GET /vocabularies/{name}
func GetVocabularyHandler(store vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := store.Get(r.Context(), vocab.SafeName(chi.URLParam(r, "name")))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// DELETE /vocabularies/{name}
func DeleteVocabularyHandler(store vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), vocab.SafeName(chi.URLParam(r, "name"))); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /vocabularies/{name}/import?format=json|csv|txt
func ImportVocabularyHandler(store vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := vocab.SafeName(chi.URLParam(r, "name"))
		format, err := vocab.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		v, err := vocab.Import(r.Body, format, name)
		if err != nil {
			http.Error(w, "import: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Put(r.Context(), v); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"name": v.Name, "word_count": len(v.Words)})
	}
}

// GET /vocabularies/{name}/export?format=json|csv|txt
func ExportVocabularyHandler(store vocab.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := vocab.SafeName(chi.URLParam(r, "name"))
		format, err := vocab.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		v, err := store.Get(r.Context(), name)
		if err != nil {
			storeError(w, err)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition",
			`attachment; filename="`+strings.ReplaceAll(name, `"`, "")+"."+string(format)+`"`)
		if err := vocab.Export(w, v, format); err != nil {
			http.Error(w, "export: "+err.Error(), http.StatusInternalServerError)
		}
	}
}
