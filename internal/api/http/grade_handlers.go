package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/wordwise-app/wordwise/internal/dictation"
	"github.com/wordwise-app/wordwise/internal/history"
	"github.com/wordwise-app/wordwise/internal/match"
	"github.com/wordwise-app/wordwise/internal/ocr"
	"github.com/wordwise-app/wordwise/internal/review"
	"github.com/wordwise-app/wordwise/internal/vocab"
)

type gradeRequest struct {
	Mode           string       `json:"mode"`
	VocabularyName string       `json:"vocabulary_name,omitempty"`
	Words          []vocab.Word `json:"words"`
	Answers        []string     `json:"answers"`
	DurationSec    int          `json:"duration_sec,omitempty"`
	// Record persists the result into history and the wrong-answer book.
	Record bool `json:"record,omitempty"`
}

type gradeResponse struct {
	Mode     string       `json:"mode"`
	Report   match.Report `json:"report"`
	RecordID string       `json:"record_id,omitempty"`
}

// POST /grade grades a finished round: answers by position against the
// word list under the given mode. Words come inline or, when omitted, from
// the named stored vocabulary.
func GradeHandler(vocabs vocab.Store, hist history.Store, wrongs review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := resolveWords(r.Context(), vocabs, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gradeAndRespond(r.Context(), w, req, hist, wrongs)
	}
}

// POST /grade/photo grades a photographed handwritten answer sheet.
// Multipart form: "image" file plus "mode", "vocabulary_name", "words"
// (JSON array) fields.
func PhotoGradeHandler(engine ocr.Engine, vocabs vocab.Store, hist history.Store, wrongs review.Store) http.HandlerFunc {
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

		req := gradeRequest{
			Mode:           r.FormValue("mode"),
			VocabularyName: r.FormValue("vocabulary_name"),
			Record:         r.FormValue("record") == "true",
		}
		if wjson := r.FormValue("words"); wjson != "" {
			if err := json.Unmarshal([]byte(wjson), &req.Words); err != nil {
				http.Error(w, "bad words json: "+err.Error(), http.StatusBadRequest)
				return
			}
		}

		mode, err := dictation.ParseMode(req.Mode)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := resolveWords(r.Context(), vocabs, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		lines, err := engine.Recognize(r.Context(), file)
		if err != nil {
			http.Error(w, "recognition failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		req.Answers = ocr.ExtractWords(lines, dictation.IsChinese(mode))

		gradeAndRespond(r.Context(), w, req, hist, wrongs)
	}
}

// resolveWords fills req.Words from the stored vocabulary when the request
// names one without inlining the list.
func resolveWords(ctx context.Context, vocabs vocab.Store, req *gradeRequest) error {
	if len(req.Words) > 0 {
		return nil
	}
	if req.VocabularyName == "" {
		return errors.New("words or vocabulary_name required")
	}
	v, err := vocabs.Get(ctx, req.VocabularyName)
	if err != nil {
		return err
	}
	req.Words = v.Words
	return nil
}

func gradeAndRespond(ctx context.Context, w http.ResponseWriter, req gradeRequest, hist history.Store, wrongs review.Store) {
	mode, err := dictation.ParseMode(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expected := make([]match.ExpectedItem, 0, len(req.Words))
	for _, word := range req.Words {
		expected = append(expected, match.ExpectedItem{
			Text: dictation.CorrectAnswer(word, mode),
			Meta: word.Cn,
		})
	}

	report := match.Grade(req.Answers, expected, dictation.IsChinese(mode))

	resp := gradeResponse{Mode: string(mode), Report: report}
	if req.Record {
		resp.RecordID = persistReport(ctx, req, report, hist, wrongs)
	}
	writeJSON(w, http.StatusOK, resp)
}

// persistReport stores the session record and missed words. Grading itself
// already succeeded; persistence problems are logged, not surfaced as a
// grading failure.
func persistReport(ctx context.Context, req gradeRequest, report match.Report, hist history.Store, wrongs review.Store) string {
	var wrongWords []history.WrongWord
	for i, item := range report.Items {
		if item.Correct {
			continue
		}
		ww := history.WrongWord{UserAnswer: item.Recognized}
		if i < len(req.Words) {
			ww.En = req.Words[i].En
			ww.Cn = req.Words[i].Cn
		} else {
			ww.En = item.Expected
		}
		wrongWords = append(wrongWords, ww)

		if err := wrongs.Add(ctx, ww.En, ww.Cn, ww.UserAnswer); err != nil {
			log.Printf("wrong-answer book: %v", err)
		}
	}

	rec, err := hist.Add(ctx, history.Record{
		Mode:           req.Mode,
		VocabularyName: req.VocabularyName,
		Total:          report.Total,
		CorrectCount:   report.CorrectCount,
		Score:          report.Score,
		DurationSec:    req.DurationSec,
		WrongWords:     wrongWords,
	})
	if err != nil {
		log.Printf("history: %v", err)
		return ""
	}
	return rec.ID
}
