// Package ocr turns photos of word lists and handwritten answers into text.
// Recognition itself is delegated to an Engine (remote service or local
// tesseract); extraction and cleanup of the recognized lines happen here.
package ocr

import (
	"context"
	"io"
)

// Line is one recognized text line with the engine's confidence in it.
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Engine recognizes text in an image.
type Engine interface {
	Recognize(ctx context.Context, image io.Reader) ([]Line, error)
}

// MinConfidence is the default cutoff below which recognized lines are
// treated as noise and dropped.
const MinConfidence = 0.5

// FilterConfident drops lines under the cutoff.
func FilterConfident(lines []Line, min float64) []Line {
	out := lines[:0:0]
	for _, l := range lines {
		if l.Confidence >= min {
			out = append(out, l)
		}
	}
	return out
}
