package correct

import "github.com/wordwise-app/wordwise/internal/vocab"

// Change records one applied correction, for showing the user what the
// importer rewrote.
type Change struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Meta      string `json:"meta,omitempty"` // paired translation, if any
	Note      Note   `json:"note"`
}

// CorrectWords runs every word of an OCR-extracted vocabulary through
// Correct. Exact and unfixable words pass through untouched; fixed and
// suggested words are rewritten and reported in changes.
func (c *Corrector) CorrectWords(words []vocab.Word) ([]vocab.Word, []Change) {
	out := make([]vocab.Word, 0, len(words))
	var changes []Change

	for _, w := range words {
		res := c.Correct(w.En)
		corrected := w
		corrected.En = res.Corrected
		out = append(out, corrected)

		if res.Corrected != w.En {
			changes = append(changes, Change{
				Original:  w.En,
				Corrected: res.Corrected,
				Meta:      w.Cn,
				Note:      res.Note,
			})
		}
	}
	return out, changes
}
