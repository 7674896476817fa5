package match

import "math"

// ExpectedItem is one expected answer plus display-only metadata. Meta
// (typically the paired translation) is carried through to the report and
// never affects matching.
type ExpectedItem struct {
	Text string `json:"text"`
	Meta string `json:"meta,omitempty"`
}

// Result is the outcome for a single position.
type Result struct {
	Expected   string `json:"expected"`
	Recognized string `json:"recognized"`
	Correct    bool   `json:"correct"`
	Meta       string `json:"meta,omitempty"`
}

// Report aggregates per-item results. Items is ordered by position and
// len(Items) == Total always holds.
type Report struct {
	Items        []Result `json:"items"`
	Total        int      `json:"total"`
	CorrectCount int      `json:"correct_count"`
	Score        float64  `json:"score"` // 0–100, one decimal
}

// Grade compares recognized tokens against expected items by position.
// A missing recognized position compares against "" (incorrect); recognized
// tokens beyond len(expected) are ignored. Pure function: persistence of the
// report is the caller's business.
func Grade(recognized []string, expected []ExpectedItem, chinese bool) Report {
	items := make([]Result, 0, len(expected))
	correct := 0

	for i, exp := range expected {
		var rec string
		if i < len(recognized) {
			rec = recognized[i]
		}
		ok := IsMatchMultilingual(rec, exp.Text, chinese)
		if ok {
			correct++
		}
		items = append(items, Result{
			Expected:   exp.Text,
			Recognized: rec,
			Correct:    ok,
			Meta:       exp.Meta,
		})
	}

	total := len(expected)
	var score float64
	if total > 0 {
		score = math.Round(float64(correct)/float64(total)*1000) / 10
	}
	return Report{Items: items, Total: total, CorrectCount: correct, Score: score}
}
