package vocab_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wordwise-app/wordwise/internal/vocab"
)

func TestImportTXT(t *testing.T) {
	in := strings.NewReader("# unit one\napple 苹果\nbanana 香蕉\n\numbrella  雨伞\nsolo\n")
	v, err := vocab.Import(in, vocab.FormatTXT, "unit1")
	if err != nil {
		t.Fatalf("import txt: %v", err)
	}
	if v.Name != "unit1" || len(v.Words) != 4 {
		t.Fatalf("got %+v, want 4 words under unit1", v)
	}
	if v.Words[0].En != "apple" || v.Words[0].Cn != "苹果" {
		t.Fatalf("bad first word: %+v", v.Words[0])
	}
	if v.Words[3].En != "solo" || v.Words[3].Cn != "" {
		t.Fatalf("english-only line mishandled: %+v", v.Words[3])
	}
}

func TestImportCSVWithHeader(t *testing.T) {
	in := strings.NewReader("en,cn\napple,苹果\nbanana,香蕉\n")
	v, err := vocab.Import(in, vocab.FormatCSV, "fruits")
	if err != nil {
		t.Fatalf("import csv: %v", err)
	}
	if len(v.Words) != 2 || v.Words[1].Cn != "香蕉" {
		t.Fatalf("got %+v", v.Words)
	}
}

func TestImportCSVWithoutHeader(t *testing.T) {
	in := strings.NewReader("apple,苹果\nbanana,香蕉\n")
	v, err := vocab.Import(in, vocab.FormatCSV, "fruits")
	if err != nil {
		t.Fatalf("import csv: %v", err)
	}
	if len(v.Words) != 2 || v.Words[0].En != "apple" {
		t.Fatalf("got %+v", v.Words)
	}
}

func TestImportJSON(t *testing.T) {
	in := strings.NewReader(`{"name":"fruits","words":[{"en":"apple","cn":"苹果"}]}`)
	v, err := vocab.Import(in, vocab.FormatJSON, "")
	if err != nil {
		t.Fatalf("import json: %v", err)
	}
	if v.Name != "fruits" || len(v.Words) != 1 {
		t.Fatalf("got %+v", v)
	}
}

func TestImportRejectsEmptyEnglish(t *testing.T) {
	in := strings.NewReader(`{"name":"bad","words":[{"en":"","cn":"苹果"}]}`)
	if _, err := vocab.Import(in, vocab.FormatJSON, ""); err == nil {
		t.Fatal("import accepted a word without english text")
	}
}

func TestExportRoundTrip(t *testing.T) {
	v := vocab.Vocabulary{Name: "fruits", Words: []vocab.Word{
		{En: "apple", Cn: "苹果"},
		{En: "banana", Cn: "香蕉"},
	}}
	for _, f := range []vocab.Format{vocab.FormatJSON, vocab.FormatCSV, vocab.FormatTXT} {
		var buf bytes.Buffer
		if err := vocab.Export(&buf, v, f); err != nil {
			t.Fatalf("export %s: %v", f, err)
		}
		got, err := vocab.Import(&buf, f, "fruits")
		if err != nil {
			t.Fatalf("re-import %s: %v", f, err)
		}
		if len(got.Words) != 2 || got.Words[0].En != "apple" || got.Words[1].Cn != "香蕉" {
			t.Fatalf("%s round trip lost data: %+v", f, got.Words)
		}
	}
}

func TestSafeName(t *testing.T) {
	cases := map[string]string{
		"Unit 1":      "Unit 1",
		"../../etc":   "etc",
		"期中 词表":       "期中 词表",
		"<script>":    "script",
		"!!!":         "vocabulary",
	}
	for in, want := range cases {
		if got := vocab.SafeName(in); got != want {
			t.Errorf("SafeName(%q) = %q, want %q", in, got, want)
		}
	}
}
