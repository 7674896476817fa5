package vocab

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format names a vocabulary interchange format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatTXT:
		return FormatTXT, nil
	}
	return "", fmt.Errorf("unknown format %q (json, csv or txt)", s)
}

// Import parses a vocabulary file. JSON expects {"name":..., "words":[...]};
// CSV expects an en,cn header; TXT expects one "word meaning" pair per line
// with #-comments. The name argument overrides any name in the payload.
func Import(r io.Reader, format Format, name string) (Vocabulary, error) {
	switch format {
	case FormatJSON:
		return importJSON(r, name)
	case FormatCSV:
		return importCSV(r, name)
	case FormatTXT:
		return importTXT(r, name)
	}
	return Vocabulary{}, fmt.Errorf("unknown format %q", format)
}

func importJSON(r io.Reader, name string) (Vocabulary, error) {
	var v Vocabulary
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return Vocabulary{}, fmt.Errorf("parse json: %w", err)
	}
	if len(v.Words) == 0 {
		return Vocabulary{}, fmt.Errorf("json vocabulary has no words")
	}
	if name != "" {
		v.Name = name
	}
	if v.Name == "" {
		v.Name = "imported"
	}
	return v, Validate(v)
}

func importCSV(r io.Reader, name string) (Vocabulary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return Vocabulary{}, fmt.Errorf("parse csv: %w", err)
	}

	enCol, cnCol := 0, 1
	start := 0
	if len(rows) > 0 && looksLikeHeader(rows[0]) {
		for i, h := range rows[0] {
			switch strings.ToLower(strings.TrimSpace(h)) {
			case "en", "english", "word":
				enCol = i
			case "cn", "chinese", "meaning":
				cnCol = i
			}
		}
		start = 1
	}

	v := Vocabulary{Name: name}
	for _, row := range rows[start:] {
		if enCol >= len(row) {
			continue
		}
		en := strings.TrimSpace(row[enCol])
		if en == "" {
			continue
		}
		cn := ""
		if cnCol < len(row) {
			cn = strings.TrimSpace(row[cnCol])
		}
		v.Words = append(v.Words, Word{En: en, Cn: cn})
	}
	if len(v.Words) == 0 {
		return Vocabulary{}, fmt.Errorf("csv vocabulary has no words")
	}
	return v, Validate(v)
}

func looksLikeHeader(row []string) bool {
	for _, h := range row {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "en", "english", "word", "cn", "chinese", "meaning":
			return true
		}
	}
	return false
}

func importTXT(r io.Reader, name string) (Vocabulary, error) {
	v := Vocabulary{Name: name}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split english from meaning at the first run of whitespace or a tab
		var en, cn string
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			en, cn = line[:i], strings.TrimSpace(line[i:])
		} else {
			en = line
		}
		if en == "" {
			continue
		}
		v.Words = append(v.Words, Word{En: en, Cn: cn})
	}
	if err := sc.Err(); err != nil {
		return Vocabulary{}, fmt.Errorf("read txt: %w", err)
	}
	if len(v.Words) == 0 {
		return Vocabulary{}, fmt.Errorf("txt vocabulary has no words")
	}
	return v, Validate(v)
}

// Export writes a vocabulary in the requested format.
func Export(w io.Writer, v Vocabulary, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"en", "cn"}); err != nil {
			return err
		}
		for _, word := range v.Words {
			if err := cw.Write([]string{word.En, word.Cn}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatTXT:
		var buf bytes.Buffer
		for _, word := range v.Words {
			buf.WriteString(word.En)
			if word.Cn != "" {
				buf.WriteByte(' ')
				buf.WriteString(word.Cn)
			}
			buf.WriteByte('\n')
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// ContentType returns the MIME type served for an export.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
