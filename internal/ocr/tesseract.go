package ocr

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Tesseract runs a locally installed tesseract binary. It is the offline
// fallback when no OCR service is configured; line confidences are reported
// as 1.0 since the CLI does not expose them.
type Tesseract struct {
	Lang    string
	Timeout time.Duration
}

func NewTesseract() *Tesseract {
	return &Tesseract{Lang: "eng+chi_sim", Timeout: 20 * time.Second}
}

func (t *Tesseract) Recognize(ctx context.Context, image io.Reader) ([]Line, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, errors.New("tesseract not found in PATH")
	}

	f, err := os.CreateTemp("", "scan-*.img")
	if err != nil {
		return nil, err
	}
	defer func() { f.Close(); os.Remove(f.Name()) }()
	if _, err := io.Copy(f, image); err != nil {
		return nil, err
	}

	args := []string{f.Name(), "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "tesseract", args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.New(strings.TrimSpace(stderr.String()))
	}

	var lines []Line
	for _, ln := range strings.Split(out.String(), "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			lines = append(lines, Line{Text: s, Confidence: 1.0})
		}
	}
	return lines, nil
}
