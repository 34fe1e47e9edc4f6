package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var Columns = []string{"question", "optionA", "optionB", "optionC", "optionD", "correctAnswer"}

var Header = strings.Join(Columns, ",")

// CSVWriter is the single owner of a quiz CSV file. All appends through one
// writer are serialized, so the header is written at most once.
type CSVWriter struct {
	mu           sync.Mutex
	path         string
	escapeQuotes bool
}

func NewCSVWriter(path string, escapeQuotes bool) *CSVWriter {
	return &CSVWriter{path: path, escapeQuotes: escapeQuotes}
}

func (w *CSVWriter) Path() string {
	return w.path
}

// Name is the file name reported back to clients.
func (w *CSVWriter) Name() string {
	return filepath.Base(w.path)
}

// Append writes records as quoted rows, prefixed by the header when the file
// does not exist yet. It returns the number of data rows written.
func (w *CSVWriter) Append(ctx context.Context, records [][]string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	created := false
	if _, err := os.Stat(w.path); errors.Is(err, fs.ErrNotExist) {
		created = true
	} else if err != nil {
		return 0, fmt.Errorf("stat %s: %w", w.path, err)
	}

	var buf bytes.Buffer
	if created {
		buf.WriteString(Header)
		buf.WriteByte('\n')
	}
	for _, rec := range records {
		buf.WriteString(FormatRow(rec, w.escapeQuotes))
		buf.WriteByte('\n')
	}
	if buf.Len() == 0 {
		return 0, nil
	}

	if created {
		if dir := filepath.Dir(w.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return 0, fmt.Errorf("create dir %s: %w", dir, err)
			}
		}
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", w.path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return 0, fmt.Errorf("write %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", w.path, err)
	}
	return len(records), nil
}

// FormatRow wraps every cell in double quotes and joins them with commas.
// Embedded quotes and commas are left as-is unless escapeQuotes is set, in
// which case quotes are doubled.
func FormatRow(cells []string, escapeQuotes bool) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		if escapeQuotes {
			cell = strings.ReplaceAll(cell, `"`, `""`)
		}
		quoted[i] = `"` + cell + `"`
	}
	return strings.Join(quoted, ",")
}
