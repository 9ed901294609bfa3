package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/veil/internal/dlp"
)

// WriteText decodes each returned item's payload as UTF-8 and writes it to w,
// one line per item.
func WriteText(w io.Writer, items []dlp.ContentItem) error {
	ew := &errWriter{w: w}
	for _, item := range items {
		ew.println(string(item.Data))
	}
	return ew.err
}

// WriteImage writes the first returned item's payload verbatim to path,
// creating the file or truncating whatever was there. Write and close errors
// both surface. A response with no items is an error.
func WriteImage(path string, items []dlp.ContentItem) error {
	if len(items) == 0 {
		return fmt.Errorf("service returned no content items")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if _, err := f.Write(items[0].Data); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
