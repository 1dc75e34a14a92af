// Package pdfdoc is the PDF backend for the analysis pipeline. It wraps
// github.com/ledongthuc/pdf for per-page text and font-span extraction and
// pdfcpu for embedded image export. A page that cannot be decoded surfaces as
// ErrMalformedPage so the caller can skip it and keep going.
package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// ErrMalformedPage reports that text or span extraction failed for one page.
// It never aborts the whole document; callers skip the page and continue.
var ErrMalformedPage = errors.New("malformed page")

// Span is a run of text sharing one font face and size, the signal the
// structure detector works from.
type Span struct {
	Text     string
	Font     string
	FontSize float64
	Bold     bool
}

// Page holds the extracted content of a single page.
type Page struct {
	Index int // 1-based
	Text  string
	Spans []Span
}

// Document is an open PDF. Immutable once opened; Close releases the file
// handle.
type Document struct {
	path   string
	size   int64
	file   *os.File
	reader *pdflib.Reader
}

// Open reads the cross-reference structure of the PDF at path. The returned
// Document must be closed by the caller.
func Open(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{path: path, size: info.Size(), file: f, reader: reader}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string { return d.path }

// ByteSize returns the on-disk size of the document in bytes.
func (d *Document) ByteSize() int64 { return d.size }

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return d.reader.NumPage() }

// Page extracts text and font spans for the 1-based page index. Decode
// failures, including panics out of the PDF library on damaged content
// streams, are reported as ErrMalformedPage.
func (d *Document) Page(index int) (page Page, err error) {
	// The underlying library panics on some malformed content streams rather
	// than returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: page %d: %v", ErrMalformedPage, index, r)
		}
	}()

	if index < 1 || index > d.reader.NumPage() {
		return Page{}, fmt.Errorf("%w: page %d out of range", ErrMalformedPage, index)
	}
	p := d.reader.Page(index)
	if p.V.IsNull() {
		return Page{}, fmt.Errorf("%w: page %d has no content", ErrMalformedPage, index)
	}

	spans := collectSpans(p.Content())

	text, terr := p.GetPlainText(nil)
	if terr != nil {
		// Fall back to joining spans; only fail the page when both paths
		// produced nothing.
		text = joinSpans(spans)
		if text == "" {
			return Page{}, fmt.Errorf("%w: page %d: %v", ErrMalformedPage, index, terr)
		}
	}

	return Page{Index: index, Text: text, Spans: spans}, nil
}

// collectSpans groups consecutive content-stream text items that share a font
// face, size, and baseline into spans.
func collectSpans(content pdflib.Content) []Span {
	var spans []Span
	var cur *Span
	var curY float64
	for _, t := range content.Text {
		sameRun := cur != nil && cur.Font == t.Font && cur.FontSize == t.FontSize && curY == t.Y
		if sameRun {
			cur.Text += t.S
			continue
		}
		spans = append(spans, Span{
			Text:     t.S,
			Font:     t.Font,
			FontSize: t.FontSize,
			Bold:     boldFont(t.Font),
		})
		cur = &spans[len(spans)-1]
		curY = t.Y
	}
	for i := range spans {
		spans[i].Text = strings.TrimSpace(spans[i].Text)
	}
	return compactSpans(spans)
}

func compactSpans(spans []Span) []Span {
	out := spans[:0]
	for _, s := range spans {
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return out
}

func joinSpans(spans []Span) string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		parts = append(parts, s.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// boldFont infers bold weight from the font name. PDF fonts carry no explicit
// weight flag here, so the name is the only available signal.
func boldFont(name string) bool {
	n := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}
