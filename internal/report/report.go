// Package report renders an analysis result into display formats: a plain
// console block, a Markdown document, and an HTML rendering of that Markdown.
// All renderers are pure formatting over the same input; persisting the output
// is the caller's job.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/mvbarbosa/pdfscope/internal/analysis"
	"github.com/mvbarbosa/pdfscope/internal/fsutil"
)

const separator = "======================================================================"

// maxConsoleImages bounds the image list on the console; the Markdown report
// always lists all of them.
const maxConsoleImages = 5

// Input bundles everything a rendering needs.
type Input struct {
	Result analysis.Result
	// Images are paths of extracted image files, possibly empty.
	Images []string
	// ImageDir is where the images were written, shown when Images is non-empty.
	ImageDir string
	// Summary is the model-generated summary; empty means the summary section
	// is omitted.
	Summary string
}

// Console renders the analysis block shown on stdout.
func Console(in Input) string {
	r := in.Result
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nPDF ANALYSIS\n%s\n\n", separator, separator)
	fmt.Fprintf(&b, "File:  %s\n", r.FileName)
	fmt.Fprintf(&b, "Path:  %s\n\n", r.FilePath)
	fmt.Fprintf(&b, "Pages:           %d\n", r.PageCount)
	fmt.Fprintf(&b, "Size:            %s (%d bytes)\n", fsutil.FormatBytes(r.ByteSize), r.ByteSize)
	fmt.Fprintf(&b, "Words:           %d\n", r.WordCount)
	fmt.Fprintf(&b, "Vocabulary:      %d distinct words\n", r.VocabularySize)
	if len(r.SkippedPages) > 0 {
		fmt.Fprintf(&b, "Skipped pages:   %s\n", joinInts(r.SkippedPages))
	}

	if len(r.TopWords) > 0 {
		fmt.Fprintf(&b, "\nMost frequent words (stopwords removed):\n")
		for i, e := range r.TopWords {
			fmt.Fprintf(&b, "  %2d. %-20s %d\n", i+1, e.Word, e.Count)
		}
	}

	if len(r.Outline) > 0 {
		fmt.Fprintf(&b, "\nDocument outline:\n")
		for _, h := range r.Outline {
			fmt.Fprintf(&b, "  %s%s (p. %d)\n", levelIndent(h.Level), h.Text, h.Page)
		}
	}

	if len(in.Images) > 0 {
		fmt.Fprintf(&b, "\n%s\nIMAGES\n%s\n\n", separator, separator)
		fmt.Fprintf(&b, "Extracted %d images to %s\n", len(in.Images), in.ImageDir)
		for i, p := range in.Images {
			if i == maxConsoleImages {
				fmt.Fprintf(&b, "  ... and %d more\n", len(in.Images)-maxConsoleImages)
				break
			}
			fmt.Fprintf(&b, "  - %s\n", filepath.Base(p))
		}
	}

	if in.Summary != "" {
		fmt.Fprintf(&b, "\n%s\nSUMMARY\n%s\n\n%s\n", separator, separator, in.Summary)
	}

	return b.String()
}

// Markdown renders the full report document.
func Markdown(in Input) string {
	r := in.Result
	var b strings.Builder

	b.WriteString("# PDF Analysis Report\n\n")

	b.WriteString("## Document\n\n")
	fmt.Fprintf(&b, "- **File**: `%s`\n", r.FileName)
	fmt.Fprintf(&b, "- **Path**: `%s`\n", r.FilePath)
	fmt.Fprintf(&b, "- **Pages**: %d\n", r.PageCount)
	fmt.Fprintf(&b, "- **Size**: %s (%d bytes)\n", fsutil.FormatBytes(r.ByteSize), r.ByteSize)
	fmt.Fprintf(&b, "- **Words**: %d\n", r.WordCount)
	fmt.Fprintf(&b, "- **Vocabulary**: %d distinct words\n", r.VocabularySize)
	if len(r.SkippedPages) > 0 {
		fmt.Fprintf(&b, "- **Skipped pages**: %s\n", joinInts(r.SkippedPages))
	}
	b.WriteString("\n")

	if len(r.TopWords) > 0 {
		b.WriteString("## Most frequent words\n\n")
		b.WriteString("| # | Word | Count |\n")
		b.WriteString("|---|------|-------|\n")
		for i, e := range r.TopWords {
			fmt.Fprintf(&b, "| %d | %s | %d |\n", i+1, e.Word, e.Count)
		}
		b.WriteString("\n")
	}

	if len(r.Outline) > 0 {
		b.WriteString("## Outline\n\n")
		for _, h := range r.Outline {
			fmt.Fprintf(&b, "%s- %s (p. %d)\n", levelIndent(h.Level), h.Text, h.Page)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Images\n\n")
	fmt.Fprintf(&b, "**Total**: %d\n\n", len(in.Images))
	if len(in.Images) > 0 {
		for _, p := range in.Images {
			fmt.Fprintf(&b, "- `%s`\n", filepath.Base(p))
		}
		b.WriteString("\n")
	}

	if in.Summary != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(in.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString("---\n")
	b.WriteString("*Generated by pdfscope*\n")
	return b.String()
}

// HTML converts the Markdown report to a standalone HTML fragment. Table
// support is enabled since the report relies on it.
func HTML(in Input) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var out strings.Builder
	if err := md.Convert([]byte(Markdown(in)), &out); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return out.String(), nil
}

// levelIndent indents two spaces per heading level below the top.
func levelIndent(level int) string {
	if level < 2 {
		return ""
	}
	return strings.Repeat("  ", level-1)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
