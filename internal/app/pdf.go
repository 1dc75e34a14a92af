package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeReportPDF renders the Markdown report as a minimal PDF: headings get a
// larger bold font, table rows and list items become plain lines. This is
// intentionally simple and does not attempt full Markdown layout.
func writeReportPDF(markdown string, outPath string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		switch {
		case s == "":
			doc.Ln(4)
		case s == "---":
			doc.Ln(2)
			x, y := doc.GetX(), doc.GetY()
			doc.Line(x, y, x+180, y)
			doc.Ln(4)
		case strings.HasPrefix(s, "#"):
			level := 0
			for level < len(s) && s[level] == '#' {
				level++
			}
			text := strings.TrimSpace(s[level:])
			if text == "" {
				continue
			}
			size := 15.0
			if level >= 2 {
				size = 12.0
			}
			doc.SetFont("Helvetica", "B", size)
			doc.CellFormat(0, 8, tr(text), "", 1, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 11)
		case strings.HasPrefix(s, "|"):
			if isTableDivider(s) {
				continue
			}
			doc.MultiCell(0, 5, tr(tableRowText(s)), "", "L", false)
		default:
			doc.MultiCell(0, 5, tr(stripInlineMarkdown(s)), "", "L", false)
		}
	}

	return doc.OutputFileAndClose(outPath)
}

// isTableDivider recognizes the |---|---| separator row.
func isTableDivider(s string) bool {
	return strings.Trim(s, "|-: ") == ""
}

// tableRowText flattens a Markdown table row into tab-ish plain text.
func tableRowText(s string) string {
	cells := strings.Split(strings.Trim(s, "|"), "|")
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "    ")
}

func stripInlineMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	s = strings.TrimPrefix(s, "- ")
	return s
}
