// Package textproc implements the text side of the analysis pipeline:
// normalization of raw page text, tokenization with stopword filtering, and
// chunking of long text for model input limits.
package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// hyphenBreakRe matches a hyphen followed by a line break, the artifact left
// by justified PDF text when a word is split across lines.
var hyphenBreakRe = regexp.MustCompile(`(\p{L})-\s*\r?\n\s*(\p{L})`)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize cleans raw extracted page text: hyphen-broken words are rejoined
// across line breaks, accents are folded away via canonical decomposition, and
// the result is lowercased. Empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	joined := JoinHyphenBreaks(raw)
	return strings.ToLower(FoldAccents(joined))
}

// JoinHyphenBreaks rejoins words split across line breaks, turning
// "desenvolvi-\nmento" into "desenvolvimento". Hyphens not adjacent to a line
// break are left alone.
func JoinHyphenBreaks(s string) string {
	return hyphenBreakRe.ReplaceAllString(s, "$1$2")
}

// FoldAccents applies Unicode canonical decomposition and strips combining
// marks, so "análise" becomes "analise". Input that fails to transform is
// returned unchanged.
func FoldAccents(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}
