package textproc

import (
	"strings"
	"unicode"
)

// DefaultMinTokenLen drops very short tokens ("a", "of", stray letters from
// broken extraction). Three is a deliberate choice matching the frequency
// analysis this feeds, not a library default.
const DefaultMinTokenLen = 3

// TokenizerOptions control token filtering. The zero value keeps every word
// token of at least DefaultMinTokenLen runes.
type TokenizerOptions struct {
	// Stopwords are excluded from the token stream. May be nil.
	Stopwords map[string]struct{}
	// MinTokenLen drops tokens shorter than this many runes. Zero or negative
	// means DefaultMinTokenLen.
	MinTokenLen int
}

// Tokenize splits normalized text into word tokens, dropping punctuation-only
// tokens, stopwords, and tokens shorter than the configured minimum length.
// Input is expected to already be normalized (lowercased, accent-folded);
// Tokenize does not normalize again.
func Tokenize(normalized string, opts TokenizerOptions) []string {
	minLen := opts.MinTokenLen
	if minLen <= 0 {
		minLen = DefaultMinTokenLen
	}

	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minLen {
			continue
		}
		if !hasLetter(f) {
			continue
		}
		if opts.Stopwords != nil {
			if _, ok := opts.Stopwords[f]; ok {
				continue
			}
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
