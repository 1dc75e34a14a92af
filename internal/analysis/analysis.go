// Package analysis runs the per-page extraction pipeline and aggregates its
// outputs into an immutable Result. Pages are processed sequentially; a page
// that fails to decode is logged, recorded, and skipped rather than aborting
// the run.
package analysis

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvbarbosa/pdfscope/internal/freq"
	"github.com/mvbarbosa/pdfscope/internal/outline"
	"github.com/mvbarbosa/pdfscope/internal/pdfdoc"
	"github.com/mvbarbosa/pdfscope/internal/textproc"
)

// Source is the document contract the pipeline consumes. *pdfdoc.Document
// satisfies it; tests substitute fakes.
type Source interface {
	Path() string
	ByteSize() int64
	PageCount() int
	Page(index int) (pdfdoc.Page, error)
}

// Options configure one analysis run.
type Options struct {
	// Stopwords excluded from frequency counting. May be nil.
	Stopwords map[string]struct{}
	// MinTokenLen for the tokenizer; zero uses the tokenizer default.
	MinTokenLen int
	// TopN is how many frequent words to report. Zero means 10.
	TopN int
	// Outline holds structure-detection thresholds; zero values use defaults.
	Outline outline.Config
}

// Result aggregates everything the report layer renders. It is a value
// object: built once, never mutated.
type Result struct {
	FilePath       string
	FileName       string
	PageCount      int
	ByteSize       int64
	WordCount      int
	VocabularySize int
	TopWords       []freq.Entry
	Outline        []outline.Heading
	// SkippedPages lists 1-based indexes of pages dropped due to extraction
	// failures.
	SkippedPages []int
	// FullText is the normalized document text, kept for summarization.
	FullText string
}

// Empty reports whether the document yielded no usable tokens. An empty result
// is valid output, not an error.
func (r Result) Empty() bool {
	return r.WordCount == 0
}

// Run extracts every page of src, skipping malformed ones, and computes the
// lexical statistics and heading outline over the surviving text.
func Run(src Source, opts Options) Result {
	topN := opts.TopN
	if topN <= 0 {
		topN = 10
	}

	pageCount := src.PageCount()
	var (
		rawParts []string
		spans    []outline.PageSpans
		skipped  []int
	)
	for i := 1; i <= pageCount; i++ {
		page, err := src.Page(i)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("page skipped")
			skipped = append(skipped, i)
			continue
		}
		rawParts = append(rawParts, page.Text)
		if len(page.Spans) > 0 {
			spans = append(spans, outline.PageSpans{Page: page.Index, Spans: page.Spans})
		}
	}

	normalized := textproc.Normalize(strings.Join(rawParts, "\n"))
	tokens := textproc.Tokenize(normalized, textproc.TokenizerOptions{
		Stopwords:   opts.Stopwords,
		MinTokenLen: opts.MinTokenLen,
	})
	table := freq.Build(tokens)
	headings := outline.NewDetector(opts.Outline).Detect(spans)

	if table.Total() == 0 {
		log.Warn().Str("file", src.Path()).Msg("no usable text after filtering")
	}

	return Result{
		FilePath:       src.Path(),
		FileName:       filepath.Base(src.Path()),
		PageCount:      pageCount,
		ByteSize:       src.ByteSize(),
		WordCount:      table.Total(),
		VocabularySize: table.Distinct(),
		TopWords:       table.TopN(topN),
		Outline:        headings,
		SkippedPages:   skipped,
		FullText:       normalized,
	}
}
