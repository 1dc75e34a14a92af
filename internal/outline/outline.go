// Package outline detects document headings from per-page font spans. A span
// is reported as a heading when it starts with a numbering pattern ("1.",
// "2.1", "I.", "A.", "Chapter 3") or when it is bold and noticeably larger
// than the body text. Candidates with neither signal are dropped: the detector
// prefers precision over recall.
package outline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mvbarbosa/pdfscope/internal/pdfdoc"
)

// Heading is one detected heading in document order. Lower level means more
// prominent (1 = chapter/title).
type Heading struct {
	Text  string
	Level int
	Page  int
}

// PageSpans carries the span metadata of one page into detection. Pages whose
// spans could not be extracted are simply absent from the input.
type PageSpans struct {
	Page  int
	Spans []pdfdoc.Span
}

// Config holds the detection thresholds. The ratio and minimum size are
// deliberate constants, not values inherited from any particular document.
type Config struct {
	// BodyRatio is the minimum font-size multiple over body text for the
	// font-signal path.
	BodyRatio float64
	// MinHeadingSize is an absolute floor so tiny fonts never qualify.
	MinHeadingSize float64
	// MaxHeadingWords caps heading length; prose lines in a large font are
	// not headings.
	MaxHeadingWords int
}

// DefaultConfig returns the documented thresholds: 1.2x body size with bold
// weight, at least 10pt, at most 16 words.
func DefaultConfig() Config {
	return Config{BodyRatio: 1.2, MinHeadingSize: 10, MaxHeadingWords: 16}
}

var (
	numberedRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.)]?\s+\S`)
	romanRe    = regexp.MustCompile(`^[IVXLCDM]+\.\s+\S`)
	letterRe   = regexp.MustCompile(`^[A-Z]\.\s+\S`)
	chapterRe  = regexp.MustCompile(`(?i)^(cap[ií]tulo|chapter|parte|part|se[çc][ãa]o|section)\s+\d+`)
)

// Detector finds headings across a document's pages.
type Detector struct {
	cfg Config
}

// NewDetector returns a Detector with the given config; zero fields fall back
// to the defaults.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.BodyRatio <= 0 {
		cfg.BodyRatio = def.BodyRatio
	}
	if cfg.MinHeadingSize <= 0 {
		cfg.MinHeadingSize = def.MinHeadingSize
	}
	if cfg.MaxHeadingWords <= 0 {
		cfg.MaxHeadingWords = def.MaxHeadingWords
	}
	return &Detector{cfg: cfg}
}

type candidate struct {
	heading  Heading
	numbered bool
	size     float64
}

// Detect returns headings in document order. A page with no spans contributes
// nothing; detection never fails.
func (d *Detector) Detect(pages []PageSpans) []Heading {
	body := bodyFontSize(pages)

	var candidates []candidate

	for _, p := range pages {
		for _, s := range p.Spans {
			text := strings.TrimSpace(s.Text)
			if text == "" || len(strings.Fields(text)) > d.cfg.MaxHeadingWords {
				continue
			}

			if level, ok := numberedLevel(text); ok {
				candidates = append(candidates, candidate{
					heading:  Heading{Text: text, Level: level, Page: p.Page},
					numbered: true,
				})
				continue
			}
			if d.fontSignal(s, body) {
				candidates = append(candidates, candidate{
					heading: Heading{Text: text, Page: p.Page},
					size:    s.FontSize,
				})
			}
		}
	}

	// Rank font-signal headings by size: the largest heading size becomes
	// level 1, the next level 2, and so on. Numbered headings keep the level
	// implied by their prefix.
	rank := fontSizeRanks(candidates)
	headings := make([]Heading, 0, len(candidates))
	for _, c := range candidates {
		h := c.heading
		if !c.numbered {
			h.Level = rank[bucket(c.size)]
		}
		headings = append(headings, h)
	}
	return headings
}

func (d *Detector) fontSignal(s pdfdoc.Span, body float64) bool {
	if !s.Bold || s.FontSize < d.cfg.MinHeadingSize {
		return false
	}
	return body > 0 && s.FontSize >= body*d.cfg.BodyRatio
}

// numberedLevel classifies a numbering prefix and maps it to a heading level:
// numeric prefixes use their depth ("2.1" is level 2), chapter/part/section
// words and Roman numerals read as level 1, letter prefixes as level 2.
func numberedLevel(text string) (int, bool) {
	if chapterRe.MatchString(text) {
		return 1, true
	}
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		level := strings.Count(m[1], ".") + 1
		if level > 6 {
			level = 6
		}
		return level, true
	}
	if romanRe.MatchString(text) {
		return 1, true
	}
	if letterRe.MatchString(text) {
		return 2, true
	}
	return 0, false
}

// bodyFontSize estimates the body text size as the most common span size,
// bucketed to 0.5pt and weighted by span text length.
func bodyFontSize(pages []PageSpans) float64 {
	weights := map[int]int{}
	for _, p := range pages {
		for _, s := range p.Spans {
			if s.FontSize <= 0 {
				continue
			}
			weights[bucket(s.FontSize)] += len(s.Text)
		}
	}
	// Ties go to the smaller bucket so the estimate never depends on map
	// iteration order; a smaller body size only makes the heading ratio
	// stricter.
	best, bestWeight := 0, 0
	for b, w := range weights {
		if w > bestWeight || (w == bestWeight && w > 0 && b < best) {
			best, bestWeight = b, w
		}
	}
	return float64(best) * 0.5
}

func bucket(size float64) int {
	return int(size / 0.5)
}

// fontSizeRanks maps each font-signal heading size bucket to a level by
// descending size.
func fontSizeRanks(candidates []candidate) map[int]int {
	seen := map[int]bool{}
	var sizes []float64
	for _, c := range candidates {
		if c.numbered || c.size <= 0 {
			continue
		}
		b := bucket(c.size)
		if !seen[b] {
			seen[b] = true
			sizes = append(sizes, c.size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	rank := make(map[int]int, len(sizes))
	for i, s := range sizes {
		level := i + 1
		if level > 6 {
			level = 6
		}
		rank[bucket(s)] = level
	}
	return rank
}
