// Package stopwords supplies fixed stopword sets per language code. The lists
// ship inside the binary so the tool works offline; entries are folded through
// the same normalization as document tokens, which makes lookups against
// accent-stripped tokens exact ("não" matches "nao").
package stopwords

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/mvbarbosa/pdfscope/internal/textproc"
)

//go:embed data/*.txt
var dataFS embed.FS

var (
	mu    sync.Mutex
	cache = map[string]map[string]struct{}{}
)

// Supported reports whether a stopword list ships for the given language code.
func Supported(lang string) bool {
	_, err := dataFS.ReadFile("data/" + strings.ToLower(strings.TrimSpace(lang)) + ".txt")
	return err == nil
}

// For returns the stopword set for a language code such as "pt" or "en".
// Unknown codes return an error; callers typically fall back to an empty set.
func For(lang string) (map[string]struct{}, error) {
	key := strings.ToLower(strings.TrimSpace(lang))
	if key == "" {
		return nil, fmt.Errorf("empty language code")
	}

	mu.Lock()
	defer mu.Unlock()
	if set, ok := cache[key]; ok {
		return set, nil
	}

	f, err := dataFS.Open("data/" + key + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no stopword list for language %q", lang)
	}
	defer f.Close()

	set := make(map[string]struct{}, 256)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		folded := strings.ToLower(textproc.FoldAccents(word))
		set[folded] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopword list %q: %w", lang, err)
	}

	cache[key] = set
	return set, nil
}
