package textproc

import (
	"reflect"
	"testing"
)

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	stop := map[string]struct{}{"de": {}, "para": {}}
	got := Tokenize("o gato de casa corre para o quintal", TokenizerOptions{Stopwords: stop})
	want := []string{"gato", "casa", "corre", "quintal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, tok := range got {
		if _, ok := stop[tok]; ok {
			t.Fatalf("stopword %q leaked into output", tok)
		}
		if len([]rune(tok)) < DefaultMinTokenLen {
			t.Fatalf("token %q shorter than minimum", tok)
		}
	}
}

func TestTokenizeMinLengthIsConfigurable(t *testing.T) {
	got := Tokenize("ab abc abcd", TokenizerOptions{MinTokenLen: 4})
	want := []string{"abcd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got = Tokenize("ab abc abcd", TokenizerOptions{MinTokenLen: 2})
	want = []string{"ab", "abc", "abcd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeDropsPunctuationOnlyTokens(t *testing.T) {
	got := Tokenize("sim... --- !!! nao; fim.", TokenizerOptions{})
	want := []string{"sim", "nao", "fim"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if got := Tokenize("", TokenizerOptions{}); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestSplitChunksRespectsWordBoundaries(t *testing.T) {
	text := "um dois tres quatro cinco seis sete oito"
	chunks := SplitChunks(text, 12)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %v", chunks)
	}
	var rejoined []string
	for _, c := range chunks {
		if len(c) > 12 {
			t.Errorf("chunk %q exceeds limit", c)
		}
		rejoined = append(rejoined, c)
	}
	// No word may be split: rejoining must reproduce the original word sequence.
	joined := ""
	for i, c := range rejoined {
		if i > 0 {
			joined += " "
		}
		joined += c
	}
	if joined != text {
		t.Fatalf("chunking altered content: %q", joined)
	}
}

func TestSplitChunksOversizedWord(t *testing.T) {
	chunks := SplitChunks("supercalifragilistic", 5)
	if len(chunks) != 1 || chunks[0] != "supercalifragilistic" {
		t.Fatalf("oversized word must stay whole, got %v", chunks)
	}
}

func TestSplitChunksEmpty(t *testing.T) {
	if got := SplitChunks("   ", 100); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}
