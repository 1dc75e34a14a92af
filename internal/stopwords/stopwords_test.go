package stopwords

import "testing"

func TestForPortugueseIsFolded(t *testing.T) {
	set, err := For("pt")
	if err != nil {
		t.Fatalf("For(pt): %v", err)
	}
	if len(set) == 0 {
		t.Fatal("expected non-empty portuguese set")
	}
	// Entries must be stored accent-folded so they match normalized tokens.
	for _, w := range []string{"nao", "tambem", "voce", "para", "que"} {
		if _, ok := set[w]; !ok {
			t.Errorf("expected folded stopword %q in set", w)
		}
	}
	if _, ok := set["não"]; ok {
		t.Error("accented form should have been folded out of the set")
	}
}

func TestForEnglish(t *testing.T) {
	set, err := For("en")
	if err != nil {
		t.Fatalf("For(en): %v", err)
	}
	for _, w := range []string{"the", "and", "of"} {
		if _, ok := set[w]; !ok {
			t.Errorf("expected stopword %q in set", w)
		}
	}
}

func TestForUnknownLanguage(t *testing.T) {
	if _, err := For("xx"); err == nil {
		t.Fatal("expected error for unknown language")
	}
	if _, err := For(""); err == nil {
		t.Fatal("expected error for empty language")
	}
}

func TestSupported(t *testing.T) {
	if !Supported("pt") || !Supported("EN") {
		t.Fatal("expected pt and en to be supported")
	}
	if Supported("zz") {
		t.Fatal("zz should not be supported")
	}
}

func TestForIsCached(t *testing.T) {
	a, err := For("pt")
	if err != nil {
		t.Fatal(err)
	}
	b, err := For("PT")
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("cache returned different sets: %d vs %d", len(a), len(b))
	}
}
