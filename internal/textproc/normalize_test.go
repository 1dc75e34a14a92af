package textproc

import (
	"strings"
	"testing"
)

func TestJoinHyphenBreaks(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple break", "desenvolvi-\nmento", "desenvolvimento"},
		{"crlf break", "desenvolvi-\r\nmento", "desenvolvimento"},
		{"indented continuation", "proces-\n   samento", "processamento"},
		{"hyphen without break kept", "guarda-chuva", "guarda-chuva"},
		{"multiple breaks", "aná-\nlise e conta-\ngem", "análise e contagem"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := JoinHyphenBreaks(tc.in); got != tc.want {
				t.Fatalf("JoinHyphenBreaks(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFoldAccents(t *testing.T) {
	cases := []struct{ in, want string }{
		{"análise", "analise"},
		{"coração", "coracao"},
		{"ÀÉÎÕÜ", "AEIOU"},
		{"plain ascii", "plain ascii"},
	}
	for _, tc := range cases {
		if got := FoldAccents(tc.in); got != tc.want {
			t.Errorf("FoldAccents(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeJoinsFoldsAndLowercases(t *testing.T) {
	in := "O Desenvolvi-\nmento da ANÁLISE"
	got := Normalize(in)
	if !strings.Contains(got, "desenvolvimento") {
		t.Fatalf("expected joined word in output, got %q", got)
	}
	if strings.ContainsAny(got, "ÁÀÃ") || got != strings.ToLower(got) {
		t.Fatalf("expected folded lowercase output, got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
