package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func init() {
	sleepFunc = func(int) {}
}

// fakeClient replays scripted responses and records requests.
type fakeClient struct {
	responses []string
	failures  int // fail this many calls before succeeding
	calls     []openai.ChatCompletionRequest
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls = append(f.calls, req)
	if f.failures > 0 {
		f.failures--
		return openai.ChatCompletionResponse{}, errors.New("connection refused")
	}
	content := "resumo"
	if len(f.responses) > 0 {
		content = f.responses[0]
		if len(f.responses) > 1 {
			f.responses = f.responses[1:]
		}
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
	}, nil
}

func TestSummarizeShortText(t *testing.T) {
	client := &fakeClient{responses: []string{"um resumo curto"}}
	s := &Summarizer{Client: client, Model: "test-model", Language: "pt"}

	out, err := s.Summarize(context.Background(), "texto breve sobre gatos")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if out != "um resumo curto" {
		t.Fatalf("got %q", out)
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected single call, got %d", len(client.calls))
	}
	if client.calls[0].Model != "test-model" {
		t.Fatalf("model = %q", client.calls[0].Model)
	}
}

func TestSummarizeChunksLongText(t *testing.T) {
	client := &fakeClient{responses: []string{"parcial", "parcial", "parcial", "final consolidado"}}
	s := &Summarizer{
		Client:         client,
		Model:          "test-model",
		ChunkThreshold: 50,
		ChunkSize:      40,
		MaxChunks:      3,
	}

	long := strings.Repeat("palavra repetida muitas vezes ", 20)
	out, err := s.Summarize(context.Background(), long)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	// 3 chunk calls plus 1 consolidation call.
	if len(client.calls) != 4 {
		t.Fatalf("expected 4 calls, got %d", len(client.calls))
	}
	if out != "final consolidado" {
		t.Fatalf("got %q", out)
	}
}

func TestSummarizeRetriesOnce(t *testing.T) {
	client := &fakeClient{failures: 1, responses: []string{"depois do retry"}}
	s := &Summarizer{Client: client, Model: "m"}

	out, err := s.Summarize(context.Background(), "texto")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if out != "depois do retry" || len(client.calls) != 2 {
		t.Fatalf("out=%q calls=%d", out, len(client.calls))
	}
}

func TestSummarizeOrMarkerFallsBack(t *testing.T) {
	client := &fakeClient{failures: 2}
	s := &Summarizer{Client: client, Model: "m"}

	if got := s.SummarizeOrMarker(context.Background(), "texto"); got != UnavailableMarker {
		t.Fatalf("expected marker, got %q", got)
	}
}

func TestSummarizeErrorsAreUnavailable(t *testing.T) {
	client := &fakeClient{failures: 2}
	s := &Summarizer{Client: client, Model: "m"}
	if _, err := s.Summarize(context.Background(), "texto"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	unconfigured := &Summarizer{}
	if _, err := unconfigured.Summarize(context.Background(), "texto"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for unconfigured summarizer, got %v", err)
	}

	configured := &Summarizer{Client: client, Model: "m"}
	if _, err := configured.Summarize(context.Background(), "   "); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for empty text, got %v", err)
	}
}

func TestPromptsFollowLanguageHint(t *testing.T) {
	if !strings.Contains(summaryPrompt("pt"), "português") {
		t.Fatal("pt prompt should be portuguese")
	}
	if strings.Contains(summaryPrompt("en"), "português") {
		t.Fatal("en prompt should not be portuguese")
	}
}
