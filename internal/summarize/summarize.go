// Package summarize asks a chat model for a document summary. Long documents
// are split into bounded chunks which are summarized individually and then
// consolidated in a second pass. Summarization is best-effort: when the model
// is unreachable the caller receives an explicit marker instead of an error
// aborting the run.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/mvbarbosa/pdfscope/internal/llm"
	"github.com/mvbarbosa/pdfscope/internal/textproc"
)

// UnavailableMarker is substituted for the summary when generation fails.
const UnavailableMarker = "(resumo indisponível / summary unavailable)"

// ErrUnavailable indicates the model could not produce a summary. It is
// recovered by SummarizeOrMarker and never propagates past this package's
// public surface.
var ErrUnavailable = errors.New("summarization unavailable")

// sleepFunc is injectable so tests do not wait on the retry backoff.
var sleepFunc = func(ms int) { time.Sleep(time.Duration(ms) * time.Millisecond) }

// Summarizer produces document summaries through an OpenAI-compatible client.
type Summarizer struct {
	Client llm.Client
	Model  string
	// Language is a hint for the summary language, e.g. "pt" or "en".
	Language string

	// ChunkThreshold is the text length above which map-reduce chunking kicks
	// in. ChunkSize bounds each chunk and MaxChunks caps how many chunks are
	// summarized. Zero values take the defaults 3000 / 1000 / 5.
	ChunkThreshold int
	ChunkSize      int
	MaxChunks      int
}

// SummarizeOrMarker returns the summary, or UnavailableMarker when the model
// fails. It never returns an error.
func (s *Summarizer) SummarizeOrMarker(ctx context.Context, text string) string {
	out, err := s.Summarize(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("summary unavailable, substituting marker")
		return UnavailableMarker
	}
	return out
}

// Summarize generates a summary for text. Failures are reported as
// ErrUnavailable wrapped with the cause.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return "", fmt.Errorf("%w: summarizer not configured", ErrUnavailable)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text to summarize", ErrUnavailable)
	}

	threshold := s.ChunkThreshold
	if threshold <= 0 {
		threshold = 3000
	}
	if len(text) <= threshold {
		return s.complete(ctx, summaryPrompt(s.Language), text)
	}
	return s.mapReduce(ctx, text)
}

// mapReduce summarizes the first MaxChunks chunks individually and then asks
// the model to consolidate the partial summaries.
func (s *Summarizer) mapReduce(ctx context.Context, text string) (string, error) {
	size := s.ChunkSize
	if size <= 0 {
		size = 1000
	}
	maxChunks := s.MaxChunks
	if maxChunks <= 0 {
		maxChunks = 5
	}

	chunks := textproc.SplitChunks(text, size)
	if len(chunks) > maxChunks {
		chunks = chunks[:maxChunks]
	}
	log.Debug().Int("chunks", len(chunks)).Msg("summarizing in chunks")

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		part, err := s.complete(ctx, summaryPrompt(s.Language), chunk)
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		partials = append(partials, part)
	}

	return s.complete(ctx, consolidatePrompt(s.Language), strings.Join(partials, " "))
}

// complete performs one chat call with a single retry after a short backoff,
// matching the transient-error policy used elsewhere in the pipeline.
func (s *Summarizer) complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
		N:           1,
	}

	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		sleepFunc(100)
		resp, err = s.Client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: model returned no choices", ErrUnavailable)
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("%w: model returned empty content", ErrUnavailable)
	}
	return out, nil
}

func summaryPrompt(lang string) string {
	if strings.HasPrefix(strings.ToLower(lang), "pt") {
		return "Você resume documentos. Responda apenas com um resumo conciso, em português, do texto fornecido."
	}
	return "You summarize documents. Reply only with a concise summary of the provided text."
}

func consolidatePrompt(lang string) string {
	if strings.HasPrefix(strings.ToLower(lang), "pt") {
		return "Combine os resumos parciais a seguir em um único resumo consolidado, em português."
	}
	return "Combine the following partial summaries into a single consolidated summary."
}
