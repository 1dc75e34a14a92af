// Package llm is the seam between the summarizer and whatever chat backend
// the user points the tool at. The primary target is a local OpenAI-compatible
// server (Ollama, llama.cpp, LM Studio); the hosted API works through the same
// interface because only the base URL differs.
package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the single call the summarizer needs. Tests substitute in-memory
// fakes; production wraps a go-openai client via OpenAICompatible.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ModelLister is the optional capability behind the startup connectivity
// check: listing models is cheap on local servers and proves the endpoint is
// reachable before any document work happens. Callers detect support with a
// type assertion.
type ModelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// OpenAICompatible adapts a configured *openai.Client to Client and
// ModelLister.
type OpenAICompatible struct {
	API *openai.Client
}

func (c *OpenAICompatible) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return c.API.CreateChatCompletion(ctx, request)
}

func (c *OpenAICompatible) ListModels(ctx context.Context) (openai.ModelsList, error) {
	return c.API.ListModels(ctx)
}
