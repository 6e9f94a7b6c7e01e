package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMClient wraps the OpenAI-compatible chat model used by the wellness
// coach.
type LLMClient struct {
	Chat llms.Model
}

// NewLLMClient builds a client for any OpenAI-compatible endpoint.
func NewLLMClient(apiKey, endpoint, model string) (*LLMClient, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if endpoint != "" {
		opts = append(opts, openai.WithBaseURL(endpoint))
	}

	chat, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &LLMClient{Chat: chat}, nil
}
