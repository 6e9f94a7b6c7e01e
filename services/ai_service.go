package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// CoachService is the AI wellness companion. It sits alongside the
// static recommendation tables and does not influence them.
type CoachService struct {
	client *LLMClient
}

func NewCoachService(client *LLMClient) *CoachService {
	return &CoachService{client: client}
}

const coachSystemPrompt = `You are a compassionate mental wellness companion for young adults (ages 12-30).
Your role:
- Provide empathetic, supportive responses
- Generate personalized journal prompts
- Offer evidence-based wellness advice
- Be encouraging and warm
- Keep responses concise (under 150 words)
- Use simple, friendly language`

// Reply generates a single supportive response to the user's message.
// The reported mood, when present, is passed as context.
func (s *CoachService) Reply(ctx context.Context, message, mood string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(coachSystemPrompt)},
		},
	}

	if mood != "" {
		messages = append(messages, llms.MessageContent{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("The user reported feeling %s today.", mood))},
		})
	}

	messages = append(messages, llms.MessageContent{
		Role:  schema.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(message)},
	})

	resp, err := s.client.Chat.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(500),
	)
	if err != nil {
		return "", fmt.Errorf("generating coach reply: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("coach reply came back empty")
	}
	return resp.Choices[0].Content, nil
}
