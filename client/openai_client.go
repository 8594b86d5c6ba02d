package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// Classification request shape: deterministic-leaning temperature and a
// token budget that only fits a category name.
const (
	completionModel       = openai.GPT4oMini
	completionTemperature = 0.3
	completionMaxTokens   = 50
)

// LLMClient defines the language-model call the classification engine makes.
type LLMClient interface {
	// SuggestCategory sends a categorization prompt and returns the model's
	// trimmed free-text answer.
	SuggestCategory(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements LLMClient against the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  completionModel,
	}, nil
}

// SuggestCategory sends the prompt as a single user message and returns the
// first choice's content, trimmed.
func (c *OpenAIClient) SuggestCategory(ctx context.Context, prompt string) (string, error) {
	log.Debug().Int("prompt_len", len(prompt)).Msg("Sending categorization prompt to OpenAI")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openAI response contained no choices")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Info().Str("answer", answer).Msg("OpenAI suggested category")
	return answer, nil
}
