// Package llm wraps the language-model endpoint behind two calls: Classify
// for sentiment labels and Generate for narrative text. Failures never
// escape Classify; they degrade to the error/unknown sentinels instead.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/models"
)

type Client struct {
	api   *openai.Client
	model string
}

// New builds a client for any OpenAI-compatible endpoint. baseURL may be
// empty to use the default API host.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func (c *Client) complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Classify returns the sentiment label for text. A transport failure yields
// the error sentinel, an answer outside the canonical four yields unknown;
// the caller's write proceeds either way.
func (c *Client) Classify(ctx context.Context, text string) models.Sentiment {
	raw, err := c.complete(ctx, SentimentPrompt(text), ClassifyTemperature, ClassifyMaxTokens)
	if err != nil {
		log.Error().Err(err).Msg("sentiment classification call failed")
		return models.SentimentError
	}
	return models.ParseSentiment(strings.ToLower(strings.TrimSpace(raw)))
}

// Generate runs one narrative generation. Transport failures and empty
// responses both surface as apperr.ErrGeneration.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	raw, err := c.complete(ctx, prompt, temperature, maxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrGeneration, err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", apperr.ErrGeneration)
	}
	return text, nil
}
