package services

import (
	"context"

	"github.com/kbatra339/mindease-backend/internal/models"
)

// stubClassifier labels every text via the byText table, falling back to a
// fixed label.
type stubClassifier struct {
	label  models.Sentiment
	byText map[string]models.Sentiment
	calls  int
}

func (s *stubClassifier) Classify(_ context.Context, text string) models.Sentiment {
	s.calls++
	if label, ok := s.byText[text]; ok {
		return label
	}
	if s.label == "" {
		return models.SentimentNeutral
	}
	return s.label
}

// stubGenerator returns a canned response and records what it was asked.
type stubGenerator struct {
	text       string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, _ float32, _ int) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}
