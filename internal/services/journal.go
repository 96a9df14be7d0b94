package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/models"
	"github.com/kbatra339/mindease-backend/internal/store"
)

// Classifier maps entry text to a sentiment label. Implementations degrade
// to the unknown/error sentinels and never return an error.
type Classifier interface {
	Classify(ctx context.Context, text string) models.Sentiment
}

// Generator produces narrative text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}

// JournalService handles entry creation, listing, and sentiment updates.
type JournalService struct {
	entries    store.EntryStore
	classifier Classifier
	now        func() time.Time
}

func NewJournalService(entries store.EntryStore, classifier Classifier) *JournalService {
	return &JournalService{
		entries:    entries,
		classifier: classifier,
		now:        time.Now,
	}
}

// AddEntry classifies and persists a new entry. A failed or unparseable
// classification degrades the label; it never blocks the write.
func (s *JournalService) AddEntry(ctx context.Context, owner, text string) (models.Entry, error) {
	if text == "" {
		return models.Entry{}, fmt.Errorf("%w: text is required", apperr.ErrValidation)
	}

	sentiment := s.classifier.Classify(ctx, text)
	log.Info().Str("username", owner).Str("sentiment", string(sentiment)).Msg("classified new journal entry")

	entry := models.NewEntry(owner, text, s.now(), sentiment)
	if err := s.entries.Insert(ctx, entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// ListEntries returns all of owner's entries, newest first.
func (s *JournalService) ListEntries(ctx context.Context, owner string) ([]models.Entry, error) {
	return s.entries.ListByOwner(ctx, owner)
}

// UpdateSentiment re-classifies the stored text of one entry and overwrites
// its label, returning the new one. The ownership check is part of the
// lookup, so a foreign entry id reports not found.
func (s *JournalService) UpdateSentiment(ctx context.Context, owner, entryID string) (models.Sentiment, error) {
	entry, err := s.entries.FindByID(ctx, owner, entryID)
	if err != nil {
		return "", err
	}

	sentiment := s.classifier.Classify(ctx, entry.Text)
	if err := s.entries.UpdateSentiment(ctx, owner, entryID, sentiment); err != nil {
		return "", err
	}
	return sentiment, nil
}
