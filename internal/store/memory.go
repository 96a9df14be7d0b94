package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/models"
)

// MemoryUserStore is an in-memory UserStore used by the tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Find(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	return user, nil
}

func (s *MemoryUserStore) Insert(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.Username] = user
	return nil
}

func (s *MemoryUserStore) UpdatePassword(_ context.Context, username, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return apperr.ErrNotFound
	}
	user.Password = digest
	s.users[username] = user
	return nil
}

// MemoryEntryStore is an in-memory EntryStore used by the tests.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{}
}

func (s *MemoryEntryStore) Insert(_ context.Context, entry models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryEntryStore) owned(owner string) []models.Entry {
	var out []models.Entry
	for _, e := range s.entries {
		if e.Username == owner {
			out = append(out, e)
		}
	}
	return out
}

func (s *MemoryEntryStore) ListByOwner(_ context.Context, owner string) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.owned(owner)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

func (s *MemoryEntryStore) ListRecent(ctx context.Context, owner string, limit int) ([]models.Entry, error) {
	entries, err := s.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *MemoryEntryStore) ListBetween(_ context.Context, owner string, start, end time.Time) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Entry
	for _, e := range s.owned(owner) {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (s *MemoryEntryStore) FindByID(_ context.Context, owner, id string) (models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.Username == owner && e.ID.Hex() == id {
			return e, nil
		}
	}
	return models.Entry{}, apperr.ErrNotFound
}

func (s *MemoryEntryStore) UpdateSentiment(_ context.Context, owner, id string, sentiment models.Sentiment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.Username == owner && e.ID.Hex() == id {
			s.entries[i].Sentiment = string(sentiment)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (s *MemoryEntryStore) CountBySentiment(_ context.Context, owner string) ([]SentimentCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grouped := make(map[string]int)
	for _, e := range s.owned(owner) {
		label := e.Sentiment
		if label == "" {
			label = "unknown"
		}
		grouped[label]++
	}
	var out []SentimentCount
	for label, n := range grouped {
		out = append(out, SentimentCount{Sentiment: label, Count: n})
	}
	return out, nil
}

func (s *MemoryEntryStore) CountByDaySentiment(_ context.Context, owner string) ([]DaySentimentCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	type key struct {
		date      string
		sentiment string
	}
	grouped := make(map[key]int)
	for _, e := range s.owned(owner) {
		label := e.Sentiment
		if label == "" {
			label = "unknown"
		}
		grouped[key{e.Timestamp.UTC().Format("2006-01-02"), label}]++
	}
	out := make([]DaySentimentCount, 0, len(grouped))
	for k, n := range grouped {
		out = append(out, DaySentimentCount{Date: k.date, Sentiment: k.sentiment, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}
