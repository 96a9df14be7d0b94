// Package store abstracts the two document collections (users and
// journal_entries) behind narrow interfaces so the service layer can run
// against MongoDB in production and an in-memory store in tests.
package store

import (
	"context"
	"time"

	"github.com/kbatra339/mindease-backend/internal/models"
)

// UserStore is the users collection.
type UserStore interface {
	// Find returns the user or apperr.ErrNotFound.
	Find(ctx context.Context, username string) (models.User, error)
	Insert(ctx context.Context, user models.User) error
	// UpdatePassword replaces the stored digest for username.
	UpdatePassword(ctx context.Context, username, digest string) error
}

// SentimentCount is one group-by-label bucket. Sentiment is the raw stored
// string; folding to canonical labels happens in the service layer.
type SentimentCount struct {
	Sentiment string
	Count     int
}

// DaySentimentCount is one (calendar day, label) bucket. Date is the UTC day
// of the stored timestamp, formatted YYYY-MM-DD.
type DaySentimentCount struct {
	Date      string
	Sentiment string
	Count     int
}

// EntryStore is the journal_entries collection. All queries are scoped by
// owner; entry ids are hex-encoded ObjectIDs.
type EntryStore interface {
	Insert(ctx context.Context, entry models.Entry) error
	// ListByOwner returns all of owner's entries, newest first.
	ListByOwner(ctx context.Context, owner string) ([]models.Entry, error)
	// ListRecent returns owner's most recent entries, newest first, up to limit.
	ListRecent(ctx context.Context, owner string, limit int) ([]models.Entry, error)
	// ListBetween returns owner's entries with start <= timestamp <= end,
	// oldest first.
	ListBetween(ctx context.Context, owner string, start, end time.Time) ([]models.Entry, error)
	// FindByID returns the entry or apperr.ErrNotFound; an id that is not a
	// valid ObjectID hex also reports not found.
	FindByID(ctx context.Context, owner, id string) (models.Entry, error)
	UpdateSentiment(ctx context.Context, owner, id string, sentiment models.Sentiment) error
	// CountBySentiment groups owner's entries by raw stored label; entries
	// without a label are reported under "unknown".
	CountBySentiment(ctx context.Context, owner string) ([]SentimentCount, error)
	// CountByDaySentiment groups owner's entries by (UTC day, raw label),
	// ordered by day ascending.
	CountByDaySentiment(ctx context.Context, owner string) ([]DaySentimentCount, error)
}
