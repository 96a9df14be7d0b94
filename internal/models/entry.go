package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateDisplayLayout is the human-readable timestamp format stored alongside
// each entry and returned as the "date" field.
const DateDisplayLayout = "2006-01-02 15:04:05"

// Entry is a single journal entry in the journal_entries collection.
// Text and Timestamp are immutable after creation; Sentiment may be
// recomputed later.
type Entry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	Text        string             `bson:"text"`
	Timestamp   time.Time          `bson:"timestamp"`
	DateDisplay string             `bson:"date_display"`
	Sentiment   string             `bson:"sentiment,omitempty"`
}

// NewEntry builds an entry for owner with the given text, stamped now in UTC.
func NewEntry(owner, text string, now time.Time, sentiment Sentiment) Entry {
	now = now.UTC()
	return Entry{
		ID:          primitive.NewObjectID(),
		Username:    owner,
		Text:        text,
		Timestamp:   now,
		DateDisplay: now.Format(DateDisplayLayout),
		Sentiment:   string(sentiment),
	}
}

// ReadSentiment returns the entry's label normalized to the six read-time
// values, folding legacy or garbage stored strings to unknown.
func (e Entry) ReadSentiment() Sentiment {
	return NormalizeSentiment(e.Sentiment)
}
