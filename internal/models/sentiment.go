package models

// Sentiment is the label attached to a journal entry by the classifier.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"

	// SentimentUnknown marks entries whose classifier output did not parse,
	// or entries written before sentiment existed.
	SentimentUnknown Sentiment = "unknown"
	// SentimentError marks entries whose classification call failed outright.
	SentimentError Sentiment = "error"
)

// CanonicalSentiments are the labels the classifier is allowed to produce.
var CanonicalSentiments = []Sentiment{
	SentimentPositive,
	SentimentNeutral,
	SentimentNegative,
	SentimentMixed,
}

// ParseSentiment maps a classifier's raw output to a Sentiment. Anything
// outside the canonical four becomes unknown.
func ParseSentiment(s string) Sentiment {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentMixed:
		return Sentiment(s)
	default:
		return SentimentUnknown
	}
}

// NormalizeSentiment maps a stored label to one of the six read-time values.
// Absent or unrecognized stored strings fold to unknown.
func NormalizeSentiment(s string) Sentiment {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentMixed, SentimentError:
		return Sentiment(s)
	default:
		return SentimentUnknown
	}
}
