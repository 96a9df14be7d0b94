package models

import "testing"

func TestParseSentiment(t *testing.T) {
	cases := map[string]Sentiment{
		"positive":  SentimentPositive,
		"neutral":   SentimentNeutral,
		"negative":  SentimentNegative,
		"mixed":     SentimentMixed,
		"":          SentimentUnknown,
		"happy":     SentimentUnknown,
		"POSITIVE":  SentimentUnknown, // callers lowercase before parsing
		"error":     SentimentUnknown, // the classifier may not emit the sentinel itself
		"positive.": SentimentUnknown,
	}
	for in, want := range cases {
		if got := ParseSentiment(in); got != want {
			t.Errorf("ParseSentiment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeSentiment(t *testing.T) {
	cases := map[string]Sentiment{
		"positive": SentimentPositive,
		"error":    SentimentError,
		"":         SentimentUnknown,
		"garbage":  SentimentUnknown,
	}
	for in, want := range cases {
		if got := NormalizeSentiment(in); got != want {
			t.Errorf("NormalizeSentiment(%q) = %q, want %q", in, got, want)
		}
	}
}
