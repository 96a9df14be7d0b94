package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/llm"
	"github.com/kbatra339/mindease-backend/internal/models"
	"github.com/kbatra339/mindease-backend/internal/store"
)

// NoEntriesMessage is the fixed period-summary response when the range holds
// no entries; no generation call is made in that case.
const NoEntriesMessage = "No journal entries found for the selected period."

const recentEntryLimit = 5

// SentimentSummary is the per-label count for one owner. Total is always the
// sum of the five buckets.
type SentimentSummary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Mixed    int `json:"mixed"`
	Unknown  int `json:"unknown"`
	Total    int `json:"total"`
}

// DayTrend is one calendar day's sentiment counts.
type DayTrend struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
	Mixed    int    `json:"mixed"`
	Unknown  int    `json:"unknown"`
}

// PeriodSummary is the narrative summary for a date range. EntryCount is
// always present, zero when nothing matched.
type PeriodSummary struct {
	Summary    string `json:"summary"`
	EntryCount int    `json:"entry_count"`
}

// InsightService handles the aggregate and narrative views over entries.
type InsightService struct {
	entries   store.EntryStore
	generator Generator
}

func NewInsightService(entries store.EntryStore, generator Generator) *InsightService {
	return &InsightService{entries: entries, generator: generator}
}

// SentimentSummary groups owner's entries by label. Labels outside the five
// summary buckets (including the error sentinel) fold into unknown.
func (s *InsightService) SentimentSummary(ctx context.Context, owner string) (SentimentSummary, error) {
	counts, err := s.entries.CountBySentiment(ctx, owner)
	if err != nil {
		return SentimentSummary{}, err
	}

	var summary SentimentSummary
	for _, c := range counts {
		switch models.Sentiment(c.Sentiment) {
		case models.SentimentPositive:
			summary.Positive += c.Count
		case models.SentimentNeutral:
			summary.Neutral += c.Count
		case models.SentimentNegative:
			summary.Negative += c.Count
		case models.SentimentMixed:
			summary.Mixed += c.Count
		default:
			summary.Unknown += c.Count
		}
		summary.Total += c.Count
	}
	return summary, nil
}

// SentimentTrends returns one record per UTC calendar day with counts for
// the five summary labels, ordered by day ascending.
func (s *InsightService) SentimentTrends(ctx context.Context, owner string) ([]DayTrend, error) {
	counts, err := s.entries.CountByDaySentiment(ctx, owner)
	if err != nil {
		return nil, err
	}

	var order []string
	byDate := make(map[string]*DayTrend)
	for _, c := range counts {
		day, ok := byDate[c.Date]
		if !ok {
			day = &DayTrend{Date: c.Date}
			byDate[c.Date] = day
			order = append(order, c.Date)
		}
		switch models.Sentiment(c.Sentiment) {
		case models.SentimentPositive:
			day.Positive += c.Count
		case models.SentimentNeutral:
			day.Neutral += c.Count
		case models.SentimentNegative:
			day.Negative += c.Count
		case models.SentimentMixed:
			day.Mixed += c.Count
		default:
			day.Unknown += c.Count
		}
	}

	trends := make([]DayTrend, 0, len(order))
	for _, date := range order {
		trends = append(trends, *byDate[date])
	}
	return trends, nil
}

// GenerateInsight produces a short reflection on one piece of text. Stateless:
// nothing is read from or written to the store.
func (s *InsightService) GenerateInsight(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: text is required", apperr.ErrValidation)
	}
	return s.generator.Generate(ctx, llm.InsightPrompt(text), llm.InsightTemperature, llm.InsightMaxTokens)
}

// GeneratePrompt suggests a journaling prompt based on owner's five most
// recent entries; users with no entries get a general prompt.
func (s *InsightService) GeneratePrompt(ctx context.Context, owner string) (string, error) {
	recent, err := s.entries.ListRecent(ctx, owner, recentEntryLimit)
	if err != nil {
		return "", err
	}

	promptContext := llm.NoRecentEntriesContext
	if len(recent) > 0 {
		texts := make([]string, 0, len(recent))
		for _, e := range recent {
			texts = append(texts, e.Text)
		}
		promptContext = "The user's recent journal entries include:\n" + strings.Join(texts, "\n")
	}

	return s.generator.Generate(ctx, llm.JournalPrompt(promptContext), llm.PromptTemperature, llm.PromptMaxTokens)
}

// PeriodSummary summarizes owner's entries between two YYYY-MM-DD dates,
// inclusive of the whole end day.
func (s *InsightService) PeriodSummary(ctx context.Context, owner, startDate, endDate string) (PeriodSummary, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return PeriodSummary{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", apperr.ErrValidation)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return PeriodSummary{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", apperr.ErrValidation)
	}
	// Include everything on the end date
	end = end.Add(24*time.Hour - time.Nanosecond)

	matched, err := s.entries.ListBetween(ctx, owner, start, end)
	if err != nil {
		return PeriodSummary{}, err
	}

	if len(matched) == 0 {
		return PeriodSummary{Summary: NoEntriesMessage, EntryCount: 0}, nil
	}

	var b strings.Builder
	for _, e := range matched {
		fmt.Fprintf(&b, "Date: %s\nEntry: %s\n\n", e.DateDisplay, e.Text)
	}

	summary, err := s.generator.Generate(ctx, llm.PeriodSummaryPrompt(b.String()), llm.SummaryTemperature, llm.SummaryMaxTokens)
	if err != nil {
		return PeriodSummary{}, err
	}
	return PeriodSummary{Summary: summary, EntryCount: len(matched)}, nil
}
