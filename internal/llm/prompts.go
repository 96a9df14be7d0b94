package llm

import "fmt"

// Generation settings per use. Classification runs cold so the single-word
// answer stays deterministic; prompt suggestions run warmer for variety.
const (
	ClassifyTemperature = 0.2
	ClassifyMaxTokens   = 10

	InsightTemperature = 0.7
	InsightMaxTokens   = 200

	PromptTemperature = 0.8
	PromptMaxTokens   = 100

	SummaryTemperature = 0.7
	SummaryMaxTokens   = 300
)

const sentimentTemplate = `Analyze the sentiment of the following journal entry. Respond with a single word: positive, neutral, negative, or mixed.

Journal Entry:
"%s"

Sentiment:`

const insightTemplate = `Analyze the following journal entry and provide a concise, supportive, and insightful summary or reflection. Focus on identifying key emotions, themes, or potential areas for growth. Keep it under 100 words.

Journal Entry:
"%s"

Insight:`

const journalPromptTemplate = `Based on the following context about the user's recent journal entries, suggest a single, concise, and encouraging journaling prompt. The prompt should help the user reflect further on their well-being, emotions, or experiences. Keep it to one sentence.

Context:
%s

Journaling Prompt:`

const periodSummaryTemplate = `Summarize the following journal entries from a user over a specific period. Focus on identifying key themes, recurring emotions, significant events, and overall well-being trends. Provide a compassionate and insightful narrative summary, highlighting any notable changes or patterns. Keep the summary concise, under 250 words.

Journal Entries for the period:
%s

Period Summary:`

// NoRecentEntriesContext is the journaling-prompt context for users with no
// entries yet.
const NoRecentEntriesContext = "The user has no recent journal entries."

func SentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentTemplate, text)
}

func InsightPrompt(text string) string {
	return fmt.Sprintf(insightTemplate, text)
}

func JournalPrompt(context string) string {
	return fmt.Sprintf(journalPromptTemplate, context)
}

func PeriodSummaryPrompt(entries string) string {
	return fmt.Sprintf(periodSummaryTemplate, entries)
}
