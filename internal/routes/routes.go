package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/kbatra339/mindease-backend/internal/handlers"
)

// SetupRoutes registers the full HTTP surface on r.
func SetupRoutes(r chi.Router, health *handlers.HealthHandler, auth *handlers.AuthHandler, journal *handlers.JournalHandler, insight *handlers.InsightHandler) {
	// Health
	r.Get("/", health.Home)

	// Accounts
	r.Post("/register", auth.Register)
	r.Post("/login", auth.Login)
	r.Put("/change_password/{username}", auth.ChangePassword)

	// Journal. The static /journal/insight route must be registered alongside
	// the /journal/{username} pattern; chi routes static segments first.
	r.Post("/journal/insight", insight.GenerateInsight)
	r.Post("/journal/{username}", journal.AddEntry)
	r.Get("/journal/{username}", journal.ListEntries)
	r.Put("/journal/update_sentiment/{username}/{entry_id}", journal.UpdateSentiment)

	// Insights and aggregates
	r.Get("/journal/sentiment_summary/{username}", insight.SentimentSummary)
	r.Get("/journal/sentiment_trends/{username}", insight.SentimentTrends)
	r.Post("/journal/generate_prompt/{username}", insight.GeneratePrompt)
	r.Post("/journal/period_summary/{username}", insight.PeriodSummary)
}
