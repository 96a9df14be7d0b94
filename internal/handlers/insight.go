package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kbatra339/mindease-backend/internal/services"
)

type InsightHandler struct {
	insights *services.InsightService
}

func NewInsightHandler(insights *services.InsightService) *InsightHandler {
	return &InsightHandler{insights: insights}
}

type insightRequest struct {
	Text string `json:"text"`
}

func (r insightRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

type periodSummaryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r periodSummaryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StartDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.EndDate, validation.Required, validation.Date("2006-01-02")),
	)
}

// GenerateInsight handles POST /journal/insight.
func (h *InsightHandler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'text' field in request"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'text' field in request"))
		return
	}

	insight, err := h.insights.GenerateInsight(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"insight": insight})
}

// SentimentSummary handles GET /journal/sentiment_summary/{username}.
func (h *InsightHandler) SentimentSummary(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	summary, err := h.insights.SentimentSummary(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// SentimentTrends handles GET /journal/sentiment_trends/{username}.
func (h *InsightHandler) SentimentTrends(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	trends, err := h.insights.SentimentTrends(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trends)
}

// GeneratePrompt handles POST /journal/generate_prompt/{username}.
func (h *InsightHandler) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	prompt, err := h.insights.GeneratePrompt(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"prompt": prompt})
}

// PeriodSummary handles POST /journal/period_summary/{username}.
func (h *InsightHandler) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req periodSummaryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("start date and end date are required"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	summary, err := h.insights.PeriodSummary(r.Context(), username, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
