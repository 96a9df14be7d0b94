package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/handlers"
	"github.com/kbatra339/mindease-backend/internal/models"
	"github.com/kbatra339/mindease-backend/internal/routes"
	"github.com/kbatra339/mindease-backend/internal/services"
	"github.com/kbatra339/mindease-backend/internal/store"
)

// stubLLM plays both capabilities: classification by text lookup and canned
// narrative generation.
type stubLLM struct {
	labels    map[string]models.Sentiment
	generated string
	genErr    error
	genCalls  int
}

func (s *stubLLM) Classify(_ context.Context, text string) models.Sentiment {
	if label, ok := s.labels[text]; ok {
		return label
	}
	return models.SentimentNeutral
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ float32, _ int) (string, error) {
	s.genCalls++
	if s.genErr != nil {
		return "", s.genErr
	}
	return s.generated, nil
}

func newTestServer(t *testing.T, llm *stubLLM) http.Handler {
	t.Helper()

	users := store.NewMemoryUserStore()
	entries := store.NewMemoryEntryStore()

	r := chi.NewRouter()
	routes.SetupRoutes(r,
		handlers.NewHealthHandler(nil),
		handlers.NewAuthHandler(services.NewAccountService(users)),
		handlers.NewJournalHandler(services.NewJournalService(entries, llm)),
		handlers.NewInsightHandler(services.NewInsightService(entries, llm)),
	)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t, &stubLLM{})

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody[map[string]string](t, w)
	require.Equal(t, "success", body["status"])
	require.NotEmpty(t, body["database_status"])
}

func TestRegisterLoginFlow(t *testing.T) {
	router := newTestServer(t, &stubLLM{})

	w := doJSON(t, router, http.MethodPost, "/register", map[string]string{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration conflicts
	w = doJSON(t, router, http.MethodPost, "/register", map[string]string{"username": "alice", "password": "pw2"})
	require.Equal(t, http.StatusConflict, w.Code)

	// Missing fields
	w = doJSON(t, router, http.MethodPost, "/register", map[string]string{"username": "bob"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]string](t, w)
	require.Equal(t, "alice", body["username"])

	w = doJSON(t, router, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordFlow(t *testing.T) {
	router := newTestServer(t, &stubLLM{})

	doJSON(t, router, http.MethodPost, "/register", map[string]string{"username": "alice", "password": "old"})

	w := doJSON(t, router, http.MethodPut, "/change_password/nobody", map[string]string{"old_password": "old", "new_password": "new"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPut, "/change_password/alice", map[string]string{"old_password": "bad", "new_password": "new"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPut, "/change_password/alice", map[string]string{"old_password": "old", "new_password": "new"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "new"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "old"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

type entryJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Sentiment string `json:"sentiment"`
}

func TestJournalScenario(t *testing.T) {
	llm := &stubLLM{
		labels: map[string]models.Sentiment{
			"I feel great today":          models.SentimentPositive,
			"Everything is falling apart": models.SentimentNegative,
		},
		generated: "Keep going.",
	}
	router := newTestServer(t, llm)

	doJSON(t, router, http.MethodPost, "/register", map[string]string{"username": "alice", "password": "pw1"})

	w := doJSON(t, router, http.MethodPost, "/journal/alice", map[string]string{"text": "I feel great today"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[struct {
		Message string    `json:"message"`
		ID      string    `json:"id"`
		Entry   entryJSON `json:"entry"`
	}](t, w)
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.ID, created.Entry.ID)
	require.Equal(t, "positive", created.Entry.Sentiment)
	require.NotEmpty(t, created.Entry.Date)

	w = doJSON(t, router, http.MethodPost, "/journal/alice", map[string]string{"text": "Everything is falling apart"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Missing text
	w = doJSON(t, router, http.MethodPost, "/journal/alice", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// List: two entries, canonical sentiment on each
	w = doJSON(t, router, http.MethodGet, "/journal/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decodeBody[[]entryJSON](t, w)
	require.Len(t, listed, 2)
	for _, e := range listed {
		require.Contains(t, []string{"positive", "neutral", "negative", "mixed", "unknown", "error"}, e.Sentiment)
	}

	// Summary reflects classifier output
	w = doJSON(t, router, http.MethodGet, "/journal/sentiment_summary/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decodeBody[map[string]int](t, w)
	require.Equal(t, 2, summary["total"])
	require.Equal(t, 1, summary["positive"])
	require.Equal(t, 1, summary["negative"])

	// Update sentiment on the first entry
	llm.labels["I feel great today"] = models.SentimentMixed
	w = doJSON(t, router, http.MethodPut, "/journal/update_sentiment/alice/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[map[string]string](t, w)
	require.Equal(t, "mixed", updated["new_sentiment"])
	require.Equal(t, created.ID, updated["id"])

	w = doJSON(t, router, http.MethodGet, "/journal/alice", nil)
	listed = decodeBody[[]entryJSON](t, w)
	for _, e := range listed {
		if e.ID == created.ID {
			require.Equal(t, "mixed", e.Sentiment)
		}
	}

	// Unknown entry id is a 404
	w = doJSON(t, router, http.MethodPut, "/journal/update_sentiment/alice/ffffffffffffffffffffffff", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Trends: counts across days/labels sum to the entry total
	w = doJSON(t, router, http.MethodGet, "/journal/sentiment_trends/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	trends := decodeBody[[]map[string]any](t, w)
	total := 0.0
	for _, d := range trends {
		for _, label := range []string{"positive", "neutral", "negative", "mixed", "unknown"} {
			total += d[label].(float64)
		}
	}
	require.Equal(t, 2.0, total)
}

func TestInsightEndpoint(t *testing.T) {
	llm := &stubLLM{generated: "You are making progress."}
	router := newTestServer(t, llm)

	w := doJSON(t, router, http.MethodPost, "/journal/insight", map[string]string{"text": "Today was calm"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]string](t, w)
	require.Equal(t, "You are making progress.", body["insight"])

	w = doJSON(t, router, http.MethodPost, "/journal/insight", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	llm.genErr = apperr.ErrGeneration
	w = doJSON(t, router, http.MethodPost, "/journal/insight", map[string]string{"text": "anything"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGeneratePromptEndpoint(t *testing.T) {
	llm := &stubLLM{generated: "What inspired you this week?"}
	router := newTestServer(t, llm)

	w := doJSON(t, router, http.MethodPost, "/journal/generate_prompt/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]string](t, w)
	require.Equal(t, "What inspired you this week?", body["prompt"])
}

func TestPeriodSummaryEndpoint(t *testing.T) {
	llm := &stubLLM{generated: "A hopeful stretch of days."}
	router := newTestServer(t, llm)

	// Bad date format
	w := doJSON(t, router, http.MethodPost, "/journal/period_summary/alice", map[string]string{
		"start_date": "not-a-date", "end_date": "2024-01-07",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Empty period: fixed message, zero count, no generation call
	w = doJSON(t, router, http.MethodPost, "/journal/period_summary/alice", map[string]string{
		"start_date": "2024-01-01", "end_date": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	empty := decodeBody[struct {
		Summary    string `json:"summary"`
		EntryCount int    `json:"entry_count"`
	}](t, w)
	require.Equal(t, services.NoEntriesMessage, empty.Summary)
	require.Equal(t, 0, empty.EntryCount)
	require.Equal(t, 0, llm.genCalls)

	// With entries in range the count comes back
	doJSON(t, router, http.MethodPost, "/journal/alice", map[string]string{"text": "a fine day"})
	start := "2000-01-01"
	end := "2100-01-01"
	w = doJSON(t, router, http.MethodPost, "/journal/period_summary/alice", map[string]string{
		"start_date": start, "end_date": end,
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[struct {
		Summary    string `json:"summary"`
		EntryCount int    `json:"entry_count"`
	}](t, w)
	require.Equal(t, "A hopeful stretch of days.", got.Summary)
	require.Equal(t, 1, got.EntryCount)
}
