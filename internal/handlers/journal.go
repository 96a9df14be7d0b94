package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kbatra339/mindease-backend/internal/models"
	"github.com/kbatra339/mindease-backend/internal/services"
)

type JournalHandler struct {
	journal *services.JournalService
}

func NewJournalHandler(journal *services.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

type createEntryRequest struct {
	Text string `json:"text"`
}

func (r createEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

// entryResponse is the wire shape of one journal entry.
type entryResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Sentiment string `json:"sentiment"`
}

func toEntryResponse(e models.Entry) entryResponse {
	return entryResponse{
		ID:        e.ID.Hex(),
		Text:      e.Text,
		Date:      e.DateDisplay,
		Sentiment: string(e.ReadSentiment()),
	}
}

// AddEntry handles POST /journal/{username}.
func (h *JournalHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'text' field in request"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'text' field in request"))
		return
	}

	entry, err := h.journal.AddEntry(r.Context(), username, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Journal entry added successfully!",
		"id":      entry.ID.Hex(),
		"entry":   toEntryResponse(entry),
	})
}

// ListEntries handles GET /journal/{username}.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	entries, err := h.journal.ListEntries(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateSentiment handles PUT /journal/update_sentiment/{username}/{entry_id}.
func (h *JournalHandler) UpdateSentiment(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	entryID := chi.URLParam(r, "entry_id")

	sentiment, err := h.journal.UpdateSentiment(r.Context(), username, entryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":       "Sentiment updated successfully!",
		"id":            entryID,
		"new_sentiment": string(sentiment),
	})
}
