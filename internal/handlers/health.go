package handlers

import (
	"net/http"

	"github.com/kbatra339/mindease-backend/internal/database"
)

type HealthHandler struct {
	db *database.Mongo
}

func NewHealthHandler(db *database.Mongo) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	DatabaseStatus string `json:"database_status"`
}

// Home handles GET / and reports service and database status.
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "success",
		Message:        "MindEase Backend API is running!",
		DatabaseStatus: h.db.Status(),
	})
}
