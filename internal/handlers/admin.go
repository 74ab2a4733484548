package handlers

import (
	"net/http"

	"github.com/tuctuc-telu/shuttle-tracker/internal/db"
)

// AdminHandler serves the admin dashboard aggregates.
type AdminHandler struct {
	repo db.Repo
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(repo db.Repo) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// Stats returns the dashboard counts, computed fresh on every call.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}
