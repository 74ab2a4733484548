package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/tuctuc-telu/shuttle-tracker/internal/db"
	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// TripHandler records trips and serves per-user trip history.
type TripHandler struct {
	repo db.Repo
}

// NewTripHandler creates a new trip handler
func NewTripHandler(repo db.Repo) *TripHandler {
	return &TripHandler{repo: repo}
}

// Create records a completed journey between two haltes.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.UserID == 0 || req.Vehicle == "" {
		respondError(w, http.StatusBadRequest, "userId and vehicle are required")
		return
	}

	tripID, err := h.repo.CreateTrip(r.Context(), req.UserID, req.Vehicle, req.HalteFrom, req.HalteTo)
	if err != nil {
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "trip recorded",
		Data:    map[string]int{"tripId": tripID},
	})
}

// ListByUser returns a user's trips, most recently recorded first.
func (h *TripHandler) ListByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, err := strconv.Atoi(ps.ByName("userId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	trips, err := h.repo.ListTripsByUser(r.Context(), userID)
	if err != nil {
		respondInternal(w, err)
		return
	}

	respondData(w, http.StatusOK, trips)
}
