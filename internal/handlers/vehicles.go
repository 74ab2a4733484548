package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/tuctuc-telu/shuttle-tracker/internal/db"
	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// VehicleHandler serves shuttle state and position updates.
type VehicleHandler struct {
	repo db.Repo
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(repo db.Repo) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

// List returns all shuttles with their current positions.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.repo.ListVehicles(r.Context())
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondData(w, http.StatusOK, vehicles)
}

// UpdatePosition moves a shuttle. An unknown id is not an error: the
// update silently no-ops, matching the last-writer-wins position model.
func (h *VehicleHandler) UpdatePosition(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var req models.PositionUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.repo.UpdateVehiclePosition(r.Context(), id, req.Lat, req.Lng, req.CurrentHalte); err != nil {
		respondInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "vehicle position updated"})
}
