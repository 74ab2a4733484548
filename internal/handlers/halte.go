package handlers

import (
	"net/http"

	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// HalteHandler serves static stop metadata.
type HalteHandler struct{}

// NewHalteHandler creates a new halte handler
func NewHalteHandler() *HalteHandler {
	return &HalteHandler{}
}

// List returns the fixed stops of the campus loop.
func (h *HalteHandler) List(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, models.RouteStops)
}
