package handlers

import (
	"net/http"

	"github.com/tuctuc-telu/shuttle-tracker/internal/db"
	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

// ScheduleHandler serves the departure board.
type ScheduleHandler struct {
	repo db.Repo
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(repo db.Repo) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

// List returns all schedules, optionally filtered to one halte via the
// "halte" query parameter ("all" and empty mean no filter).
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	halte := r.URL.Query().Get("halte")

	var (
		schedules []models.Schedule
		err       error
	)
	if halte != "" && halte != "all" {
		schedules, err = h.repo.ListSchedulesByHalte(r.Context(), halte)
	} else {
		schedules, err = h.repo.ListSchedules(r.Context())
	}
	if err != nil {
		respondInternal(w, err)
		return
	}

	respondData(w, http.StatusOK, schedules)
}
