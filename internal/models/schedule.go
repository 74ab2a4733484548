package models

// ScheduleStatus indicates seat availability for a scheduled departure.
type ScheduleStatus string

const (
	ScheduleAvailable ScheduleStatus = "available"
	ScheduleFull      ScheduleStatus = "full"
	ScheduleArriving  ScheduleStatus = "arriving"
)

// Schedule represents one scheduled shuttle departure from a halte.
type Schedule struct {
	ID      int            `json:"id"`
	Time    string         `json:"time"`
	Period  string         `json:"period"`
	Halte   string         `json:"halte"`
	Vehicle string         `json:"vehicle"`
	Status  ScheduleStatus `json:"status"`
}
