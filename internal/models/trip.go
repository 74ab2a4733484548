package models

import "time"

// Trip represents a single recorded journey between two haltes.
// Trips are append-only and never mutated after creation.
type Trip struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Vehicle   string    `json:"vehicle"`
	HalteFrom string    `json:"halte_from"`
	HalteTo   string    `json:"halte_to"`
	TripDate  time.Time `json:"trip_date"`
}

// TripRequest is the body of a trip recording request.
type TripRequest struct {
	UserID    int    `json:"userId"`
	Vehicle   string `json:"vehicle"`
	HalteFrom string `json:"halteFrom"`
	HalteTo   string `json:"halteTo"`
}
