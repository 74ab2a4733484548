package models

// Vehicle represents a shuttle on the campus loop.
type Vehicle struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"` // "online" or "offline"
	CurrentHalte string  `json:"current_halte"`
	Passengers   int     `json:"passengers"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// PositionUpdate is the body of a vehicle position update.
type PositionUpdate struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	CurrentHalte string  `json:"current_halte"`
}
