package models

// Stats holds the aggregate counts shown on the admin dashboard.
// Computed fresh from the current document on every request.
type Stats struct {
	TotalStudents  int `json:"totalStudents"`
	TotalTrips     int `json:"totalTrips"`
	ActiveVehicles int `json:"activeVehicles"`
}
