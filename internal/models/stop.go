package models

// Stop represents a fixed halte along the shuttle route.
type Stop struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// RouteStops is the campus loop in driving order, starting and ending at
// the campus gates.
var RouteStops = []Stop{
	{ID: "gedung-telkom", Name: "Gedung Telkom", Description: "Titik awal - Area utama kampus", Lat: -6.9733, Lng: 107.6307},
	{ID: "mb-telu", Name: "MB Tel-U", Description: "Gedung Manajemen Bisnis", Lat: -6.9745, Lng: 107.6285},
	{ID: "sukabirus", Name: "Sukabirus", Description: "Jl. Sukabirus - Area kost mahasiswa", Lat: -6.9768, Lng: 107.6265},
	{ID: "jalan-raya", Name: "Jalan Raya", Description: "Persimpangan jalan utama", Lat: -6.9790, Lng: 107.6295},
	{ID: "yogya-sukapura", Name: "Yogya Sukapura", Description: "Dekat Supermarket Yogya", Lat: -6.9772, Lng: 107.6335},
	{ID: "sukapura", Name: "Sukapura", Description: "Jl. Sukapura", Lat: -6.9755, Lng: 107.6355},
	{ID: "gerbang-telu", Name: "Gerbang Tel-U", Description: "Kembali ke kampus - Akhir rute", Lat: -6.9738, Lng: 107.6330},
}
