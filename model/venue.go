package model

// Venue is static reference data. Capacity is descriptive only and never
// drives any derived logic.
type Venue struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}
