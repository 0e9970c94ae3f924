package model

import "time"

// Event is immutable after seeding. The venue is referenced by id and
// resolved through the catalog.
type Event struct {
	ID          uint   `json:"id"`
	VenueID     uint   `json:"venue_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Poster      string `json:"poster"`
}

// Session resolves its venue transitively through the event. It never
// stores a venue name of its own.
type Session struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"event_id"`
	StartTime time.Time `json:"session_time"`
}
