package domain

import "time"

// Stage represents a bookable room within a venue
type Stage struct {
	ID      int64
	VenueID int64
	Name    string

	// OperatingHours keyed by weekday abbreviation (sun..sat).
	// A missing or nil entry means the stage is closed that day.
	OperatingHours OperatingHours

	// Capacity and technical fields are opaque to the scheduling engine
	Capacity  *int
	TechNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
