package models

import "time"

// Event is a department event. EventDate orders the public listing.
type Event struct {
	ID                   string     `db:"id" json:"id"`
	Title                string     `db:"title" json:"title"`
	Description          string     `db:"description" json:"description"`
	Location             *string    `db:"location" json:"location,omitempty"`
	EventDate            time.Time  `db:"event_date" json:"eventDate"`
	EndDate              *time.Time `db:"end_date" json:"endDate,omitempty"`
	Time                 *string    `db:"time" json:"time,omitempty"`
	Category             string     `db:"category" json:"category"`
	Image                *string    `db:"image" json:"image,omitempty"`
	RegistrationRequired bool       `db:"registration_required" json:"registrationRequired"`
	MaxParticipants      *int       `db:"max_participants" json:"maxParticipants,omitempty"`
	Published            bool       `db:"published" json:"published"`
	CreatedAt            time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updatedAt"`
}
