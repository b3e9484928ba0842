package models

import "time"

// Faculty is a department staff profile. Profiles have no publish flag
// and are always publicly visible.
type Faculty struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Position       string    `db:"position" json:"position"`
	Specialization string    `db:"specialization" json:"specialization"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	Image          *string   `db:"image" json:"image,omitempty"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Office         *string   `db:"office" json:"office,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}
