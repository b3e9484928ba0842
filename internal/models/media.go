package models

import "time"

// MediaType is the closed set of gallery item kinds.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a gallery item. URLs are opaque strings supplied by the
// client; the API stores no files itself.
type Media struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	MediaURL    string    `db:"media_url" json:"mediaUrl"`
	MediaType   MediaType `db:"media_type" json:"mediaType"`
	Category    string    `db:"category" json:"category"`
	Alt         *string   `db:"alt" json:"alt,omitempty"`
	UploadedBy  *string   `db:"uploaded_by" json:"uploadedBy,omitempty"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
