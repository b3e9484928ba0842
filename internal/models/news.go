package models

import "time"

// News is a department news article. PublishedAt is server-assigned the
// first time the article goes live, never supplied by clients.
type News struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Excerpt     string     `db:"excerpt" json:"excerpt"`
	Content     string     `db:"content" json:"content"`
	Image       *string    `db:"image" json:"image,omitempty"`
	Category    string     `db:"category" json:"category"`
	Published   bool       `db:"published" json:"published"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// PublishedFilter restricts list reads by publish state; nil means all rows.
type PublishedFilter struct {
	Published *bool
}
