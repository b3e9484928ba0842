package models

import "time"

// Note is a downloadable study resource. UploadedBy is a non-owning
// reference to the user who added it; lookups never cascade.
type Note struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Subject     string    `db:"subject" json:"subject"`
	Semester    string    `db:"semester" json:"semester"`
	FileURL     string    `db:"file_url" json:"fileUrl"`
	FileName    string    `db:"file_name" json:"fileName"`
	FileSize    *string   `db:"file_size" json:"fileSize,omitempty"`
	FileType    *string   `db:"file_type" json:"fileType,omitempty"`
	UploadedBy  *string   `db:"uploaded_by" json:"uploadedBy,omitempty"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
