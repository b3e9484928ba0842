package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deptsite/cms-api/internal/models"
)

// NoteRepository manages persistence for study notes.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository constructs a NoteRepository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = "id, title, description, subject, semester, file_url, file_name, file_size, file_type, uploaded_by, published, created_at, updated_at"

// List returns notes newest first.
func (r *NoteRepository) List(ctx context.Context, published *bool) ([]models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes", noteColumns)
	var args []interface{}
	if published != nil {
		query += " WHERE published = $1"
		args = append(args, *published)
	}
	query += " ORDER BY created_at DESC"
	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// ListBySemester returns published notes for one semester, newest first.
// The published restriction is implicit; semester browsing is a public
// surface.
func (r *NoteRepository) ListBySemester(ctx context.Context, semester string) ([]models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes WHERE semester = $1 AND published = TRUE ORDER BY created_at DESC", noteColumns)
	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, semester); err != nil {
		return nil, fmt.Errorf("list notes by semester: %w", err)
	}
	return notes, nil
}

// FindByID fetches a note by ID.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	query := fmt.Sprintf("SELECT %s FROM notes WHERE id = $1", noteColumns)
	var note models.Note
	if err := r.db.GetContext(ctx, &note, query, id); err != nil {
		return nil, err
	}
	return &note, nil
}

// Create inserts a new note.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	const query = `INSERT INTO notes (id, title, description, subject, semester, file_url, file_name, file_size, file_type, uploaded_by, published, created_at, updated_at)
VALUES (:id, :title, :description, :subject, :semester, :file_url, :file_name, :file_size, :file_type, :uploaded_by, :published, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// Update writes the merged note back.
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	note.UpdatedAt = time.Now().UTC()
	const query = `UPDATE notes SET title = :title, description = :description, subject = :subject, semester = :semester,
file_url = :file_url, file_name = :file_name, file_size = :file_size, file_type = :file_type,
uploaded_by = :uploaded_by, published = :published, updated_at = :updated_at
WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, note)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a note, reporting whether a row actually existed.
func (r *NoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete note rows affected: %w", err)
	}
	return affected > 0, nil
}
