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

// MediaRepository manages persistence for gallery items.
type MediaRepository struct {
	db *sqlx.DB
}

// NewMediaRepository constructs a MediaRepository.
func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

const mediaColumns = "id, title, description, media_url, media_type, category, alt, uploaded_by, published, created_at, updated_at"

// List returns gallery items newest first.
func (r *MediaRepository) List(ctx context.Context, published *bool) ([]models.Media, error) {
	query := fmt.Sprintf("SELECT %s FROM media", mediaColumns)
	var args []interface{}
	if published != nil {
		query += " WHERE published = $1"
		args = append(args, *published)
	}
	query += " ORDER BY created_at DESC"
	var items []models.Media
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return items, nil
}

// ListByCategory returns published items for one category, newest first.
func (r *MediaRepository) ListByCategory(ctx context.Context, category string) ([]models.Media, error) {
	query := fmt.Sprintf("SELECT %s FROM media WHERE category = $1 AND published = TRUE ORDER BY created_at DESC", mediaColumns)
	var items []models.Media
	if err := r.db.SelectContext(ctx, &items, query, category); err != nil {
		return nil, fmt.Errorf("list media by category: %w", err)
	}
	return items, nil
}

// FindByID fetches a gallery item by ID.
func (r *MediaRepository) FindByID(ctx context.Context, id string) (*models.Media, error) {
	query := fmt.Sprintf("SELECT %s FROM media WHERE id = $1", mediaColumns)
	var item models.Media
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery item.
func (r *MediaRepository) Create(ctx context.Context, item *models.Media) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	const query = `INSERT INTO media (id, title, description, media_url, media_type, category, alt, uploaded_by, published, created_at, updated_at)
VALUES (:id, :title, :description, :media_url, :media_type, :category, :alt, :uploaded_by, :published, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create media: %w", err)
	}
	return nil
}

// Update writes the merged gallery item back.
func (r *MediaRepository) Update(ctx context.Context, item *models.Media) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE media SET title = :title, description = :description, media_url = :media_url, media_type = :media_type,
category = :category, alt = :alt, uploaded_by = :uploaded_by, published = :published, updated_at = :updated_at
WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a gallery item, reporting whether a row actually existed.
func (r *MediaRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM media WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete media: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete media rows affected: %w", err)
	}
	return affected > 0, nil
}
