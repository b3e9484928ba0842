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

// NewsRepository manages persistence for news articles.
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository constructs a NewsRepository.
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

const newsColumns = "id, title, excerpt, content, image, category, published, published_at, created_at, updated_at"

// List returns articles newest first. A nil filter value returns all
// rows regardless of publish state.
func (r *NewsRepository) List(ctx context.Context, published *bool) ([]models.News, error) {
	query := fmt.Sprintf("SELECT %s FROM news", newsColumns)
	var args []interface{}
	if published != nil {
		query += " WHERE published = $1"
		args = append(args, *published)
	}
	query += " ORDER BY created_at DESC"
	var articles []models.News
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return articles, nil
}

// FindByID fetches an article by ID.
func (r *NewsRepository) FindByID(ctx context.Context, id string) (*models.News, error) {
	query := fmt.Sprintf("SELECT %s FROM news WHERE id = $1", newsColumns)
	var article models.News
	if err := r.db.GetContext(ctx, &article, query, id); err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article.
func (r *NewsRepository) Create(ctx context.Context, article *models.News) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now
	const query = `INSERT INTO news (id, title, excerpt, content, image, category, published, published_at, created_at, updated_at)
VALUES (:id, :title, :excerpt, :content, :image, :category, :published, :published_at, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, article); err != nil {
		return fmt.Errorf("create news: %w", err)
	}
	return nil
}

// Update writes the merged article back.
func (r *NewsRepository) Update(ctx context.Context, article *models.News) error {
	article.UpdatedAt = time.Now().UTC()
	const query = `UPDATE news SET title = :title, excerpt = :excerpt, content = :content, image = :image, category = :category,
published = :published, published_at = :published_at, updated_at = :updated_at
WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, article)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an article, reporting whether a row actually existed.
func (r *NewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM news WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete news rows affected: %w", err)
	}
	return affected > 0, nil
}
