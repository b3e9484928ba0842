package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
)

type newsRepository interface {
	List(ctx context.Context, published *bool) ([]models.News, error)
	FindByID(ctx context.Context, id string) (*models.News, error)
	Create(ctx context.Context, article *models.News) error
	Update(ctx context.Context, article *models.News) error
	Delete(ctx context.Context, id string) (bool, error)
}

type newsCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string)
}

// publishedNewsCacheKey caches only the public published listing; every
// other filter combination goes straight to the database.
const publishedNewsCacheKey = "news:published"

// CreateNewsRequest is the insertable news shape. publishedAt is
// server-assigned and deliberately absent.
type CreateNewsRequest struct {
	Title     string  `json:"title" validate:"required"`
	Excerpt   string  `json:"excerpt" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image"`
	Category  string  `json:"category" validate:"required"`
	Published *bool   `json:"published"`
}

// UpdateNewsRequest is the news patch shape.
type UpdateNewsRequest struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Image     *string `json:"image"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

// NewsService orchestrates news article operations.
type NewsService struct {
	repo      newsRepository
	cache     newsCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNewsService constructs a NewsService. The cache may be nil-backed;
// misses simply fall through to the repository.
func NewNewsService(repo newsRepository, cache newsCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *NewsService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// List returns articles, optionally restricted by publish state.
func (s *NewsService) List(ctx context.Context, published *bool) ([]models.News, error) {
	useCache := s.cache != nil && published != nil && *published

	if useCache {
		var cached []models.News
		if err := s.cache.Get(ctx, publishedNewsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	articles, err := s.repo.List(ctx, published)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if articles == nil {
		articles = []models.News{}
	}

	if useCache {
		if err := s.cache.Set(ctx, publishedNewsCacheKey, articles, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache published news", zap.Error(err))
		}
	}

	return articles, nil
}

// Get returns one article by id.
func (s *NewsService) Get(ctx context.Context, id string) (*models.News, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "News article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return article, nil
}

// Create validates and stores a new article. Articles created already
// published get their publishedAt stamped now.
func (s *NewsService) Create(ctx context.Context, req CreateNewsRequest) (*models.News, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	article := &models.News{
		Title:    strings.TrimSpace(req.Title),
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Image:    normalizeOptional(req.Image),
		Category: strings.TrimSpace(req.Category),
	}
	if req.Published != nil {
		article.Published = *req.Published
	}
	if article.Published {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(ctx)
	return article, nil
}

// Update merges the supplied fields into the stored article. Flipping
// published on for the first time stamps publishedAt; unpublishing
// keeps the historical timestamp.
func (s *NewsService) Update(ctx context.Context, id string, req UpdateNewsRequest) (*models.News, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "News article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.Title != nil {
		article.Title = strings.TrimSpace(*req.Title)
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Image != nil {
		article.Image = normalizeOptional(req.Image)
	}
	if req.Category != nil {
		article.Category = strings.TrimSpace(*req.Category)
	}
	if req.Published != nil {
		article.Published = *req.Published
		if article.Published && article.PublishedAt == nil {
			now := time.Now().UTC()
			article.PublishedAt = &now
		}
	}

	if err := s.repo.Update(ctx, article); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "News article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.invalidate(ctx)
	return article, nil
}

// Delete removes an article; deleting an absent id maps to not found.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "News article not found")
	}
	s.invalidate(ctx)
	return nil
}

func (s *NewsService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, publishedNewsCacheKey)
	}
}
