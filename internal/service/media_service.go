package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
)

type mediaRepository interface {
	List(ctx context.Context, published *bool) ([]models.Media, error)
	ListByCategory(ctx context.Context, category string) ([]models.Media, error)
	FindByID(ctx context.Context, id string) (*models.Media, error)
	Create(ctx context.Context, item *models.Media) error
	Update(ctx context.Context, item *models.Media) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateMediaRequest is the insertable gallery item shape.
type CreateMediaRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	MediaURL    string  `json:"mediaUrl" validate:"required"`
	MediaType   string  `json:"mediaType" validate:"required,oneof=image video"`
	Category    string  `json:"category" validate:"required"`
	Alt         *string `json:"alt"`
	UploadedBy  *string `json:"uploadedBy"`
	Published   *bool   `json:"published"`
}

// UpdateMediaRequest is the gallery item patch shape.
type UpdateMediaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MediaURL    *string `json:"mediaUrl"`
	MediaType   *string `json:"mediaType" validate:"omitempty,oneof=image video"`
	Category    *string `json:"category"`
	Alt         *string `json:"alt"`
	UploadedBy  *string `json:"uploadedBy"`
	Published   *bool   `json:"published"`
}

// MediaService orchestrates gallery operations.
type MediaService struct {
	repo      mediaRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMediaService constructs a MediaService.
func NewMediaService(repo mediaRepository, validate *validator.Validate, logger *zap.Logger) *MediaService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaService{repo: repo, validator: validate, logger: logger}
}

// List returns gallery items, optionally restricted by publish state.
func (s *MediaService) List(ctx context.Context, published *bool) ([]models.Media, error) {
	items, err := s.repo.List(ctx, published)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if items == nil {
		items = []models.Media{}
	}
	return items, nil
}

// ListByCategory returns published items for one category.
func (s *MediaService) ListByCategory(ctx context.Context, category string) ([]models.Media, error) {
	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if items == nil {
		items = []models.Media{}
	}
	return items, nil
}

// Get returns one gallery item by id.
func (s *MediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Media not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return item, nil
}

// Create validates and stores a new gallery item.
func (s *MediaService) Create(ctx context.Context, req CreateMediaRequest) (*models.Media, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	item := &models.Media{
		Title:       strings.TrimSpace(req.Title),
		Description: normalizeOptional(req.Description),
		MediaURL:    strings.TrimSpace(req.MediaURL),
		MediaType:   models.MediaType(req.MediaType),
		Category:    strings.TrimSpace(req.Category),
		Alt:         normalizeOptional(req.Alt),
		UploadedBy:  normalizeOptional(req.UploadedBy),
	}
	if req.Published != nil {
		item.Published = *req.Published
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return item, nil
}

// Update merges the supplied fields into the stored gallery item.
func (s *MediaService) Update(ctx context.Context, id string, req UpdateMediaRequest) (*models.Media, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Media not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.Title != nil {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		item.Description = normalizeOptional(req.Description)
	}
	if req.MediaURL != nil {
		item.MediaURL = strings.TrimSpace(*req.MediaURL)
	}
	if req.MediaType != nil {
		item.MediaType = models.MediaType(*req.MediaType)
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Alt != nil {
		item.Alt = normalizeOptional(req.Alt)
	}
	if req.UploadedBy != nil {
		item.UploadedBy = normalizeOptional(req.UploadedBy)
	}
	if req.Published != nil {
		item.Published = *req.Published
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Media not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return item, nil
}

// Delete removes a gallery item; deleting an absent id maps to not found.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Media not found")
	}
	return nil
}
