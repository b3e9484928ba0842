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

type facultyRepository interface {
	List(ctx context.Context) ([]models.Faculty, error)
	FindByID(ctx context.Context, id string) (*models.Faculty, error)
	Create(ctx context.Context, member *models.Faculty) error
	Update(ctx context.Context, member *models.Faculty) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateFacultyRequest is the insertable faculty shape.
type CreateFacultyRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Position       string  `json:"position" validate:"required"`
	Specialization string  `json:"specialization" validate:"required"`
	Bio            *string `json:"bio"`
	Image          *string `json:"image"`
	Phone          *string `json:"phone"`
	Office         *string `json:"office"`
}

// UpdateFacultyRequest is the faculty patch shape: omitted fields keep
// their prior value.
type UpdateFacultyRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Position       *string `json:"position"`
	Specialization *string `json:"specialization"`
	Bio            *string `json:"bio"`
	Image          *string `json:"image"`
	Phone          *string `json:"phone"`
	Office         *string `json:"office"`
}

// FacultyService orchestrates faculty profile operations.
type FacultyService struct {
	repo      facultyRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFacultyService constructs a FacultyService.
func NewFacultyService(repo facultyRepository, validate *validator.Validate, logger *zap.Logger) *FacultyService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{repo: repo, validator: validate, logger: logger}
}

// List returns every faculty profile.
func (s *FacultyService) List(ctx context.Context) ([]models.Faculty, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if members == nil {
		members = []models.Faculty{}
	}
	return members, nil
}

// Get returns one profile by id.
func (s *FacultyService) Get(ctx context.Context, id string) (*models.Faculty, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Faculty member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return member, nil
}

// Create validates and stores a new profile.
func (s *FacultyService) Create(ctx context.Context, req CreateFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	member := &models.Faculty{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Position:       strings.TrimSpace(req.Position),
		Specialization: strings.TrimSpace(req.Specialization),
		Bio:            normalizeOptional(req.Bio),
		Image:          normalizeOptional(req.Image),
		Phone:          normalizeOptional(req.Phone),
		Office:         normalizeOptional(req.Office),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return member, nil
}

// Update merges the supplied fields into the stored profile.
func (s *FacultyService) Update(ctx context.Context, id string, req UpdateFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Faculty member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		member.Email = strings.TrimSpace(*req.Email)
	}
	if req.Position != nil {
		member.Position = strings.TrimSpace(*req.Position)
	}
	if req.Specialization != nil {
		member.Specialization = strings.TrimSpace(*req.Specialization)
	}
	if req.Bio != nil {
		member.Bio = normalizeOptional(req.Bio)
	}
	if req.Image != nil {
		member.Image = normalizeOptional(req.Image)
	}
	if req.Phone != nil {
		member.Phone = normalizeOptional(req.Phone)
	}
	if req.Office != nil {
		member.Office = normalizeOptional(req.Office)
	}

	if err := s.repo.Update(ctx, member); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Faculty member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return member, nil
}

// Delete removes a profile; deleting an absent id maps to not found.
func (s *FacultyService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Faculty member not found")
	}
	return nil
}
