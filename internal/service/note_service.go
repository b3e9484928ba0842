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

type noteRepository interface {
	List(ctx context.Context, published *bool) ([]models.Note, error)
	ListBySemester(ctx context.Context, semester string) ([]models.Note, error)
	FindByID(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateNoteRequest is the insertable note shape. Semester and fileType
// are free text here; the admin UI constrains them to fixed lists.
type CreateNoteRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Subject     string  `json:"subject" validate:"required"`
	Semester    string  `json:"semester" validate:"required"`
	FileURL     string  `json:"fileUrl" validate:"required"`
	FileName    string  `json:"fileName" validate:"required"`
	FileSize    *string `json:"fileSize"`
	FileType    *string `json:"fileType"`
	UploadedBy  *string `json:"uploadedBy"`
	Published   *bool   `json:"published"`
}

// UpdateNoteRequest is the note patch shape.
type UpdateNoteRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
	Semester    *string `json:"semester"`
	FileURL     *string `json:"fileUrl"`
	FileName    *string `json:"fileName"`
	FileSize    *string `json:"fileSize"`
	FileType    *string `json:"fileType"`
	UploadedBy  *string `json:"uploadedBy"`
	Published   *bool   `json:"published"`
}

// NoteService orchestrates study note operations.
type NoteService struct {
	repo      noteRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoteService constructs a NoteService.
func NewNoteService(repo noteRepository, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{repo: repo, validator: validate, logger: logger}
}

// List returns notes, optionally restricted by publish state.
func (s *NoteService) List(ctx context.Context, published *bool) ([]models.Note, error) {
	notes, err := s.repo.List(ctx, published)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// ListBySemester returns published notes for one semester.
func (s *NoteService) ListBySemester(ctx context.Context, semester string) ([]models.Note, error) {
	notes, err := s.repo.ListBySemester(ctx, semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Get returns one note by id.
func (s *NoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Note not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return note, nil
}

// Create validates and stores a new note.
func (s *NoteService) Create(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	note := &models.Note{
		Title:       strings.TrimSpace(req.Title),
		Description: normalizeOptional(req.Description),
		Subject:     strings.TrimSpace(req.Subject),
		Semester:    strings.TrimSpace(req.Semester),
		FileURL:     strings.TrimSpace(req.FileURL),
		FileName:    strings.TrimSpace(req.FileName),
		FileSize:    normalizeOptional(req.FileSize),
		FileType:    normalizeOptional(req.FileType),
		UploadedBy:  normalizeOptional(req.UploadedBy),
	}
	if req.Published != nil {
		note.Published = *req.Published
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return note, nil
}

// Update merges the supplied fields into the stored note.
func (s *NoteService) Update(ctx context.Context, id string, req UpdateNoteRequest) (*models.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Note not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.Title != nil {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		note.Description = normalizeOptional(req.Description)
	}
	if req.Subject != nil {
		note.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Semester != nil {
		note.Semester = strings.TrimSpace(*req.Semester)
	}
	if req.FileURL != nil {
		note.FileURL = strings.TrimSpace(*req.FileURL)
	}
	if req.FileName != nil {
		note.FileName = strings.TrimSpace(*req.FileName)
	}
	if req.FileSize != nil {
		note.FileSize = normalizeOptional(req.FileSize)
	}
	if req.FileType != nil {
		note.FileType = normalizeOptional(req.FileType)
	}
	if req.UploadedBy != nil {
		note.UploadedBy = normalizeOptional(req.UploadedBy)
	}
	if req.Published != nil {
		note.Published = *req.Published
	}

	if err := s.repo.Update(ctx, note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Note not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return note, nil
}

// Delete removes a note; deleting an absent id maps to not found.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Note not found")
	}
	return nil
}
