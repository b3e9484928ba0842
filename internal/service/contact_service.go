package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
	"github.com/deptsite/cms-api/pkg/export"
)

type contactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateContactRequest is the public contact-form payload.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactStatusRequest moves a message through the inbox workflow.
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read replied"`
}

// ExportFormat selects the inbox export rendering.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult carries rendered bytes plus response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ContactService orchestrates contact inbox operations.
type ContactService struct {
	repo      contactRepository
	validator *validator.Validate
	logger    *zap.Logger
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewContactService constructs a ContactService.
func NewContactService(repo contactRepository, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// List returns every contact message for the admin inbox.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// Create stores a message from the public form; status starts unread.
func (s *ContactService) Create(ctx context.Context, req CreateContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  models.ContactUnread,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return contact, nil
}

// UpdateStatus writes only the status field; any other mutation path is
// deliberately absent.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, req UpdateContactStatusRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	if err := s.repo.UpdateStatus(ctx, id, models.ContactStatus(req.Status)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Contact not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Contact not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return contact, nil
}

// Delete removes a message; deleting an absent id maps to not found.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Contact not found")
	}
	return nil
}

// Export renders the full inbox as CSV or PDF for offline triage.
func (s *ContactService) Export(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	contacts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Name", "Email", "Subject", "Message", "Status", "Received"},
	}
	for _, c := range contacts {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":     c.Name,
			"Email":    c.Email,
			"Subject":  c.Subject,
			"Message":  c.Message,
			"Status":   string(c.Status),
			"Received": c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case ExportCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("contacts-%s.csv", stamp),
		}, nil
	case ExportPDF:
		content, err := s.pdf.Render(dataset, "Contact Messages")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("contacts-%s.pdf", stamp),
		}, nil
	default:
		return nil, fieldError("format", "must be one of: csv, pdf")
	}
}
