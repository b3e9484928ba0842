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

type eventRepository interface {
	List(ctx context.Context, published *bool) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateEventRequest is the insertable event shape. Dates arrive as
// strings and are coerced before acceptance.
type CreateEventRequest struct {
	Title                string  `json:"title" validate:"required"`
	Description          string  `json:"description" validate:"required"`
	Location             *string `json:"location"`
	EventDate            string  `json:"eventDate" validate:"required"`
	EndDate              *string `json:"endDate"`
	Time                 *string `json:"time"`
	Category             string  `json:"category" validate:"required"`
	Image                *string `json:"image"`
	RegistrationRequired *bool   `json:"registrationRequired"`
	MaxParticipants      *int    `json:"maxParticipants" validate:"omitempty,min=1"`
	Published            *bool   `json:"published"`
}

// UpdateEventRequest is the event patch shape.
type UpdateEventRequest struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	Location             *string `json:"location"`
	EventDate            *string `json:"eventDate"`
	EndDate              *string `json:"endDate"`
	Time                 *string `json:"time"`
	Category             *string `json:"category"`
	Image                *string `json:"image"`
	RegistrationRequired *bool   `json:"registrationRequired"`
	MaxParticipants      *int    `json:"maxParticipants" validate:"omitempty,min=1"`
	Published            *bool   `json:"published"`
}

// EventService orchestrates event operations.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// List returns events, optionally restricted by publish state.
func (s *EventService) List(ctx context.Context, published *bool) ([]models.Event, error) {
	events, err := s.repo.List(ctx, published)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Get returns one event by id.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return event, nil
}

// Create validates, coerces dates, and stores a new event.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	eventDate, ok := parseDate(req.EventDate)
	if !ok {
		return nil, fieldError("eventDate", "must be a valid date")
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    normalizeOptional(req.Location),
		EventDate:   eventDate,
		Time:        normalizeOptional(req.Time),
		Category:    strings.TrimSpace(req.Category),
		Image:       normalizeOptional(req.Image),
	}

	// Empty string, null and omitted all mean "no end date".
	if end := normalizeOptional(req.EndDate); end != nil {
		endDate, ok := parseDate(*end)
		if !ok {
			return nil, fieldError("endDate", "must be a valid date")
		}
		event.EndDate = &endDate
	}

	if req.RegistrationRequired != nil {
		event.RegistrationRequired = *req.RegistrationRequired
	}
	event.MaxParticipants = req.MaxParticipants
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return event, nil
}

// Update merges the supplied fields into the stored event.
func (s *EventService) Update(ctx context.Context, id string, req UpdateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Invalid input")
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = normalizeOptional(req.Location)
	}
	if req.EventDate != nil {
		eventDate, ok := parseDate(*req.EventDate)
		if !ok {
			return nil, fieldError("eventDate", "must be a valid date")
		}
		event.EventDate = eventDate
	}
	if req.EndDate != nil {
		if end := normalizeOptional(req.EndDate); end == nil {
			event.EndDate = nil
		} else {
			endDate, ok := parseDate(*end)
			if !ok {
				return nil, fieldError("endDate", "must be a valid date")
			}
			event.EndDate = &endDate
		}
	}
	if req.Time != nil {
		event.Time = normalizeOptional(req.Time)
	}
	if req.Category != nil {
		event.Category = strings.TrimSpace(*req.Category)
	}
	if req.Image != nil {
		event.Image = normalizeOptional(req.Image)
	}
	if req.RegistrationRequired != nil {
		event.RegistrationRequired = *req.RegistrationRequired
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = req.MaxParticipants
	}
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return event, nil
}

// Delete removes an event; deleting an absent id maps to not found.
func (s *EventService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Event not found")
	}
	return nil
}
