package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
)

type mockEventRepo struct {
	events map[string]*models.Event
}

func (m *mockEventRepo) List(ctx context.Context, published *bool) ([]models.Event, error) {
	var out []models.Event
	for _, event := range m.events {
		if published != nil && event.Published != *published {
			continue
		}
		out = append(out, *event)
	}
	return out, nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if event, ok := m.events[id]; ok {
		clone := *event
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = "generated"
	}
	if m.events == nil {
		m.events = make(map[string]*models.Event)
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *models.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return sql.ErrNoRows
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.events[id]; !ok {
		return false, nil
	}
	delete(m.events, id)
	return true, nil
}

func newEventSvc(repo *mockEventRepo) *EventService {
	return NewEventService(repo, NewValidator(), zap.NewNop())
}

func TestEventCreateCoercesDateLayouts(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newEventSvc(repo)

	for _, raw := range []string{"2026-03-10T09:00:00Z", "2026-03-10T09:00:00", "2026-03-10"} {
		event, err := svc.Create(context.Background(), CreateEventRequest{
			Title:       "Tech Symposium",
			Description: "Annual meet",
			EventDate:   raw,
			Category:    "academic",
		})
		require.NoError(t, err, raw)
		assert.Equal(t, 2026, event.EventDate.Year())
		assert.Equal(t, time.March, event.EventDate.Month())
	}
}

func TestEventCreateRejectsBadDate(t *testing.T) {
	svc := newEventSvc(&mockEventRepo{})

	_, err := svc.Create(context.Background(), CreateEventRequest{
		Title:       "Tech Symposium",
		Description: "Annual meet",
		EventDate:   "next tuesday",
		Category:    "academic",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "eventDate", appErr.Fields[0].Field)
}

func TestEventCreateEmptyEndDateMeansAbsent(t *testing.T) {
	svc := newEventSvc(&mockEventRepo{})

	empty := ""
	event, err := svc.Create(context.Background(), CreateEventRequest{
		Title:       "Tech Symposium",
		Description: "Annual meet",
		EventDate:   "2026-03-10",
		EndDate:     &empty,
		Category:    "academic",
	})
	require.NoError(t, err)
	assert.Nil(t, event.EndDate)
}

func TestEventCreateRejectsBadEndDate(t *testing.T) {
	svc := newEventSvc(&mockEventRepo{})

	bad := "whenever"
	_, err := svc.Create(context.Background(), CreateEventRequest{
		Title:       "Tech Symposium",
		Description: "Annual meet",
		EventDate:   "2026-03-10",
		EndDate:     &bad,
		Category:    "academic",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "endDate", appErr.Fields[0].Field)
}

func TestEventUpdateClearsEndDateWithEmptyString(t *testing.T) {
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	repo := &mockEventRepo{events: map[string]*models.Event{
		"e1": {
			ID:          "e1",
			Title:       "Tech Symposium",
			Description: "Annual meet",
			EventDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:     &end,
			Category:    "academic",
		},
	}}
	svc := newEventSvc(repo)

	empty := ""
	event, err := svc.Update(context.Background(), "e1", UpdateEventRequest{EndDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, event.EndDate)
	assert.Equal(t, "Tech Symposium", event.Title)
}

func TestEventUpdatePreservesUntouchedFields(t *testing.T) {
	repo := &mockEventRepo{events: map[string]*models.Event{
		"e1": {
			ID:          "e1",
			Title:       "Tech Symposium",
			Description: "Annual meet",
			EventDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Category:    "academic",
			Published:   true,
		},
	}}
	svc := newEventSvc(repo)

	title := "Tech Symposium 2026"
	event, err := svc.Update(context.Background(), "e1", UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Tech Symposium 2026", event.Title)
	assert.Equal(t, "Annual meet", event.Description)
	assert.True(t, event.Published)
	assert.Equal(t, 2026, event.EventDate.Year())
}

func TestEventDeleteMissing(t *testing.T) {
	svc := newEventSvc(&mockEventRepo{})

	err := svc.Delete(context.Background(), "ghost")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Event not found", appErr.Message)
}
