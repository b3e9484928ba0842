package service

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
)

type mockContactRepo struct {
	contacts map[string]*models.Contact
}

func (m *mockContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	for _, contact := range m.contacts {
		out = append(out, *contact)
	}
	return out, nil
}

func (m *mockContactRepo) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	if contact, ok := m.contacts[id]; ok {
		clone := *contact
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = "generated"
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}
	if m.contacts == nil {
		m.contacts = make(map[string]*models.Contact)
	}
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	contact, ok := m.contacts[id]
	if !ok {
		return sql.ErrNoRows
	}
	contact.Status = status
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.contacts[id]; !ok {
		return false, nil
	}
	delete(m.contacts, id)
	return true, nil
}

func newContactSvc(repo *mockContactRepo) *ContactService {
	return NewContactService(repo, NewValidator(), zap.NewNop())
}

func TestContactCreateDefaultsUnread(t *testing.T) {
	svc := newContactSvc(&mockContactRepo{})

	contact, err := svc.Create(context.Background(), CreateContactRequest{
		Name:    "A",
		Email:   "a@example.com",
		Subject: "general",
		Message: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactUnread, contact.Status)
	assert.NotEmpty(t, contact.ID)
}

func TestContactCreateValidatesEmail(t *testing.T) {
	svc := newContactSvc(&mockContactRepo{})

	_, err := svc.Create(context.Background(), CreateContactRequest{
		Name:    "A",
		Email:   "not-an-email",
		Subject: "general",
		Message: "hi",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "email", appErr.Fields[0].Field)
}

func TestContactUpdateStatusEnforcesEnum(t *testing.T) {
	repo := &mockContactRepo{contacts: map[string]*models.Contact{
		"c1": {ID: "c1", Name: "A", Email: "a@example.com", Subject: "s", Message: "m", Status: models.ContactUnread},
	}}
	svc := newContactSvc(repo)

	_, err := svc.UpdateStatus(context.Background(), "c1", UpdateContactStatusRequest{Status: "archived"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	contact, err := svc.UpdateStatus(context.Background(), "c1", UpdateContactStatusRequest{Status: "read"})
	require.NoError(t, err)
	assert.Equal(t, models.ContactRead, contact.Status)
}

func TestContactUpdateStatusMissing(t *testing.T) {
	svc := newContactSvc(&mockContactRepo{})

	_, err := svc.UpdateStatus(context.Background(), "ghost", UpdateContactStatusRequest{Status: "read"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestContactExportCSV(t *testing.T) {
	repo := &mockContactRepo{contacts: map[string]*models.Contact{
		"c1": {ID: "c1", Name: "A", Email: "a@example.com", Subject: "general", Message: "hi", Status: models.ContactUnread, CreatedAt: time.Now()},
	}}
	svc := newContactSvc(repo)

	result, err := svc.Export(context.Background(), ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))
	content := string(result.Content)
	assert.Contains(t, content, "Name")
	assert.Contains(t, content, "a@example.com")
}

func TestContactExportPDF(t *testing.T) {
	repo := &mockContactRepo{contacts: map[string]*models.Contact{
		"c1": {ID: "c1", Name: "A", Email: "a@example.com", Subject: "general", Message: "hi", Status: models.ContactUnread, CreatedAt: time.Now()},
	}}
	svc := newContactSvc(repo)

	result, err := svc.Export(context.Background(), ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.NotEmpty(t, result.Content)
}

func TestContactExportUnknownFormat(t *testing.T) {
	svc := newContactSvc(&mockContactRepo{})

	_, err := svc.Export(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
