package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deptsite/cms-api/internal/models"
	appErrors "github.com/deptsite/cms-api/pkg/errors"
)

type mockFacultyRepo struct {
	members map[string]*models.Faculty
	updated *models.Faculty
}

func (m *mockFacultyRepo) List(ctx context.Context) ([]models.Faculty, error) {
	var out []models.Faculty
	for _, member := range m.members {
		out = append(out, *member)
	}
	return out, nil
}

func (m *mockFacultyRepo) FindByID(ctx context.Context, id string) (*models.Faculty, error) {
	if member, ok := m.members[id]; ok {
		clone := *member
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockFacultyRepo) Create(ctx context.Context, member *models.Faculty) error {
	if member.ID == "" {
		member.ID = "generated"
	}
	if m.members == nil {
		m.members = make(map[string]*models.Faculty)
	}
	m.members[member.ID] = member
	return nil
}

func (m *mockFacultyRepo) Update(ctx context.Context, member *models.Faculty) error {
	if _, ok := m.members[member.ID]; !ok {
		return sql.ErrNoRows
	}
	m.updated = member
	m.members[member.ID] = member
	return nil
}

func (m *mockFacultyRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.members[id]; !ok {
		return false, nil
	}
	delete(m.members, id)
	return true, nil
}

func strPtr(s string) *string {
	return &s
}

func TestFacultyListEmptyIsNotNil(t *testing.T) {
	svc := NewFacultyService(&mockFacultyRepo{}, NewValidator(), zap.NewNop())

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestFacultyCreateRequiresFields(t *testing.T) {
	svc := NewFacultyService(&mockFacultyRepo{}, NewValidator(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateFacultyRequest{Name: "Dr. Rao"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.NotEmpty(t, appErr.Fields)
}

func TestFacultyUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := &mockFacultyRepo{members: map[string]*models.Faculty{
		"f1": {
			ID:             "f1",
			Name:           "Dr. Rao",
			Email:          "rao@example.edu",
			Position:       "Professor",
			Specialization: "Networks",
			Phone:          strPtr("555-0100"),
		},
	}}
	svc := NewFacultyService(repo, NewValidator(), zap.NewNop())

	member, err := svc.Update(context.Background(), "f1", UpdateFacultyRequest{
		Position: strPtr("Head of Department"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Head of Department", member.Position)
	assert.Equal(t, "Dr. Rao", member.Name)
	assert.Equal(t, "rao@example.edu", member.Email)
	require.NotNil(t, member.Phone)
	assert.Equal(t, "555-0100", *member.Phone)
}

func TestFacultyUpdateMissing(t *testing.T) {
	svc := NewFacultyService(&mockFacultyRepo{}, NewValidator(), zap.NewNop())

	_, err := svc.Update(context.Background(), "ghost", UpdateFacultyRequest{Name: strPtr("X")})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestFacultyDeleteTwice(t *testing.T) {
	repo := &mockFacultyRepo{members: map[string]*models.Faculty{"f1": {ID: "f1"}}}
	svc := NewFacultyService(repo, NewValidator(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "f1"))

	err := svc.Delete(context.Background(), "f1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
