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

type mockNoteRepo struct {
	notes        map[string]*models.Note
	semesterArgs []string
}

func (m *mockNoteRepo) List(ctx context.Context, published *bool) ([]models.Note, error) {
	var out []models.Note
	for _, note := range m.notes {
		if published != nil && note.Published != *published {
			continue
		}
		out = append(out, *note)
	}
	return out, nil
}

func (m *mockNoteRepo) ListBySemester(ctx context.Context, semester string) ([]models.Note, error) {
	m.semesterArgs = append(m.semesterArgs, semester)
	var out []models.Note
	for _, note := range m.notes {
		if note.Semester == semester && note.Published {
			out = append(out, *note)
		}
	}
	return out, nil
}

func (m *mockNoteRepo) FindByID(ctx context.Context, id string) (*models.Note, error) {
	if note, ok := m.notes[id]; ok {
		clone := *note
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockNoteRepo) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = "generated"
	}
	if m.notes == nil {
		m.notes = make(map[string]*models.Note)
	}
	m.notes[note.ID] = note
	return nil
}

func (m *mockNoteRepo) Update(ctx context.Context, note *models.Note) error {
	if _, ok := m.notes[note.ID]; !ok {
		return sql.ErrNoRows
	}
	m.notes[note.ID] = note
	return nil
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.notes[id]; !ok {
		return false, nil
	}
	delete(m.notes, id)
	return true, nil
}

func TestNoteListBySemesterSkipsUnpublished(t *testing.T) {
	repo := &mockNoteRepo{notes: map[string]*models.Note{
		"nt1": {ID: "nt1", Title: "Published", Subject: "s", Semester: "3", Published: true},
		"nt2": {ID: "nt2", Title: "Draft", Subject: "s", Semester: "3", Published: false},
	}}
	svc := NewNoteService(repo, NewValidator(), zap.NewNop())

	notes, err := svc.ListBySemester(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "nt1", notes[0].ID)
	assert.Equal(t, []string{"3"}, repo.semesterArgs)
}

func TestNoteCreateRequiresFileFields(t *testing.T) {
	svc := NewNoteService(&mockNoteRepo{}, NewValidator(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateNoteRequest{
		Title:    "Graphs",
		Subject:  "Discrete Math",
		Semester: "3",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	fields := make([]string, 0, len(appErr.Fields))
	for _, fe := range appErr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "fileUrl")
	assert.Contains(t, fields, "fileName")
}

func TestNoteUpdatePreservesUntouchedFields(t *testing.T) {
	repo := &mockNoteRepo{notes: map[string]*models.Note{
		"nt1": {ID: "nt1", Title: "Graphs", Subject: "Discrete Math", Semester: "3", FileURL: "/f.pdf", FileName: "f.pdf", Published: true},
	}}
	svc := NewNoteService(repo, NewValidator(), zap.NewNop())

	semester := "4"
	note, err := svc.Update(context.Background(), "nt1", UpdateNoteRequest{Semester: &semester})
	require.NoError(t, err)
	assert.Equal(t, "4", note.Semester)
	assert.Equal(t, "Graphs", note.Title)
	assert.Equal(t, "/f.pdf", note.FileURL)
	assert.True(t, note.Published)
}
