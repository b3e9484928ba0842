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

type mockMediaRepo struct {
	items map[string]*models.Media
}

func (m *mockMediaRepo) List(ctx context.Context, published *bool) ([]models.Media, error) {
	var out []models.Media
	for _, item := range m.items {
		if published != nil && item.Published != *published {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockMediaRepo) ListByCategory(ctx context.Context, category string) ([]models.Media, error) {
	var out []models.Media
	for _, item := range m.items {
		if item.Category == category && item.Published {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockMediaRepo) FindByID(ctx context.Context, id string) (*models.Media, error) {
	if item, ok := m.items[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockMediaRepo) Create(ctx context.Context, item *models.Media) error {
	if item.ID == "" {
		item.ID = "generated"
	}
	if m.items == nil {
		m.items = make(map[string]*models.Media)
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockMediaRepo) Update(ctx context.Context, item *models.Media) error {
	if _, ok := m.items[item.ID]; !ok {
		return sql.ErrNoRows
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockMediaRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func TestMediaCreateRejectsUnknownType(t *testing.T) {
	svc := NewMediaService(&mockMediaRepo{}, NewValidator(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateMediaRequest{
		Title:     "Fest",
		MediaURL:  "/media/fest.gif",
		MediaType: "gif",
		Category:  "events",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "mediaType", appErr.Fields[0].Field)
}

func TestMediaCreateAcceptsImageAndVideo(t *testing.T) {
	svc := NewMediaService(&mockMediaRepo{}, NewValidator(), zap.NewNop())

	for _, mediaType := range []string{"image", "video"} {
		item, err := svc.Create(context.Background(), CreateMediaRequest{
			Title:     "Fest",
			MediaURL:  "/media/fest",
			MediaType: mediaType,
			Category:  "events",
		})
		require.NoError(t, err, mediaType)
		assert.Equal(t, models.MediaType(mediaType), item.MediaType)
	}
}

func TestMediaListByCategorySkipsUnpublished(t *testing.T) {
	repo := &mockMediaRepo{items: map[string]*models.Media{
		"m1": {ID: "m1", Title: "Live", MediaURL: "/a", MediaType: models.MediaImage, Category: "events", Published: true},
		"m2": {ID: "m2", Title: "Draft", MediaURL: "/b", MediaType: models.MediaImage, Category: "events", Published: false},
	}}
	svc := NewMediaService(repo, NewValidator(), zap.NewNop())

	items, err := svc.ListByCategory(context.Background(), "events")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
}

func TestMediaUpdateTypeEnum(t *testing.T) {
	repo := &mockMediaRepo{items: map[string]*models.Media{
		"m1": {ID: "m1", Title: "Fest", MediaURL: "/a", MediaType: models.MediaImage, Category: "events"},
	}}
	svc := NewMediaService(repo, NewValidator(), zap.NewNop())

	bad := "audio"
	_, err := svc.Update(context.Background(), "m1", UpdateMediaRequest{MediaType: &bad})
	require.Error(t, err)

	video := "video"
	item, err := svc.Update(context.Background(), "m1", UpdateMediaRequest{MediaType: &video})
	require.NoError(t, err)
	assert.Equal(t, models.MediaVideo, item.MediaType)
	assert.Equal(t, "Fest", item.Title)
}
