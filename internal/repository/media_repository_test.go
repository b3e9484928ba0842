package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptsite/cms-api/internal/models"
)

func mediaRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "media_url", "media_type", "category", "alt", "uploaded_by", "published", "created_at", "updated_at"}).
		AddRow("m1", "Campus Fest", nil, "/media/fest.jpg", string(models.MediaImage), "events", nil, nil, true, now, now)
}

func TestListMediaNoFilter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMediaRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM media ORDER BY created_at DESC")).
		WillReturnRows(mediaRows(now))

	items, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMediaByCategoryForcesPublished(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMediaRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM media WHERE category = $1 AND published = TRUE ORDER BY created_at DESC")).
		WithArgs("events").
		WillReturnRows(mediaRows(now))

	items, err := repo.ListByCategory(context.Background(), "events")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "events", items[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
