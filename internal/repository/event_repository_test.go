package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "location", "event_date", "end_date", "time", "category", "image", "registration_required", "max_participants", "published", "created_at", "updated_at"}).
		AddRow("e1", "Orientation", "Welcome week", nil, now, nil, nil, "academic", nil, false, nil, true, now, now)
}

func TestListEventsOrdersByEventDate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM events ORDER BY event_date DESC")).
		WillReturnRows(eventRows(now))

	events, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEventsPublishedFilter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM events WHERE published = $1 ORDER BY event_date DESC")).
		WithArgs(true).
		WillReturnRows(eventRows(now))

	events, err := repo.List(context.Background(), boolPtr(true))
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
