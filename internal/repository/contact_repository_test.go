package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptsite/cms-api/internal/models"
)

func TestListContactsNewestFirst(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at"}).
		AddRow("c2", "B", "b@example.com", "later", "second", string(models.ContactUnread), now).
		AddRow("c1", "A", "a@example.com", "earlier", "first", string(models.ContactRead), now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, subject, message, status, created_at FROM contacts ORDER BY created_at DESC")).
		WillReturnRows(rows)

	contacts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "c2", contacts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactDefaults(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(1, 1))

	contact := &models.Contact{Name: "A", Email: "a@example.com", Subject: "hi", Message: "hello", Status: models.ContactUnread}
	err := repo.Create(context.Background(), contact)
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContactStatusOnlyTouchesStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts SET status = $2 WHERE id = $1")).
		WithArgs("c1", models.ContactRead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "c1", models.ContactRead)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContactStatusMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts SET status = $2 WHERE id = $1")).
		WithArgs("ghost", models.ContactReplied).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "ghost", models.ContactReplied)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
