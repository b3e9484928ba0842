package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deptsite/cms-api/internal/models"
)

// ContactRepository manages persistence for contact messages.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository constructs a ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = "id, name, email, subject, message, status, created_at"

// List returns all contact messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	query := fmt.Sprintf("SELECT %s FROM contacts ORDER BY created_at DESC", contactColumns)
	var contacts []models.Contact
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// FindByID fetches a contact message by ID.
func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	query := fmt.Sprintf("SELECT %s FROM contacts WHERE id = $1", contactColumns)
	var contact models.Contact
	if err := r.db.GetContext(ctx, &contact, query, id); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Create inserts a new contact message.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO contacts (id, name, email, subject, message, status, created_at)
VALUES (:id, :name, :email, :subject, :message, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, contact); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// UpdateStatus writes only the status column.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	res, err := r.db.ExecContext(ctx, "UPDATE contacts SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a contact message, reporting whether a row actually existed.
func (r *ContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete contact rows affected: %w", err)
	}
	return affected > 0, nil
}
