// Package form implements the feedback form repository using PostgreSQL.
package form

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/attendly/feedback-backend/internal/adapter/postgres"
	"github.com/attendly/feedback-backend/internal/domain"
)

// Repo provides feedback form persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new form repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createFormSQL = `
INSERT INTO feedback_forms (event_name, event_date, description)
VALUES ($1, $2, $3)
RETURNING id, event_name, event_date, description, created_at, updated_at`

const getFormByIDSQL = `
SELECT id, event_name, event_date, description, created_at, updated_at
FROM feedback_forms
WHERE id = $1`

const updateFormSQL = `
UPDATE feedback_forms
SET event_name = $2, event_date = $3, description = $4, updated_at = now()
WHERE id = $1
RETURNING id, event_name, event_date, description, created_at, updated_at`

const deleteFormSQL = `DELETE FROM feedback_forms WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a form by primary key.
// Returns domain.ErrNotFound if the form does not exist.
func (r *Repo) GetByID(ctx context.Context, formID uuid.UUID) (*domain.Form, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanForm(querier.QueryRow(ctx, getFormByIDSQL, formID))
	if err != nil {
		return nil, postgres.MapError(err, "form", formID)
	}

	return f, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new form and returns the persisted domain.Form with
// its generated ID and timestamps.
func (r *Repo) Create(ctx context.Context, form *domain.Form) (*domain.Form, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createFormSQL,
		form.EventName,
		ptrTimeToPgDate(form.EventDate),
		ptrStringToPgText(form.Description),
	)

	created, err := scanForm(row)
	if err != nil {
		return nil, postgres.MapError(err, "form", uuid.Nil)
	}

	return created, nil
}

// Update applies partial field updates to a form. Only fields set in
// params are changed; updated_at is always refreshed.
// Returns domain.ErrNotFound if the form does not exist.
func (r *Repo) Update(ctx context.Context, formID uuid.UUID, params domain.FormUpdateParams) (*domain.Form, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	// Read-modify-write: fetch current values, overlay the supplied
	// fields, write everything back in one statement.
	current, err := scanForm(querier.QueryRow(ctx, getFormByIDSQL, formID))
	if err != nil {
		return nil, postgres.MapError(err, "form", formID)
	}

	eventName := current.EventName
	if params.EventName != nil {
		eventName = *params.EventName
	}

	eventDate := current.EventDate
	switch {
	case params.ClearEventDate:
		eventDate = nil
	case params.EventDate != nil:
		eventDate = params.EventDate
	}

	description := current.Description
	switch {
	case params.ClearDescription:
		description = nil
	case params.Description != nil:
		description = params.Description
	}

	row := querier.QueryRow(ctx, updateFormSQL,
		formID,
		eventName,
		ptrTimeToPgDate(eventDate),
		ptrStringToPgText(description),
	)

	updated, err := scanForm(row)
	if err != nil {
		return nil, postgres.MapError(err, "form", formID)
	}

	return updated, nil
}

// Delete removes a form. The schema's ON DELETE CASCADE removes its
// responses and analysis in the same statement's transaction.
// Returns domain.ErrNotFound if the form does not exist.
func (r *Repo) Delete(ctx context.Context, formID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteFormSQL, formID)
	if err != nil {
		return postgres.MapError(err, "form", formID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("form %s: %w", formID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanForm scans a single form row into a domain.Form.
func scanForm(row pgx.Row) (*domain.Form, error) {
	var (
		id          uuid.UUID
		eventName   string
		eventDate   pgtype.Date
		description pgtype.Text
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &eventName, &eventDate, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	f := &domain.Form{
		ID:        id,
		EventName: eventName,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if eventDate.Valid {
		d := eventDate.Time
		f.EventDate = &d
	}
	if description.Valid {
		f.Description = &description.String
	}

	return f, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrTimeToPgDate converts a *time.Time to pgtype.Date (nil -> NULL).
func ptrTimeToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
