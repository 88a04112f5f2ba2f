// Package response implements the feedback response repository using
// PostgreSQL. Responses are append-only: there is no update or delete —
// rows disappear only via the form's ON DELETE CASCADE.
package response

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/attendly/feedback-backend/internal/adapter/postgres"
	"github.com/attendly/feedback-backend/internal/domain"
)

// Repo provides feedback response persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new response repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createResponseSQL = `
INSERT INTO feedback_responses (form_id, attendee_name, rating, comment)
VALUES ($1, $2, $3, $4)
RETURNING id, form_id, attendee_name, rating, comment, submitted_at`

// Oldest first, with id as tie-breaker so the order is a total one.
// Prompt construction depends on this order being deterministic.
const listByFormIDSQL = `
SELECT id, form_id, attendee_name, rating, comment, submitted_at
FROM feedback_responses
WHERE form_id = $1
ORDER BY submitted_at ASC, id ASC`

const countByFormIDSQL = `SELECT count(*) FROM feedback_responses WHERE form_id = $1`

// Create inserts a new response and returns the persisted domain.Response.
// Returns domain.ErrNotFound if the referenced form does not exist
// (foreign key violation).
func (r *Repo) Create(ctx context.Context, resp *domain.Response) (*domain.Response, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createResponseSQL,
		resp.FormID,
		ptrStringToPgText(resp.AttendeeName),
		resp.Rating,
		ptrStringToPgText(resp.Comment),
	)

	created, err := scanResponse(row)
	if err != nil {
		return nil, postgres.MapError(err, "response", resp.FormID)
	}

	return created, nil
}

// ListByFormID returns all responses for a form, oldest first.
// Returns an empty slice (not nil) when the form has no responses.
func (r *Repo) ListByFormID(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByFormIDSQL, formID)
	if err != nil {
		return nil, postgres.MapError(err, "response", formID)
	}
	defer rows.Close()

	result := []*domain.Response{}
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, postgres.MapError(err, "response", formID)
		}
		result = append(result, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "response", formID)
	}

	return result, nil
}

// CountByFormID returns the number of responses for a form.
func (r *Repo) CountByFormID(ctx context.Context, formID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByFormIDSQL, formID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "response", formID)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanResponse scans a single response row into a domain.Response.
func scanResponse(row pgx.Row) (*domain.Response, error) {
	var (
		id           uuid.UUID
		formID       uuid.UUID
		attendeeName pgtype.Text
		rating       int
		comment      pgtype.Text
		submittedAt  time.Time
	)

	if err := row.Scan(&id, &formID, &attendeeName, &rating, &comment, &submittedAt); err != nil {
		return nil, err
	}

	resp := &domain.Response{
		ID:          id,
		FormID:      formID,
		Rating:      rating,
		SubmittedAt: submittedAt,
	}

	if attendeeName.Valid {
		resp.AttendeeName = &attendeeName.String
	}
	if comment.Valid {
		resp.Comment = &comment.String
	}

	return resp, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
