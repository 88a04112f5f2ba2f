// Package analysis implements the sentiment analysis repository using
// PostgreSQL. The sentiment_analyses table carries a UNIQUE constraint on
// form_id: at most one analysis per form is a database invariant, not a
// usage convention. Concurrent inserts for the same form surface as
// domain.ErrAlreadyExists, which the orchestrator resolves by re-fetching.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/attendly/feedback-backend/internal/adapter/postgres"
	"github.com/attendly/feedback-backend/internal/domain"
)

// Repo provides sentiment analysis persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analysis repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createAnalysisSQL = `
INSERT INTO sentiment_analyses (form_id, overall_sentiment, positive_highlights, common_complaints, executive_summary)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, form_id, overall_sentiment, positive_highlights, common_complaints, executive_summary, analyzed_at`

const getAnalysisByFormIDSQL = `
SELECT id, form_id, overall_sentiment, positive_highlights, common_complaints, executive_summary, analyzed_at
FROM sentiment_analyses
WHERE form_id = $1`

// Create inserts a new analysis and returns the persisted domain.Analysis.
// Returns domain.ErrAlreadyExists if the form already has an analysis
// (unique violation on form_id) and domain.ErrNotFound if the form does
// not exist (foreign key violation).
func (r *Repo) Create(ctx context.Context, a *domain.Analysis) (*domain.Analysis, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createAnalysisSQL,
		a.FormID,
		a.OverallSentiment.String(),
		a.PositiveHighlights,
		a.CommonComplaints,
		a.ExecutiveSummary,
	)

	created, err := scanAnalysis(row)
	if err != nil {
		return nil, postgres.MapError(err, "analysis", a.FormID)
	}

	return created, nil
}

// GetByFormID returns the analysis for a form. At most one row can exist
// by the uniqueness invariant.
// Returns domain.ErrNotFound if no analysis has been stored yet.
func (r *Repo) GetByFormID(ctx context.Context, formID uuid.UUID) (*domain.Analysis, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAnalysis(querier.QueryRow(ctx, getAnalysisByFormIDSQL, formID))
	if err != nil {
		return nil, postgres.MapError(err, "analysis", formID)
	}

	return a, nil
}

// scanAnalysis scans a single analysis row into a domain.Analysis.
func scanAnalysis(row pgx.Row) (*domain.Analysis, error) {
	var (
		id         uuid.UUID
		formID     uuid.UUID
		sentiment  string
		highlights string
		complaints string
		summary    string
		analyzedAt time.Time
	)

	if err := row.Scan(&id, &formID, &sentiment, &highlights, &complaints, &summary, &analyzedAt); err != nil {
		return nil, err
	}

	return &domain.Analysis{
		ID:                 id,
		FormID:             formID,
		OverallSentiment:   domain.Sentiment(sentiment),
		PositiveHighlights: highlights,
		CommonComplaints:   complaints,
		ExecutiveSummary:   summary,
		AnalyzedAt:         analyzedAt,
	}, nil
}
