package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/attendly/feedback-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedForm creates a feedback form with a unique event name.
// Returns a filled domain.Form.
func SeedForm(t *testing.T, pool *pgxpool.Pool) domain.Form {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	form := domain.Form{
		ID:        uuid.New(),
		EventName: "Test Event " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO feedback_forms (id, event_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		form.ID, form.EventName, form.CreatedAt, form.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForm insert: %v", err)
	}

	return form
}

// SeedResponse creates a feedback response for the given form.
// Returns a filled domain.Response.
func SeedResponse(t *testing.T, pool *pgxpool.Pool, formID uuid.UUID, rating int, comment *string) domain.Response {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	resp := domain.Response{
		ID:          uuid.New(),
		FormID:      formID,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO feedback_responses (id, form_id, rating, comment, submitted_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		resp.ID, resp.FormID, resp.Rating, resp.Comment, resp.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResponse insert: %v", err)
	}

	return resp
}

// SeedAnalysis creates a sentiment analysis row for the given form.
// Returns a filled domain.Analysis.
func SeedAnalysis(t *testing.T, pool *pgxpool.Pool, formID uuid.UUID) domain.Analysis {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Analysis{
		ID:                 uuid.New(),
		FormID:             formID,
		OverallSentiment:   domain.SentimentPositive,
		PositiveHighlights: "Great talks",
		CommonComplaints:   "None mentioned",
		ExecutiveSummary:   "Well received overall",
		AnalyzedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sentiment_analyses (id, form_id, overall_sentiment, positive_highlights, common_complaints, executive_summary, analyzed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.FormID, a.OverallSentiment.String(), a.PositiveHighlights, a.CommonComplaints, a.ExecutiveSummary, a.AnalyzedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnalysis insert: %v", err)
	}

	return a
}
